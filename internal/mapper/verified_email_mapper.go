package mapper

import (
	"streampoint-be/internal/entity"
	"streampoint-be/internal/model"
)

type VerifiedEmailMapper struct {
	catalogMapper *CatalogMapper
}

func NewVerifiedEmailMapper() *VerifiedEmailMapper {
	return &VerifiedEmailMapper{
		catalogMapper: NewCatalogMapper(),
	}
}

func (m *VerifiedEmailMapper) ToEntity(v *model.VerifiedEmail) *entity.VerifiedEmail {
	if v == nil {
		return nil
	}
	return &entity.VerifiedEmail{
		Id:        v.Id,
		Email:     v.Email,
		ServiceId: v.ServiceId,
		AddedById: v.AddedById,
		Active:    v.Active,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
		Service:   m.catalogMapper.ServiceToEntity(v.Service),
	}
}

func (m *VerifiedEmailMapper) ToModel(v *entity.VerifiedEmail) *model.VerifiedEmail {
	if v == nil {
		return nil
	}
	return &model.VerifiedEmail{
		Id:        v.Id,
		Email:     v.Email,
		ServiceId: v.ServiceId,
		AddedById: v.AddedById,
		Active:    v.Active,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
	}
}
