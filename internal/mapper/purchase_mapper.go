package mapper

import (
	"streampoint-be/internal/entity"
	"streampoint-be/internal/model"
)

type PurchaseMapper struct {
	userMapper    *UserMapper
	catalogMapper *CatalogMapper
}

func NewPurchaseMapper() *PurchaseMapper {
	return &PurchaseMapper{
		userMapper:    NewUserMapper(),
		catalogMapper: NewCatalogMapper(),
	}
}

func (m *PurchaseMapper) ToEntity(r *model.PurchaseRecord) *entity.PurchaseRecord {
	if r == nil {
		return nil
	}
	return &entity.PurchaseRecord{
		Id:              r.Id,
		UserId:          r.UserId,
		FullName:        r.FullName,
		Email:           r.Email,
		AppUsername:     r.AppUsername,
		Phone:           r.Phone,
		ServiceId:       r.ServiceId,
		PlanId:          r.PlanId,
		AmountPaid:      r.AmountPaid,
		PurchaseDate:    r.PurchaseDate,
		ReceiptPath:     r.ReceiptPath,
		Description:     r.Description,
		Status:          entity.PurchaseStatus(r.Status),
		FirstPurchase:   r.FirstPurchase,
		SuggestedPoints: r.SuggestedPoints,
		SubmittedAt:     r.SubmittedAt,
		ReviewedAt:      r.ReviewedAt,
		ReviewedById:    r.ReviewedById,
		PointsAwarded:   r.PointsAwarded,
		StaffNotes:      r.StaffNotes,
		User:            m.userMapper.ToEntity(r.User),
		Service:         m.catalogMapper.ServiceToEntity(r.Service),
		Plan:            m.catalogMapper.PlanToEntity(r.Plan),
	}
}

func (m *PurchaseMapper) ToModel(r *entity.PurchaseRecord) *model.PurchaseRecord {
	if r == nil {
		return nil
	}
	return &model.PurchaseRecord{
		Id:              r.Id,
		UserId:          r.UserId,
		FullName:        r.FullName,
		Email:           r.Email,
		AppUsername:     r.AppUsername,
		Phone:           r.Phone,
		ServiceId:       r.ServiceId,
		PlanId:          r.PlanId,
		AmountPaid:      r.AmountPaid,
		PurchaseDate:    r.PurchaseDate,
		ReceiptPath:     r.ReceiptPath,
		Description:     r.Description,
		Status:          string(r.Status),
		FirstPurchase:   r.FirstPurchase,
		SuggestedPoints: r.SuggestedPoints,
		SubmittedAt:     r.SubmittedAt,
		ReviewedAt:      r.ReviewedAt,
		ReviewedById:    r.ReviewedById,
		PointsAwarded:   r.PointsAwarded,
		StaffNotes:      r.StaffNotes,
	}
}
