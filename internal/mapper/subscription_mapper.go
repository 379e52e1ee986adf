package mapper

import (
	"streampoint-be/internal/entity"
	"streampoint-be/internal/model"
)

type SubscriptionMapper struct {
	userMapper    *UserMapper
	catalogMapper *CatalogMapper
}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{
		userMapper:    NewUserMapper(),
		catalogMapper: NewCatalogMapper(),
	}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:            s.Id,
		UserId:        s.UserId,
		PlanId:        s.PlanId,
		StartDate:     s.StartDate,
		ExpiresAt:     s.ExpiresAt,
		Status:        entity.SubscriptionStatus(s.Status),
		Validated:     s.Validated,
		ValidatedAt:   s.ValidatedAt,
		PaymentMethod: entity.PaymentMethod(s.PaymentMethod),
		AmountPaid:    s.AmountPaid,
		PointsAwarded: s.PointsAwarded,
		FirstPurchase: s.FirstPurchase,
		ServiceEmail:  s.ServiceEmail,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		User:          m.userMapper.ToEntity(s.User),
		Plan:          m.catalogMapper.PlanToEntity(s.Plan),
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:            s.Id,
		UserId:        s.UserId,
		PlanId:        s.PlanId,
		StartDate:     s.StartDate,
		ExpiresAt:     s.ExpiresAt,
		Status:        string(s.Status),
		Validated:     s.Validated,
		ValidatedAt:   s.ValidatedAt,
		PaymentMethod: string(s.PaymentMethod),
		AmountPaid:    s.AmountPaid,
		PointsAwarded: s.PointsAwarded,
		FirstPurchase: s.FirstPurchase,
		ServiceEmail:  s.ServiceEmail,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
