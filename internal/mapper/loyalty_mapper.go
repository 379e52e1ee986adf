package mapper

import (
	"streampoint-be/internal/entity"
	"streampoint-be/internal/model"
)

type LoyaltyMapper struct{}

func NewLoyaltyMapper() *LoyaltyMapper {
	return &LoyaltyMapper{}
}

func (m *LoyaltyMapper) ProfileToEntity(p *model.LoyaltyProfile) *entity.LoyaltyProfile {
	if p == nil {
		return nil
	}
	return &entity.LoyaltyProfile{
		Id:              p.Id,
		UserId:          p.UserId,
		TotalPoints:     p.TotalPoints,
		AvailablePoints: p.AvailablePoints,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *LoyaltyMapper) ProfileToModel(p *entity.LoyaltyProfile) *model.LoyaltyProfile {
	if p == nil {
		return nil
	}
	return &model.LoyaltyProfile{
		Id:              p.Id,
		UserId:          p.UserId,
		TotalPoints:     p.TotalPoints,
		AvailablePoints: p.AvailablePoints,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *LoyaltyMapper) TransactionToEntity(t *model.PointsTransaction) *entity.PointsTransaction {
	if t == nil {
		return nil
	}
	return &entity.PointsTransaction{
		Id:          t.Id,
		ProfileId:   t.ProfileId,
		Kind:        entity.TransactionKind(t.Kind),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *LoyaltyMapper) TransactionToModel(t *entity.PointsTransaction) *model.PointsTransaction {
	if t == nil {
		return nil
	}
	return &model.PointsTransaction{
		Id:          t.Id,
		ProfileId:   t.ProfileId,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *LoyaltyMapper) RewardConfigToEntity(c *model.RewardConfig) *entity.RewardConfig {
	if c == nil {
		return nil
	}
	return &entity.RewardConfig{
		Id:              c.Id,
		PointsPerPeso:   c.PointsPerPeso,
		MinRedeemPoints: c.MinRedeemPoints,
		Active:          c.Active,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (m *LoyaltyMapper) RewardConfigToModel(c *entity.RewardConfig) *model.RewardConfig {
	if c == nil {
		return nil
	}
	return &model.RewardConfig{
		Id:              c.Id,
		PointsPerPeso:   c.PointsPerPeso,
		MinRedeemPoints: c.MinRedeemPoints,
		Active:          c.Active,
		UpdatedAt:       c.UpdatedAt,
	}
}
