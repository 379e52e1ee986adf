package model

import (
	"time"

	"github.com/google/uuid"
)

type LoyaltyProfile struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	TotalPoints     int       `gorm:"default:0"`
	AvailablePoints int       `gorm:"default:0"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (LoyaltyProfile) TableName() string {
	return "loyalty_profiles"
}

type PointsTransaction struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfileId   uuid.UUID `gorm:"type:uuid;not null;index:idx_points_tx_profile_created,priority:1"`
	Kind        string    `gorm:"type:varchar(20);not null"`
	Amount      int       `gorm:"not null"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_points_tx_profile_created,priority:2"`
}

func (PointsTransaction) TableName() string {
	return "points_transactions"
}

type RewardConfig struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PointsPerPeso   int       `gorm:"default:10"`
	MinRedeemPoints int       `gorm:"default:500"`
	Active          bool      `gorm:"default:true"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (RewardConfig) TableName() string {
	return "reward_configs"
}
