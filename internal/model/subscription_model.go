package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartDate     time.Time  `gorm:"type:date;not null"`
	ExpiresAt     time.Time  `gorm:"type:date;not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	Validated     bool       `gorm:"default:false"`
	ValidatedAt   *time.Time
	PaymentMethod string     `gorm:"type:varchar(20);not null"`
	AmountPaid    float64    `gorm:"type:decimal(12,2);default:0"`
	PointsAwarded int        `gorm:"default:0"`
	FirstPurchase bool       `gorm:"default:true"`
	ServiceEmail  string     `gorm:"type:varchar(255);not null"`
	Notes         string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`

	User *User `gorm:"foreignKey:UserId"`
	Plan *Plan `gorm:"foreignKey:PlanId"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
