package model

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseRecord struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	FullName        string     `gorm:"type:varchar(255);not null"`
	Email           string     `gorm:"type:varchar(255);not null"`
	AppUsername     string     `gorm:"type:varchar(120)"`
	Phone           string     `gorm:"type:varchar(30)"`
	ServiceId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId          *uuid.UUID `gorm:"type:uuid"`
	AmountPaid      float64    `gorm:"type:decimal(12,2);not null"`
	PurchaseDate    time.Time  `gorm:"type:date;not null"`
	ReceiptPath     string     `gorm:"type:text;not null"`
	Description     string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	FirstPurchase   bool       `gorm:"default:true"`
	SuggestedPoints int        `gorm:"default:0"`
	SubmittedAt     time.Time  `gorm:"autoCreateTime"`
	ReviewedAt      *time.Time
	ReviewedById    *uuid.UUID `gorm:"type:uuid"`
	PointsAwarded   int        `gorm:"default:0"`
	StaffNotes      string     `gorm:"type:text"`

	User    *User             `gorm:"foreignKey:UserId"`
	Service *StreamingService `gorm:"foreignKey:ServiceId"`
	Plan    *Plan             `gorm:"foreignKey:PlanId"`
}

func (PurchaseRecord) TableName() string {
	return "purchase_records"
}
