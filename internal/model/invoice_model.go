package model

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriptionId  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Number          string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	FullName        string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Phone           string    `gorm:"type:varchar(30)"`
	PaymentMethod   string    `gorm:"type:varchar(20);not null"`
	Total           float64   `gorm:"type:decimal(12,2);not null"`
	PointsUsed      int       `gorm:"default:0"`
	PointsValue     float64   `gorm:"type:decimal(12,2);default:0"`
	PendingAmount   float64   `gorm:"type:decimal(12,2);default:0"`
	SecondaryMethod string    `gorm:"type:varchar(20)"`
	Paid            bool      `gorm:"default:false"`
	PaidAt          *time.Time
	MidtransOrderId string    `gorm:"type:varchar(64);index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	Subscription *Subscription `gorm:"foreignKey:SubscriptionId"`
}

func (Invoice) TableName() string {
	return "invoices"
}
