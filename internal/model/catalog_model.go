package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Category struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
	Active      bool      `gorm:"default:true"`
}

func (Category) TableName() string {
	return "categories"
}

type StreamingService struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	LogoURL     string    `gorm:"type:text"`
	SiteURL     string    `gorm:"type:text"`
	Active      bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Category *Category `gorm:"foreignKey:CategoryId"`
	Plans    []Plan    `gorm:"foreignKey:ServiceId"`
}

func (StreamingService) TableName() string {
	return "streaming_services"
}

type Plan struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ServiceId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name                string         `gorm:"type:varchar(100);not null"`
	Price               float64        `gorm:"type:decimal(12,2);not null"`
	Duration            string         `gorm:"type:varchar(20);not null;default:'mensual'"`
	Features            datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	FirstPurchasePoints int            `gorm:"default:100"`
	RenewalPoints       int            `gorm:"default:50"`
	Active              bool           `gorm:"default:true"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`

	Service *StreamingService `gorm:"foreignKey:ServiceId"`
}

func (Plan) TableName() string {
	return "plans"
}
