package model

import (
	"time"

	"github.com/google/uuid"
)

type VerifiedEmail struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_verified_email_service,priority:1"`
	ServiceId uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_verified_email_service,priority:2"`
	AddedById *uuid.UUID `gorm:"type:uuid"`
	Active    bool       `gorm:"default:true"`
	Notes     string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`

	Service *StreamingService `gorm:"foreignKey:ServiceId"`
}

func (VerifiedEmail) TableName() string {
	return "verified_emails"
}
