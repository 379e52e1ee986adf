package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProfileID struct {
	ProfileID uuid.UUID
}

func (s ByProfileID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("profile_id = ?", s.ProfileID)
}

type ByKind struct {
	Kind string
}

func (s ByKind) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("kind = ?", s.Kind)
}
