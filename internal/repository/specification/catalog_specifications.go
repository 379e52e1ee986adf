package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

type ByCategoryID struct {
	CategoryID uuid.UUID
}

func (s ByCategoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

type ByServiceID struct {
	ServiceID uuid.UUID
}

func (s ByServiceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_id = ?", s.ServiceID)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
