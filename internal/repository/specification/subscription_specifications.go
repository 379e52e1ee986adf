package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

type ByPlanID struct {
	PlanID uuid.UUID
}

func (s ByPlanID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("plan_id = ?", s.PlanID)
}

// NotExpiredAt keeps rows whose access window still covers the given day.
type NotExpiredAt struct {
	Day time.Time
}

func (s NotExpiredAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at >= ?", s.Day.Format("2006-01-02"))
}

// ForService narrows subscriptions to the plans of one streaming service.
type ForService struct {
	ServiceID uuid.UUID
}

func (s ForService) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN plans ON plans.id = subscriptions.plan_id").
		Where("plans.service_id = ?", s.ServiceID)
}

type ValidatedOnly struct{}

func (s ValidatedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("validated = ?", true)
}
