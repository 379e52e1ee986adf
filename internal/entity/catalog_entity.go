// FILE: internal/entity/catalog_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlanDuration carries the billing-cycle tokens used on the wire.
type PlanDuration string

const (
	DurationMonthly    PlanDuration = "mensual"
	DurationQuarterly  PlanDuration = "trimestral"
	DurationSemiannual PlanDuration = "semestral"
	DurationAnnual     PlanDuration = "anual"
)

// Days maps a duration to the number of calendar days it covers.
// Unknown tokens fall back to a monthly cycle.
func (d PlanDuration) Days() int {
	switch d {
	case DurationQuarterly:
		return 90
	case DurationSemiannual:
		return 180
	case DurationAnnual:
		return 365
	default:
		return 30
	}
}

func (d PlanDuration) Valid() bool {
	switch d {
	case DurationMonthly, DurationQuarterly, DurationSemiannual, DurationAnnual:
		return true
	}
	return false
}

type Category struct {
	Id          uuid.UUID
	Name        string
	Description string
	Icon        string
	Active      bool
}

type StreamingService struct {
	Id          uuid.UUID
	CategoryId  uuid.UUID
	Name        string
	Description string
	LogoURL     string
	SiteURL     string
	Active      bool
	CreatedAt   time.Time

	Category *Category
	Plans    []Plan
}

type Plan struct {
	Id                  uuid.UUID
	ServiceId           uuid.UUID
	Name                string
	Price               float64
	Duration            PlanDuration
	Features            []string
	FirstPurchasePoints int
	RenewalPoints       int
	Active              bool
	CreatedAt           time.Time

	Service *StreamingService
}

// DurationDays is the subscription length this plan buys.
func (p *Plan) DurationDays() int {
	return p.Duration.Days()
}
