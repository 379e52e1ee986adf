// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type PaymentMethod string

const (
	SubscriptionPending   SubscriptionStatus = "pendiente"
	SubscriptionActive    SubscriptionStatus = "activa"
	SubscriptionExpired   SubscriptionStatus = "vencida"
	SubscriptionCancelled SubscriptionStatus = "cancelada"

	PaymentCard   PaymentMethod = "tarjeta"
	PaymentPSE    PaymentMethod = "pse"
	PaymentCash   PaymentMethod = "efectivo"
	PaymentPoints PaymentMethod = "puntos"
	PaymentMixed  PaymentMethod = "mixto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPSE, PaymentCash, PaymentPoints:
		return true
	}
	return false
}

type Subscription struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	PlanId        uuid.UUID
	StartDate     time.Time
	ExpiresAt     time.Time
	Status        SubscriptionStatus
	Validated     bool
	ValidatedAt   *time.Time
	PaymentMethod PaymentMethod
	AmountPaid    float64
	PointsAwarded int
	FirstPurchase bool
	ServiceEmail  string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User *User
	Plan *Plan
}

// ExpiryFor computes the expiry date for a subscription starting on start.
func ExpiryFor(start time.Time, duration PlanDuration) time.Time {
	return start.AddDate(0, 0, duration.Days())
}

// IsActive reports whether the subscription grants access on the given day.
// Status alone is not enough: an "activa" row past its expiry no longer counts.
func (s *Subscription) IsActive(now time.Time) bool {
	if s.Status != SubscriptionActive {
		return false
	}
	return !dateOnly(now).After(dateOnly(s.ExpiresAt))
}

// DaysRemaining is the number of days until expiry, never negative.
func (s *Subscription) DaysRemaining(now time.Time) int {
	days := int(dateOnly(s.ExpiresAt).Sub(dateOnly(now)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
