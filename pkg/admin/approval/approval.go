// Package approval guards the review state machines for staff decisions.
package approval

import (
	"errors"
	"time"

	"streampoint-be/internal/entity"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid review transition")

// Decision is the staff verdict applied to a pending item.
type Decision struct {
	ReviewerId uuid.UUID
	Notes      string
	// PointsOverride replaces the suggested award when >= 0.
	PointsOverride int
	At             time.Time
}

// ApprovePurchase moves a purchase record to aprobado, stamping the reviewer.
// Only pendiente records can be decided; the returned award is what the
// caller must credit to the ledger.
func ApprovePurchase(record *entity.PurchaseRecord, d Decision) (int, error) {
	if record.Status != entity.PurchasePending {
		return 0, ErrInvalidTransition
	}

	points := record.SuggestedPoints
	if d.PointsOverride >= 0 {
		points = d.PointsOverride
	}

	at := d.At
	record.Status = entity.PurchaseApproved
	record.ReviewedAt = &at
	record.ReviewedById = &d.ReviewerId
	record.PointsAwarded = points
	record.StaffNotes = d.Notes
	return points, nil
}

// RejectPurchase moves a purchase record to rechazado. No points move.
func RejectPurchase(record *entity.PurchaseRecord, d Decision) error {
	if record.Status != entity.PurchasePending {
		return ErrInvalidTransition
	}

	at := d.At
	record.Status = entity.PurchaseRejected
	record.ReviewedAt = &at
	record.ReviewedById = &d.ReviewerId
	record.StaffNotes = d.Notes
	return nil
}

// ValidateSubscription activates a pending subscription. The returned flag
// says whether the accrual should run: it fires at most once per record and
// never for points-funded subscriptions.
func ValidateSubscription(sub *entity.Subscription, at time.Time) (bool, error) {
	if sub.Status != entity.SubscriptionPending {
		return false, ErrInvalidTransition
	}

	sub.Status = entity.SubscriptionActive
	sub.Validated = true
	sub.ValidatedAt = &at

	accrue := sub.PointsAwarded == 0 && sub.PaymentMethod != entity.PaymentPoints
	return accrue, nil
}

// RejectSubscription cancels a pending subscription during review.
func RejectSubscription(sub *entity.Subscription, reason string) error {
	if sub.Status != entity.SubscriptionPending {
		return ErrInvalidTransition
	}

	sub.Status = entity.SubscriptionCancelled
	if reason != "" {
		sub.Notes = reason
	}
	return nil
}

// CancelSubscription is the user-driven cancellation. Pending and active
// subscriptions can be cancelled; terminal states cannot.
func CancelSubscription(sub *entity.Subscription) error {
	switch sub.Status {
	case entity.SubscriptionPending, entity.SubscriptionActive:
		sub.Status = entity.SubscriptionCancelled
		return nil
	default:
		return ErrInvalidTransition
	}
}
