package approval

import (
	"testing"
	"time"

	"streampoint-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApprovePurchase(t *testing.T) {
	reviewer := uuid.New()
	now := time.Now()

	t.Run("approves pending with suggested points", func(t *testing.T) {
		record := &entity.PurchaseRecord{Status: entity.PurchasePending, SuggestedPoints: 329}
		points, err := ApprovePurchase(record, Decision{ReviewerId: reviewer, PointsOverride: -1, At: now})
		assert.NoError(t, err)
		assert.Equal(t, 329, points)
		assert.Equal(t, entity.PurchaseApproved, record.Status)
		assert.Equal(t, 329, record.PointsAwarded)
		assert.Equal(t, reviewer, *record.ReviewedById)
		assert.NotNil(t, record.ReviewedAt)
	})

	t.Run("override replaces suggestion", func(t *testing.T) {
		record := &entity.PurchaseRecord{Status: entity.PurchasePending, SuggestedPoints: 329}
		points, err := ApprovePurchase(record, Decision{ReviewerId: reviewer, PointsOverride: 120, At: now})
		assert.NoError(t, err)
		assert.Equal(t, 120, points)
		assert.Equal(t, 120, record.PointsAwarded)
	})

	t.Run("zero override means no award", func(t *testing.T) {
		record := &entity.PurchaseRecord{Status: entity.PurchasePending, SuggestedPoints: 329}
		points, err := ApprovePurchase(record, Decision{ReviewerId: reviewer, PointsOverride: 0, At: now})
		assert.NoError(t, err)
		assert.Zero(t, points)
	})

	for _, status := range []entity.PurchaseStatus{entity.PurchaseApproved, entity.PurchaseRejected} {
		t.Run("rejects transition from "+string(status), func(t *testing.T) {
			record := &entity.PurchaseRecord{Status: status}
			_, err := ApprovePurchase(record, Decision{ReviewerId: reviewer, PointsOverride: -1, At: now})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, status, record.Status)
		})
	}
}

func TestRejectPurchase(t *testing.T) {
	reviewer := uuid.New()
	now := time.Now()

	t.Run("rejects pending", func(t *testing.T) {
		record := &entity.PurchaseRecord{Status: entity.PurchasePending}
		err := RejectPurchase(record, Decision{ReviewerId: reviewer, Notes: "receipt unreadable", At: now})
		assert.NoError(t, err)
		assert.Equal(t, entity.PurchaseRejected, record.Status)
		assert.Equal(t, "receipt unreadable", record.StaffNotes)
		assert.Zero(t, record.PointsAwarded)
	})

	for _, status := range []entity.PurchaseStatus{entity.PurchaseApproved, entity.PurchaseRejected} {
		t.Run("rejects transition from "+string(status), func(t *testing.T) {
			record := &entity.PurchaseRecord{Status: status}
			err := RejectPurchase(record, Decision{ReviewerId: reviewer, At: now})
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestValidateSubscription(t *testing.T) {
	now := time.Now()

	t.Run("activates pending and requests accrual", func(t *testing.T) {
		sub := &entity.Subscription{Status: entity.SubscriptionPending, PaymentMethod: entity.PaymentCard}
		accrue, err := ValidateSubscription(sub, now)
		assert.NoError(t, err)
		assert.True(t, accrue)
		assert.Equal(t, entity.SubscriptionActive, sub.Status)
		assert.True(t, sub.Validated)
		assert.NotNil(t, sub.ValidatedAt)
	})

	t.Run("points funded never accrues", func(t *testing.T) {
		sub := &entity.Subscription{Status: entity.SubscriptionPending, PaymentMethod: entity.PaymentPoints}
		accrue, err := ValidateSubscription(sub, now)
		assert.NoError(t, err)
		assert.False(t, accrue)
	})

	t.Run("already awarded never accrues again", func(t *testing.T) {
		sub := &entity.Subscription{Status: entity.SubscriptionPending, PaymentMethod: entity.PaymentCard, PointsAwarded: 100}
		accrue, err := ValidateSubscription(sub, now)
		assert.NoError(t, err)
		assert.False(t, accrue)
	})

	for _, status := range []entity.SubscriptionStatus{entity.SubscriptionActive, entity.SubscriptionExpired, entity.SubscriptionCancelled} {
		t.Run("rejects transition from "+string(status), func(t *testing.T) {
			sub := &entity.Subscription{Status: status}
			_, err := ValidateSubscription(sub, now)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestRejectSubscription(t *testing.T) {
	t.Run("cancels pending with reason", func(t *testing.T) {
		sub := &entity.Subscription{Status: entity.SubscriptionPending}
		err := RejectSubscription(sub, "payment never arrived")
		assert.NoError(t, err)
		assert.Equal(t, entity.SubscriptionCancelled, sub.Status)
		assert.Equal(t, "payment never arrived", sub.Notes)
	})

	t.Run("rejects non pending", func(t *testing.T) {
		sub := &entity.Subscription{Status: entity.SubscriptionActive}
		assert.ErrorIs(t, RejectSubscription(sub, ""), ErrInvalidTransition)
	})
}

func TestCancelSubscription(t *testing.T) {
	tests := []struct {
		status entity.SubscriptionStatus
		ok     bool
	}{
		{entity.SubscriptionPending, true},
		{entity.SubscriptionActive, true},
		{entity.SubscriptionExpired, false},
		{entity.SubscriptionCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			sub := &entity.Subscription{Status: tt.status}
			err := CancelSubscription(sub)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, entity.SubscriptionCancelled, sub.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}
