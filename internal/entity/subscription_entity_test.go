package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlanDurationDays(t *testing.T) {
	tests := []struct {
		duration PlanDuration
		want     int
	}{
		{DurationMonthly, 30},
		{DurationQuarterly, 90},
		{DurationSemiannual, 180},
		{DurationAnnual, 365},
	}

	for _, tt := range tests {
		t.Run(string(tt.duration), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.duration.Days())
		})
	}
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentCard.Valid())
	assert.True(t, PaymentPSE.Valid())
	assert.True(t, PaymentCash.Valid())
	assert.True(t, PaymentPoints.Valid())

	// mixto is derived during checkout, never accepted as user input
	assert.False(t, PaymentMixed.Valid())
	assert.False(t, PaymentMethod("bitcoin").Valid())
}

func TestExpiryFor(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), ExpiryFor(start, DurationMonthly))
	assert.Equal(t, time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC), ExpiryFor(start, DurationQuarterly))
	assert.Equal(t, time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), ExpiryFor(start, DurationAnnual))
}

func TestSubscriptionIsActive(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    SubscriptionStatus
		expiresAt time.Time
		want      bool
	}{
		{"active before expiry", SubscriptionActive, now.AddDate(0, 0, 10), true},
		{"active on expiry day", SubscriptionActive, now, true},
		{"active past expiry", SubscriptionActive, now.AddDate(0, 0, -1), false},
		{"pending never grants access", SubscriptionPending, now.AddDate(0, 0, 10), false},
		{"cancelled never grants access", SubscriptionCancelled, now.AddDate(0, 0, 10), false},
		{"expired status", SubscriptionExpired, now.AddDate(0, 0, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{Status: tt.status, ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, sub.IsActive(now))
		})
	}
}

func TestSubscriptionDaysRemaining(t *testing.T) {
	now := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)

	sub := &Subscription{ExpiresAt: time.Date(2026, 6, 25, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 10, sub.DaysRemaining(now))

	sameDay := &Subscription{ExpiresAt: time.Date(2026, 6, 15, 1, 0, 0, 0, time.UTC)}
	assert.Equal(t, 0, sameDay.DaysRemaining(now))

	past := &Subscription{ExpiresAt: now.AddDate(0, 0, -30)}
	assert.Equal(t, 0, past.DaysRemaining(now))
}

func TestNewInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	number := NewInvoiceNumber(now)
	assert.True(t, strings.HasPrefix(number, "FAC-"))
	assert.Len(t, number, len("FAC-")+14)
}
