// FILE: internal/dto/subscription_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	ServiceEmail  string `json:"service_email" validate:"required,email"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=tarjeta pse efectivo puntos"`
	Notes         string `json:"notes" validate:"omitempty,max=500"`
}

type SubscriptionResponse struct {
	Id            uuid.UUID  `json:"id"`
	PlanId        uuid.UUID  `json:"plan_id"`
	PlanName      string     `json:"plan_name,omitempty"`
	ServiceName   string     `json:"service_name,omitempty"`
	StartDate     time.Time  `json:"start_date"`
	ExpiresAt     time.Time  `json:"expires_at"`
	DaysRemaining int        `json:"days_remaining"`
	Status        string     `json:"status"`
	Validated     bool       `json:"validated"`
	ValidatedAt   *time.Time `json:"validated_at,omitempty"`
	PaymentMethod string     `json:"payment_method"`
	AmountPaid    float64    `json:"amount_paid"`
	PointsAwarded int        `json:"points_awarded"`
	FirstPurchase bool       `json:"first_purchase"`
	ServiceEmail  string     `json:"service_email"`
	CreatedAt     time.Time  `json:"created_at"`
}

type DashboardResponse struct {
	ActiveSubscriptions  []SubscriptionResponse      `json:"active_subscriptions"`
	PendingSubscriptions []SubscriptionResponse      `json:"pending_subscriptions"`
	TotalPoints          int                         `json:"total_points"`
	AvailablePoints      int                         `json:"available_points"`
	RecentTransactions   []PointsTransactionResponse `json:"recent_transactions"`
}
