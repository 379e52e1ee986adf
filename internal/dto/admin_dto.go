// FILE: internal/dto/admin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminDashboardStats struct {
	PendingSubscriptions int     `json:"pending_subscriptions"`
	ActiveSubscriptions  int     `json:"active_subscriptions"`
	PendingPurchases     int     `json:"pending_purchases"`
	RegisteredUsers      int     `json:"registered_users"`
	OutstandingPoints    int64   `json:"outstanding_points"`
	TotalRevenue         float64 `json:"total_revenue"`
}

type ValidateSubscriptionRequest struct {
	Action string `json:"action" validate:"required,oneof=validar rechazar"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
	// PointsOverride replaces the plan award when validating; nil keeps it.
	PointsOverride *int `json:"points_override" validate:"omitempty,gte=0"`
}

type ReviewPurchaseRequest struct {
	Action         string `json:"action" validate:"required,oneof=aprobar rechazar"`
	Notes          string `json:"notes" validate:"omitempty,max=500"`
	PointsOverride *int   `json:"points_override" validate:"omitempty,gte=0"`
}

type AdjustPointsRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Action    string `json:"action" validate:"required,oneof=agregar quitar"`
	Points    int    `json:"points" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required,min=3,max=255"`
}

type VerifiedEmailRequest struct {
	Email     string    `json:"email" validate:"required,email"`
	ServiceId uuid.UUID `json:"service_id" validate:"required"`
	Notes     string    `json:"notes" validate:"omitempty,max=500"`
	Active    *bool     `json:"active"`
}

type VerifiedEmailResponse struct {
	Id          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	ServiceId   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name,omitempty"`
	Active      bool      `json:"active"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RewardConfigRequest struct {
	PointsPerPeso   int `json:"points_per_peso" validate:"required,gt=0"`
	MinRedeemPoints int `json:"min_redeem_points" validate:"required,gt=0"`
}

type RewardConfigResponse struct {
	PointsPerPeso   int       `json:"points_per_peso"`
	MinRedeemPoints int       `json:"min_redeem_points"`
	UpdatedAt       time.Time `json:"updated_at"`
}
