// FILE: internal/dto/checkout_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartCheckoutRequest struct {
	ServiceEmail string `json:"service_email" validate:"required,email"`
	ServiceUser  string `json:"service_user" validate:"omitempty,max=120"`
}

type CheckoutSessionResponse struct {
	Plan                PlanResponse `json:"plan"`
	ServiceName         string       `json:"service_name"`
	ServiceEmail        string       `json:"service_email"`
	Renewal             bool         `json:"renewal"`
	AvailablePoints     int          `json:"available_points"`
	PointsPrice         int          `json:"points_price"`
	MinRedeemPoints     int          `json:"min_redeem_points"`
	MaxRedeemablePoints int          `json:"max_redeemable_points"`
	ExpiresAt           time.Time    `json:"expires_at"`
}

type CompleteCheckoutRequest struct {
	FullName        string `json:"full_name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,min=7"`
	PointsUsed      int    `json:"points_used" validate:"gte=0"`
	SecondaryMethod string `json:"secondary_method" validate:"omitempty,oneof=tarjeta pse efectivo"`
}

type InvoiceResponse struct {
	Id              uuid.UUID `json:"id"`
	Number          string    `json:"number"`
	SubscriptionId  uuid.UUID `json:"subscription_id"`
	PaymentMethod   string    `json:"payment_method"`
	Total           float64   `json:"total"`
	PointsUsed      int       `json:"points_used"`
	PointsValue     float64   `json:"points_value"`
	PendingAmount   float64   `json:"pending_amount"`
	SecondaryMethod string    `json:"secondary_method,omitempty"`
	Paid            bool      `json:"paid"`
	SnapRedirectURL string    `json:"snap_redirect_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CheckoutResultResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Invoice      InvoiceResponse      `json:"invoice"`
	CashbackPoints int                `json:"cashback_points"`
}

type MidtransNotificationRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}
