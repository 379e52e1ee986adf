// FILE: internal/dto/purchase_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitPurchaseRequest carries the multipart form fields; the receipt file
// itself travels as the "receipt" file part.
type SubmitPurchaseRequest struct {
	FullName     string     `form:"full_name" validate:"required,min=3"`
	Email        string     `form:"email" validate:"required,email"`
	AppUsername  string     `form:"app_username" validate:"omitempty,max=120"`
	Phone        string     `form:"phone" validate:"omitempty,min=7"`
	ServiceId    uuid.UUID  `form:"service_id" validate:"required"`
	PlanId       *uuid.UUID `form:"plan_id"`
	AmountPaid   float64    `form:"amount_paid" validate:"required,gt=0"`
	PurchaseDate string     `form:"purchase_date" validate:"required,datetime=2006-01-02"`
	Description  string     `form:"description" validate:"omitempty,max=1000"`
}

type PurchaseResponse struct {
	Id              uuid.UUID  `json:"id"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	AppUsername     string     `json:"app_username,omitempty"`
	ServiceId       uuid.UUID  `json:"service_id"`
	ServiceName     string     `json:"service_name,omitempty"`
	PlanId          *uuid.UUID `json:"plan_id,omitempty"`
	PlanName        string     `json:"plan_name,omitempty"`
	AmountPaid      float64    `json:"amount_paid"`
	PurchaseDate    time.Time  `json:"purchase_date"`
	ReceiptPath     string     `json:"receipt_path"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status"`
	FirstPurchase   bool       `json:"first_purchase"`
	SuggestedPoints int        `json:"suggested_points"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	PointsAwarded   int        `json:"points_awarded"`
	StaffNotes      string     `json:"staff_notes,omitempty"`
}
