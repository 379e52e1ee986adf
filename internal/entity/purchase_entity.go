// FILE: internal/entity/purchase_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseStatus string

const (
	PurchasePending  PurchaseStatus = "pendiente"
	PurchaseApproved PurchaseStatus = "aprobado"
	PurchaseRejected PurchaseStatus = "rechazado"
)

// PurchaseRecord is a user-submitted proof of an out-of-band purchase,
// waiting for staff review before any points are credited.
type PurchaseRecord struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	FullName        string
	Email           string
	AppUsername     string
	Phone           string
	ServiceId       uuid.UUID
	PlanId          *uuid.UUID
	AmountPaid      float64
	PurchaseDate    time.Time
	ReceiptPath     string
	Description     string
	Status          PurchaseStatus
	FirstPurchase   bool
	SuggestedPoints int
	SubmittedAt     time.Time
	ReviewedAt      *time.Time
	ReviewedById    *uuid.UUID
	PointsAwarded   int
	StaffNotes      string

	User    *User
	Service *StreamingService
	Plan    *Plan
}
