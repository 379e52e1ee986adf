// FILE: internal/entity/invoice_entity.go
package entity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Invoice is the billing record produced by checkout. When points covered
// part of the total, PaymentMethod is "mixto" and SecondaryMethod names the
// instrument that pays PendingAmount.
type Invoice struct {
	Id              uuid.UUID
	SubscriptionId  uuid.UUID
	Number          string
	FullName        string
	Email           string
	Phone           string
	PaymentMethod   PaymentMethod
	Total           float64
	PointsUsed      int
	PointsValue     float64
	PendingAmount   float64
	SecondaryMethod PaymentMethod
	Paid            bool
	PaidAt          *time.Time
	MidtransOrderId string
	CreatedAt       time.Time

	Subscription *Subscription
}

// NewInvoiceNumber builds a "FAC-" number from the unix timestamp plus four
// random digits, matching the receipt numbering users already know.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("FAC-%d%04d", now.Unix(), rand.Intn(10000))
}
