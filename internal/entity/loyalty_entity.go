// FILE: internal/entity/loyalty_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionKind string

const (
	TransactionEarned   TransactionKind = "ganado"
	TransactionRedeemed TransactionKind = "canjeado"
)

// LoyaltyProfile is the per-user points balance. TotalPoints only ever grows;
// AvailablePoints is what redemptions can spend.
type LoyaltyProfile struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	TotalPoints     int
	AvailablePoints int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PointsTransaction is one append-only ledger row. Amount is always positive,
// Kind tells the direction.
type PointsTransaction struct {
	Id          uuid.UUID
	ProfileId   uuid.UUID
	Kind        TransactionKind
	Amount      int
	Description string
	CreatedAt   time.Time
}

// RewardConfig is the staff-tunable accrual policy. The single active row wins.
type RewardConfig struct {
	Id              uuid.UUID
	PointsPerPeso   int
	MinRedeemPoints int
	Active          bool
	UpdatedAt       time.Time
}
