// FILE: internal/dto/loyalty_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type PointsTransactionResponse struct {
	Id          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Amount      int       `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type PointsSummaryResponse struct {
	TotalPoints     int                         `json:"total_points"`
	AvailablePoints int                         `json:"available_points"`
	PointsPerPeso   int                         `json:"points_per_peso"`
	MinRedeemPoints int                         `json:"min_redeem_points"`
	Transactions    []PointsTransactionResponse `json:"transactions"`
}
