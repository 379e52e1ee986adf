package contract

import (
	"context"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LoyaltyRepository interface {
	CreateProfile(ctx context.Context, profile *entity.LoyaltyProfile) error
	UpdateProfile(ctx context.Context, profile *entity.LoyaltyProfile) error
	FindProfile(ctx context.Context, specs ...specification.Specification) (*entity.LoyaltyProfile, error)
	// FindProfileForUpdate locks the profile row for the duration of the
	// surrounding transaction. Callers must be inside a unit of work.
	FindProfileForUpdate(ctx context.Context, userId uuid.UUID) (*entity.LoyaltyProfile, error)

	CreateTransaction(ctx context.Context, tx *entity.PointsTransaction) error
	FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.PointsTransaction, error)

	// SumAvailablePoints totals the outstanding balance across all profiles.
	SumAvailablePoints(ctx context.Context) (int64, error)
}

type RewardConfigRepository interface {
	Create(ctx context.Context, config *entity.RewardConfig) error
	Update(ctx context.Context, config *entity.RewardConfig) error
	// FindActive returns the live config, or nil when none is configured.
	FindActive(ctx context.Context) (*entity.RewardConfig, error)
}
