package contract

import (
	"context"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindOneWithRelations preloads user and plan (with service).
	FindOneWithRelations(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)

	// Dashboard / Admin Stats
	GetTotalRevenue(ctx context.Context) (float64, error)
}
