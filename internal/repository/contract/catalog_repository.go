package contract

import (
	"context"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CatalogRepository interface {
	// Categories
	CreateCategory(ctx context.Context, category *entity.Category) error
	FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)
	FindOneCategory(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)

	// Streaming services
	CreateService(ctx context.Context, service *entity.StreamingService) error
	UpdateService(ctx context.Context, service *entity.StreamingService) error
	FindOneService(ctx context.Context, specs ...specification.Specification) (*entity.StreamingService, error)
	FindAllServices(ctx context.Context, specs ...specification.Specification) ([]*entity.StreamingService, error)
	// FindServiceWithPlans preloads the service's active plans.
	FindServiceWithPlans(ctx context.Context, id uuid.UUID) (*entity.StreamingService, error)

	// Plans
	CreatePlan(ctx context.Context, plan *entity.Plan) error
	UpdatePlan(ctx context.Context, plan *entity.Plan) error
	FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)
}
