package contract

import (
	"context"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PurchaseRepository interface {
	Create(ctx context.Context, record *entity.PurchaseRecord) error
	Update(ctx context.Context, record *entity.PurchaseRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PurchaseRecord, error)
	FindOneWithRelations(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PurchaseRecord, error)
	FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.PurchaseRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
