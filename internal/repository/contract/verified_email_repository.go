package contract

import (
	"context"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VerifiedEmailRepository interface {
	Create(ctx context.Context, email *entity.VerifiedEmail) error
	Update(ctx context.Context, email *entity.VerifiedEmail) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VerifiedEmail, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VerifiedEmail, error)
	// IsVerified checks for an active allow-list row for (email, service).
	IsVerified(ctx context.Context, email string, serviceId uuid.UUID) (bool, error)
}
