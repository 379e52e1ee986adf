package contract

import (
	"context"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error)
	MarkPaid(ctx context.Context, orderId string) error
}
