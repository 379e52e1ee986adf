package implementation

import (
	"context"
	"errors"
	"time"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/mapper"
	"streampoint-be/internal/model"
	"streampoint-be/internal/repository/contract"
	"streampoint-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InvoiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InvoiceMapper
}

func NewInvoiceRepository(db *gorm.DB) contract.InvoiceRepository {
	return &InvoiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewInvoiceMapper(),
	}
}

func (r *InvoiceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, invoice *entity.Invoice) error {
	modelInvoice := r.mapper.ToModel(invoice)
	if err := r.db.WithContext(ctx).Create(modelInvoice).Error; err != nil {
		return err
	}
	*invoice = *r.mapper.ToEntity(modelInvoice)
	return nil
}

func (r *InvoiceRepositoryImpl) Update(ctx context.Context, invoice *entity.Invoice) error {
	modelInvoice := r.mapper.ToModel(invoice)
	if err := r.db.WithContext(ctx).Save(modelInvoice).Error; err != nil {
		return err
	}
	*invoice = *r.mapper.ToEntity(modelInvoice)
	return nil
}

func (r *InvoiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error) {
	var modelInvoice model.Invoice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelInvoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelInvoice), nil
}

func (r *InvoiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error) {
	var models []*model.Invoice
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	invoices := make([]*entity.Invoice, 0, len(models))
	for _, m := range models {
		invoices = append(invoices, r.mapper.ToEntity(m))
	}
	return invoices, nil
}

func (r *InvoiceRepositoryImpl) MarkPaid(ctx context.Context, orderId string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("midtrans_order_id = ?", orderId).
		Updates(map[string]interface{}{
			"paid":    true,
			"paid_at": &now,
		}).Error
}
