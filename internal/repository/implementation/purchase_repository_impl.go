package implementation

import (
	"context"
	"errors"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/mapper"
	"streampoint-be/internal/model"
	"streampoint-be/internal/repository/contract"
	"streampoint-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PurchaseMapper
}

func NewPurchaseRepository(db *gorm.DB) contract.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewPurchaseMapper(),
	}
}

func (r *PurchaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PurchaseRepositoryImpl) Create(ctx context.Context, record *entity.PurchaseRecord) error {
	modelRecord := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(modelRecord)
	return nil
}

func (r *PurchaseRepositoryImpl) Update(ctx context.Context, record *entity.PurchaseRecord) error {
	modelRecord := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Save(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(modelRecord)
	return nil
}

func (r *PurchaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PurchaseRecord, error) {
	var modelRecord model.PurchaseRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelRecord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelRecord), nil
}

func (r *PurchaseRepositoryImpl) FindOneWithRelations(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error) {
	var modelRecord model.PurchaseRecord
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Preload("Plan").
		Where("id = ?", id).
		First(&modelRecord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelRecord), nil
}

func (r *PurchaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PurchaseRecord, error) {
	var models []*model.PurchaseRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	records := make([]*entity.PurchaseRecord, 0, len(models))
	for _, m := range models {
		records = append(records, r.mapper.ToEntity(m))
	}
	return records, nil
}

func (r *PurchaseRepositoryImpl) FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.PurchaseRecord, error) {
	var models []*model.PurchaseRecord
	query := r.applySpecifications(
		r.db.WithContext(ctx).Preload("User").Preload("Service").Preload("Plan"),
		specs...,
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	records := make([]*entity.PurchaseRecord, 0, len(models))
	for _, m := range models {
		records = append(records, r.mapper.ToEntity(m))
	}
	return records, nil
}

func (r *PurchaseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PurchaseRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
