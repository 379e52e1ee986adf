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

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	modelSub := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(modelSub).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(modelSub)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.Subscription) error {
	modelSub := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(modelSub).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(modelSub)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var modelSub model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelSub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelSub), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	subs := make([]*entity.Subscription, 0, len(models))
	for _, m := range models {
		subs = append(subs, r.mapper.ToEntity(m))
	}
	return subs, nil
}

func (r *SubscriptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SubscriptionRepositoryImpl) FindOneWithRelations(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var modelSub model.Subscription
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Plan.Service").
		Where("id = ?", id).
		First(&modelSub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelSub), nil
}

func (r *SubscriptionRepositoryImpl) FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(
		r.db.WithContext(ctx).Preload("User").Preload("Plan.Service"),
		specs...,
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	subs := make([]*entity.Subscription, 0, len(models))
	for _, m := range models {
		subs = append(subs, r.mapper.ToEntity(m))
	}
	return subs, nil
}

func (r *SubscriptionRepositoryImpl) GetTotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("validated = ?", true).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&total).Error
	return total, err
}
