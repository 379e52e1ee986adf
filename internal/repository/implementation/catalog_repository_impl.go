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

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CatalogRepositoryImpl) CreateCategory(ctx context.Context, category *entity.Category) error {
	modelCategory := r.mapper.CategoryToModel(category)
	if err := r.db.WithContext(ctx).Create(modelCategory).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(modelCategory)
	return nil
}

func (r *CatalogRepositoryImpl) FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	categories := make([]*entity.Category, 0, len(models))
	for _, m := range models {
		categories = append(categories, r.mapper.CategoryToEntity(m))
	}
	return categories, nil
}

func (r *CatalogRepositoryImpl) FindOneCategory(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var modelCategory model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelCategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CategoryToEntity(&modelCategory), nil
}

func (r *CatalogRepositoryImpl) CreateService(ctx context.Context, service *entity.StreamingService) error {
	modelService := r.mapper.ServiceToModel(service)
	if err := r.db.WithContext(ctx).Create(modelService).Error; err != nil {
		return err
	}
	*service = *r.mapper.ServiceToEntity(modelService)
	return nil
}

func (r *CatalogRepositoryImpl) UpdateService(ctx context.Context, service *entity.StreamingService) error {
	modelService := r.mapper.ServiceToModel(service)
	if err := r.db.WithContext(ctx).Save(modelService).Error; err != nil {
		return err
	}
	*service = *r.mapper.ServiceToEntity(modelService)
	return nil
}

func (r *CatalogRepositoryImpl) FindOneService(ctx context.Context, specs ...specification.Specification) (*entity.StreamingService, error) {
	var modelService model.StreamingService
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelService).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ServiceToEntity(&modelService), nil
}

func (r *CatalogRepositoryImpl) FindAllServices(ctx context.Context, specs ...specification.Specification) ([]*entity.StreamingService, error) {
	var models []*model.StreamingService
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Category"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	services := make([]*entity.StreamingService, 0, len(models))
	for _, m := range models {
		services = append(services, r.mapper.ServiceToEntity(m))
	}
	return services, nil
}

func (r *CatalogRepositoryImpl) FindServiceWithPlans(ctx context.Context, id uuid.UUID) (*entity.StreamingService, error) {
	var modelService model.StreamingService
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Plans", "active = ?", true).
		Where("id = ?", id).
		First(&modelService).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ServiceToEntity(&modelService), nil
}

func (r *CatalogRepositoryImpl) CreatePlan(ctx context.Context, plan *entity.Plan) error {
	modelPlan := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(modelPlan).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(modelPlan)
	return nil
}

func (r *CatalogRepositoryImpl) UpdatePlan(ctx context.Context, plan *entity.Plan) error {
	modelPlan := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Save(modelPlan).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(modelPlan)
	return nil
}

func (r *CatalogRepositoryImpl) FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	var modelPlan model.Plan
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Service"), specs...)
	if err := query.First(&modelPlan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&modelPlan), nil
}

func (r *CatalogRepositoryImpl) FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	var models []*model.Plan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	plans := make([]*entity.Plan, 0, len(models))
	for _, m := range models {
		plans = append(plans, r.mapper.PlanToEntity(m))
	}
	return plans, nil
}
