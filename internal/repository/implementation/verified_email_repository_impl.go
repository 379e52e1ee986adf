package implementation

import (
	"context"
	"errors"
	"strings"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/mapper"
	"streampoint-be/internal/model"
	"streampoint-be/internal/repository/contract"
	"streampoint-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerifiedEmailRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VerifiedEmailMapper
}

func NewVerifiedEmailRepository(db *gorm.DB) contract.VerifiedEmailRepository {
	return &VerifiedEmailRepositoryImpl{
		db:     db,
		mapper: mapper.NewVerifiedEmailMapper(),
	}
}

func (r *VerifiedEmailRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VerifiedEmailRepositoryImpl) Create(ctx context.Context, email *entity.VerifiedEmail) error {
	email.Email = strings.ToLower(strings.TrimSpace(email.Email))
	modelEmail := r.mapper.ToModel(email)
	if err := r.db.WithContext(ctx).Create(modelEmail).Error; err != nil {
		return err
	}
	*email = *r.mapper.ToEntity(modelEmail)
	return nil
}

func (r *VerifiedEmailRepositoryImpl) Update(ctx context.Context, email *entity.VerifiedEmail) error {
	email.Email = strings.ToLower(strings.TrimSpace(email.Email))
	modelEmail := r.mapper.ToModel(email)
	if err := r.db.WithContext(ctx).Save(modelEmail).Error; err != nil {
		return err
	}
	*email = *r.mapper.ToEntity(modelEmail)
	return nil
}

func (r *VerifiedEmailRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VerifiedEmail{}).Error
}

func (r *VerifiedEmailRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VerifiedEmail, error) {
	var modelEmail model.VerifiedEmail
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelEmail), nil
}

func (r *VerifiedEmailRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VerifiedEmail, error) {
	var models []*model.VerifiedEmail
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Service"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	emails := make([]*entity.VerifiedEmail, 0, len(models))
	for _, m := range models {
		emails = append(emails, r.mapper.ToEntity(m))
	}
	return emails, nil
}

func (r *VerifiedEmailRepositoryImpl) IsVerified(ctx context.Context, email string, serviceId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.VerifiedEmail{}).
		Where("LOWER(email) = ? AND service_id = ? AND active = ?",
			strings.ToLower(strings.TrimSpace(email)), serviceId, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
