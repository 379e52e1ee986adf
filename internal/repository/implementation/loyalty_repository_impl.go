package implementation

import (
	"context"
	"errors"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/mapper"
	"streampoint-be/internal/model"
	"streampoint-be/internal/repository/contract"
	"streampoint-be/internal/repository/scope"
	"streampoint-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoyaltyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LoyaltyMapper
}

func NewLoyaltyRepository(db *gorm.DB) contract.LoyaltyRepository {
	return &LoyaltyRepositoryImpl{
		db:     db,
		mapper: mapper.NewLoyaltyMapper(),
	}
}

func (r *LoyaltyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LoyaltyRepositoryImpl) CreateProfile(ctx context.Context, profile *entity.LoyaltyProfile) error {
	modelProfile := r.mapper.ProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ProfileToEntity(modelProfile)
	return nil
}

func (r *LoyaltyRepositoryImpl) UpdateProfile(ctx context.Context, profile *entity.LoyaltyProfile) error {
	modelProfile := r.mapper.ProfileToModel(profile)
	if err := r.db.WithContext(ctx).Save(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ProfileToEntity(modelProfile)
	return nil
}

func (r *LoyaltyRepositoryImpl) FindProfile(ctx context.Context, specs ...specification.Specification) (*entity.LoyaltyProfile, error) {
	var modelProfile model.LoyaltyProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&modelProfile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProfileToEntity(&modelProfile), nil
}

// FindProfileForUpdate takes a row lock so concurrent credits and debits
// serialize on the profile. Only meaningful inside a transaction.
func (r *LoyaltyRepositoryImpl) FindProfileForUpdate(ctx context.Context, userId uuid.UUID) (*entity.LoyaltyProfile, error) {
	var modelProfile model.LoyaltyProfile
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userId).
		First(&modelProfile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProfileToEntity(&modelProfile), nil
}

func (r *LoyaltyRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.PointsTransaction) error {
	modelTx := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(modelTx).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(modelTx)
	return nil
}

func (r *LoyaltyRepositoryImpl) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.PointsTransaction, error) {
	var models []*model.PointsTransaction
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	txs := make([]*entity.PointsTransaction, 0, len(models))
	for _, m := range models {
		txs = append(txs, r.mapper.TransactionToEntity(m))
	}
	return txs, nil
}

func (r *LoyaltyRepositoryImpl) SumAvailablePoints(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.LoyaltyProfile{}).
		Select("COALESCE(SUM(available_points), 0)").
		Scan(&total).Error
	return total, err
}

type RewardConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LoyaltyMapper
}

func NewRewardConfigRepository(db *gorm.DB) contract.RewardConfigRepository {
	return &RewardConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewLoyaltyMapper(),
	}
}

func (r *RewardConfigRepositoryImpl) Create(ctx context.Context, config *entity.RewardConfig) error {
	modelConfig := r.mapper.RewardConfigToModel(config)
	if err := r.db.WithContext(ctx).Create(modelConfig).Error; err != nil {
		return err
	}
	*config = *r.mapper.RewardConfigToEntity(modelConfig)
	return nil
}

func (r *RewardConfigRepositoryImpl) Update(ctx context.Context, config *entity.RewardConfig) error {
	modelConfig := r.mapper.RewardConfigToModel(config)
	if err := r.db.WithContext(ctx).Save(modelConfig).Error; err != nil {
		return err
	}
	*config = *r.mapper.RewardConfigToEntity(modelConfig)
	return nil
}

func (r *RewardConfigRepositoryImpl) FindActive(ctx context.Context) (*entity.RewardConfig, error) {
	var modelConfig model.RewardConfig
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("updated_at DESC").
		First(&modelConfig).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RewardConfigToEntity(&modelConfig), nil
}
