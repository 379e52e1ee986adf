// FILE: internal/service/loyalty_service.go
package service

import (
	"context"
	"time"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"
	"streampoint-be/internal/repository/unitofwork"
	"streampoint-be/pkg/rewards"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const rewardConfigCacheKey = "reward_config"

type ILoyaltyService interface {
	EnsureProfile(ctx context.Context, userId uuid.UUID) (*entity.LoyaltyProfile, error)
	Credit(ctx context.Context, userId uuid.UUID, amount int, reason string) error
	Debit(ctx context.Context, userId uuid.UUID, amount int, reason string) error
	// CreditInTx and DebitInTx run inside a caller-owned transaction so ledger
	// moves can commit atomically with the rest of a business operation.
	CreditInTx(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, amount int, reason string) error
	DebitInTx(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, amount int, reason string) error
	Balance(ctx context.Context, userId uuid.UUID) (*dto.PointsSummaryResponse, error)
	History(ctx context.Context, userId uuid.UUID, limit int) ([]dto.PointsTransactionResponse, error)
	ActiveConfig(ctx context.Context) rewards.Config
	InvalidateConfigCache()
}

type loyaltyService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewLoyaltyService(uowFactory unitofwork.RepositoryFactory) ILoyaltyService {
	return &loyaltyService{
		uowFactory: uowFactory,
		cache:      gocache.New(time.Minute, 5*time.Minute),
	}
}

// EnsureProfile returns the user's loyalty profile, creating an empty one
// for accounts that predate the ledger.
func (s *loyaltyService) EnsureProfile(ctx context.Context, userId uuid.UUID) (*entity.LoyaltyProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.LoyaltyRepository().FindProfile(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = &entity.LoyaltyProfile{
		Id:        uuid.New(),
		UserId:    userId,
		CreatedAt: time.Now(),
	}
	if err := uow.LoyaltyRepository().CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *loyaltyService) Credit(ctx context.Context, userId uuid.UUID, amount int, reason string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.CreditInTx(ctx, uow, userId, amount, reason); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *loyaltyService) Debit(ctx context.Context, userId uuid.UUID, amount int, reason string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := s.DebitInTx(ctx, uow, userId, amount, reason); err != nil {
		return err
	}
	return uow.Commit()
}

// CreditInTx locks the profile row, grows both balances and appends the
// ledger entry. Zero and negative amounts are no-ops.
func (s *loyaltyService) CreditInTx(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, amount int, reason string) error {
	if amount <= 0 {
		return nil
	}

	profile, err := s.lockProfile(ctx, uow, userId)
	if err != nil {
		return err
	}

	profile.TotalPoints += amount
	profile.AvailablePoints += amount
	if err := uow.LoyaltyRepository().UpdateProfile(ctx, profile); err != nil {
		return err
	}

	return uow.LoyaltyRepository().CreateTransaction(ctx, &entity.PointsTransaction{
		Id:          uuid.New(),
		ProfileId:   profile.Id,
		Kind:        entity.TransactionEarned,
		Amount:      amount,
		Description: reason,
		CreatedAt:   time.Now(),
	})
}

// DebitInTx fails with ErrInsufficientPoints before touching anything when
// the available balance cannot cover the amount. TotalPoints is untouched:
// it tracks lifetime earnings.
func (s *loyaltyService) DebitInTx(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, amount int, reason string) error {
	if amount <= 0 {
		return nil
	}

	profile, err := s.lockProfile(ctx, uow, userId)
	if err != nil {
		return err
	}

	if profile.AvailablePoints < amount {
		return ErrInsufficientPoints
	}

	profile.AvailablePoints -= amount
	if err := uow.LoyaltyRepository().UpdateProfile(ctx, profile); err != nil {
		return err
	}

	return uow.LoyaltyRepository().CreateTransaction(ctx, &entity.PointsTransaction{
		Id:          uuid.New(),
		ProfileId:   profile.Id,
		Kind:        entity.TransactionRedeemed,
		Amount:      amount,
		Description: reason,
		CreatedAt:   time.Now(),
	})
}

func (s *loyaltyService) lockProfile(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.LoyaltyProfile, error) {
	profile, err := uow.LoyaltyRepository().FindProfileForUpdate(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.LoyaltyProfile{
			Id:        uuid.New(),
			UserId:    userId,
			CreatedAt: time.Now(),
		}
		if err := uow.LoyaltyRepository().CreateProfile(ctx, profile); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (s *loyaltyService) Balance(ctx context.Context, userId uuid.UUID) (*dto.PointsSummaryResponse, error) {
	profile, err := s.EnsureProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	transactions, err := s.History(ctx, userId, 50)
	if err != nil {
		return nil, err
	}

	cfg := s.ActiveConfig(ctx)
	return &dto.PointsSummaryResponse{
		TotalPoints:     profile.TotalPoints,
		AvailablePoints: profile.AvailablePoints,
		PointsPerPeso:   cfg.PointsPerPeso,
		MinRedeemPoints: cfg.MinRedeemPoints,
		Transactions:    transactions,
	}, nil
}

func (s *loyaltyService) History(ctx context.Context, userId uuid.UUID, limit int) ([]dto.PointsTransactionResponse, error) {
	profile, err := s.EnsureProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	// FindTransactions returns newest-first already
	txs, err := uow.LoyaltyRepository().FindTransactions(ctx,
		specification.ByProfileID{ProfileID: profile.Id},
		specification.Pagination{Limit: limit, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.PointsTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		res = append(res, dto.PointsTransactionResponse{
			Id:          tx.Id,
			Kind:        string(tx.Kind),
			Amount:      tx.Amount,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return res, nil
}

// ActiveConfig returns the live reward policy, cached for a minute. Missing
// or broken config degrades to the defaults rather than failing requests.
func (s *loyaltyService) ActiveConfig(ctx context.Context) rewards.Config {
	if cached, found := s.cache.Get(rewardConfigCacheKey); found {
		return cached.(rewards.Config)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cfg := rewards.DefaultConfig()
	if stored, err := uow.RewardConfigRepository().FindActive(ctx); err == nil && stored != nil {
		cfg = rewards.Config{
			PointsPerPeso:   stored.PointsPerPeso,
			MinRedeemPoints: stored.MinRedeemPoints,
		}
	}

	s.cache.Set(rewardConfigCacheKey, cfg, gocache.DefaultExpiration)
	return cfg
}

func (s *loyaltyService) InvalidateConfigCache() {
	s.cache.Delete(rewardConfigCacheKey)
}
