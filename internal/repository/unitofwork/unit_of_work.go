package unitofwork

import (
	"context"

	"streampoint-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CatalogRepository() contract.CatalogRepository
	SubscriptionRepository() contract.SubscriptionRepository
	LoyaltyRepository() contract.LoyaltyRepository
	RewardConfigRepository() contract.RewardConfigRepository
	PurchaseRepository() contract.PurchaseRepository
	InvoiceRepository() contract.InvoiceRepository
	VerifiedEmailRepository() contract.VerifiedEmailRepository
}
