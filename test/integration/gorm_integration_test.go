package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/unitofwork"
	"streampoint-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SubscriptionRepository())
	assert.NotNil(t, uow.LoyaltyRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Purchase Repository", func(t *testing.T) {
		count, err := uow.PurchaseRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Purchase count: %d", count)
	})

	t.Run("Check Transactional Subscription Create", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:           uuid.New(),
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash: "x",
			FullName:     "Integration Test User",
			Role:         entity.UserRoleUser,
			Status:       entity.UserStatusActive,
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		category := &entity.Category{
			Id:     uuid.New(),
			Name:   "Integration-" + uuid.New().String(),
			Active: true,
		}
		err = uow.CatalogRepository().CreateCategory(ctx, category)
		assert.NoError(t, err)

		svc := &entity.StreamingService{
			Id:         uuid.New(),
			CategoryId: category.Id,
			Name:       "Integration Service " + uuid.New().String(),
			Active:     true,
		}
		err = uow.CatalogRepository().CreateService(ctx, svc)
		assert.NoError(t, err)

		plan := &entity.Plan{
			Id:        uuid.New(),
			ServiceId: svc.Id,
			Name:      "Plan Integración",
			Price:     25000,
			Duration:  entity.DurationMonthly,
			Active:    true,
		}
		err = uow.CatalogRepository().CreatePlan(ctx, plan)
		assert.NoError(t, err)

		// Transaction Test: subscription and invoice commit together
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		now := time.Now()
		sub := &entity.Subscription{
			Id:            uuid.New(),
			UserId:        user.Id,
			PlanId:        plan.Id,
			StartDate:     now,
			ExpiresAt:     entity.ExpiryFor(now, plan.Duration),
			Status:        entity.SubscriptionPending,
			PaymentMethod: entity.PaymentPSE,
			AmountPaid:    plan.Price,
			FirstPurchase: true,
			ServiceEmail:  user.Email,
		}
		err = uow.SubscriptionRepository().Create(ctx, sub)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Subscription in Transaction")
	})
}
