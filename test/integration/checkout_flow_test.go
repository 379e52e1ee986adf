package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"streampoint-be/internal/bootstrap"
	"streampoint-be/internal/config"
	"streampoint-be/internal/dto"
	"streampoint-be/internal/model"
	"streampoint-be/internal/pkg/serverutils"
	"streampoint-be/internal/server"
	"streampoint-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// Covers the two-step checkout end to end: opening the session, completing
// it with a card remainder while the payment gateway is unreachable, and the
// one-shot nature of the session. Completing an order must consume the
// session even when the gateway handoff fails, so a client retry cannot file
// the same order twice.
func TestCheckoutFlowSessionConsumed(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		t.Skipf("Skipping integration test: bad REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping integration test: Redis not reachable: %v", err)
	}
	rdb.Close()

	// Force the gateway handoff to fail.
	t.Setenv("MIDTRANS_SERVER_KEY", "invalid-key-for-test")

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	category := model.Category{Id: uuid.New(), Name: "Checkout-" + uuid.New().String(), Active: true}
	require.NoError(t, db.Create(&category).Error)

	service := model.StreamingService{
		Id:         uuid.New(),
		CategoryId: category.Id,
		Name:       "Checkout Service " + uuid.New().String(),
		Active:     true,
	}
	require.NoError(t, db.Create(&service).Error)

	plan := model.Plan{
		Id:                  uuid.New(),
		ServiceId:           service.Id,
		Name:                "Plan Checkout",
		Price:               25000,
		Duration:            "mensual",
		Features:            datatypes.JSON([]byte(`["HD"]`)),
		FirstPurchasePoints: 100,
		RenewalPoints:       50,
		Active:              true,
	}
	require.NoError(t, db.Create(&plan).Error)

	userEmail := "checkoutuser-" + uuid.New().String() + "@example.com"

	verified := model.VerifiedEmail{
		Id:        uuid.New(),
		Email:     userEmail,
		ServiceId: service.Id,
		Active:    true,
	}
	require.NoError(t, db.Create(&verified).Error)

	defer func() {
		db.Exec("DELETE FROM points_transactions WHERE profile_id IN (SELECT id FROM loyalty_profiles WHERE user_id IN (SELECT id FROM users WHERE email = ?))", userEmail)
		db.Exec("DELETE FROM loyalty_profiles WHERE user_id IN (SELECT id FROM users WHERE email = ?)", userEmail)
		db.Exec("DELETE FROM invoices WHERE subscription_id IN (SELECT id FROM subscriptions WHERE plan_id = ?)", plan.Id)
		db.Exec("DELETE FROM subscriptions WHERE plan_id = ?", plan.Id)
		db.Unscoped().Delete(&model.VerifiedEmail{}, verified.Id)
		db.Unscoped().Delete(&model.Plan{}, plan.Id)
		db.Unscoped().Delete(&model.StreamingService{}, service.Id)
		db.Unscoped().Delete(&model.Category{}, category.Id)
		db.Exec("DELETE FROM user_refresh_tokens WHERE user_id IN (SELECT id FROM users WHERE email = ?)", userEmail)
		db.Exec("DELETE FROM users WHERE email = ?", userEmail)
	}()

	doJSON := func(method, path, token string, payload any) (*serverutils.Response[json.RawMessage], int) {
		var body string
		if payload != nil {
			raw, _ := json.Marshal(payload)
			body = string(raw)
		}
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, _ := app.Test(req, int(30*time.Second/time.Millisecond))

		var result serverutils.Response[json.RawMessage]
		json.NewDecoder(resp.Body).Decode(&result)
		return &result, resp.StatusCode
	}

	regResult, status := doJSON("POST", "/api/user/registro", "", dto.RegisterRequest{
		Email:    userEmail,
		Password: "checkoutpass123",
		FullName: "Checkout User",
	})
	require.Equal(t, 201, status)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(regResult.Data, &auth))
	require.NotEmpty(t, auth.AccessToken)

	// 1. Open the checkout session
	_, status = doJSON("GET", "/api/user/suscribirse/"+plan.Id.String()+"?service_email="+userEmail, auth.AccessToken, nil)
	require.Equal(t, 200, status)

	sessionResult, status := doJSON("GET", "/api/user/pasarela-pago", auth.AccessToken, nil)
	require.Equal(t, 200, status)
	var session dto.CheckoutSessionResponse
	require.NoError(t, json.Unmarshal(sessionResult.Data, &session))
	assert.Equal(t, plan.Price, session.Plan.Price)

	// 2. Complete with a card remainder. The bogus gateway key makes the
	// snap handoff fail, but the order is already committed so the call
	// still succeeds, just without a redirect URL.
	completeResult, status := doJSON("POST", "/api/user/pasarela-pago", auth.AccessToken, dto.CompleteCheckoutRequest{
		FullName:        "Checkout User",
		Email:           userEmail,
		PointsUsed:      0,
		SecondaryMethod: "tarjeta",
	})
	require.Equal(t, 201, status)

	var result dto.CheckoutResultResponse
	require.NoError(t, json.Unmarshal(completeResult.Data, &result))
	assert.Equal(t, "activa", result.Subscription.Status)
	assert.Empty(t, result.Invoice.SnapRedirectURL)
	assert.False(t, result.Invoice.Paid)

	// 3. The session is gone: reading it fails and a retried completion
	// cannot file a second order.
	_, status = doJSON("GET", "/api/user/pasarela-pago", auth.AccessToken, nil)
	assert.Equal(t, 400, status)

	_, status = doJSON("POST", "/api/user/pasarela-pago", auth.AccessToken, dto.CompleteCheckoutRequest{
		FullName:        "Checkout User",
		Email:           userEmail,
		PointsUsed:      0,
		SecondaryMethod: "tarjeta",
	})
	assert.Equal(t, 400, status)

	var count int64
	require.NoError(t, db.Table("subscriptions").Where("plan_id = ?", plan.Id).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
