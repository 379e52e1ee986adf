package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"streampoint-be/internal/bootstrap"
	"streampoint-be/internal/config"
	"streampoint-be/internal/dto"
	"streampoint-be/internal/model"
	"streampoint-be/internal/pkg/serverutils"
	"streampoint-be/internal/server"
	"streampoint-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Covers the happy path end to end: registration, direct subscription with a
// verified email, staff validation, and the resulting points balance.
func TestSubscriptionFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	// Seed catalog
	category := model.Category{Id: uuid.New(), Name: "Flow-" + uuid.New().String(), Active: true}
	require.NoError(t, db.Create(&category).Error)

	service := model.StreamingService{
		Id:         uuid.New(),
		CategoryId: category.Id,
		Name:       "Flow Service " + uuid.New().String(),
		Active:     true,
	}
	require.NoError(t, db.Create(&service).Error)

	plan := model.Plan{
		Id:                  uuid.New(),
		ServiceId:           service.Id,
		Name:                "Plan Flow",
		Price:               30000,
		Duration:            "mensual",
		Features:            datatypes.JSON([]byte(`["HD"]`)),
		FirstPurchasePoints: 100,
		RenewalPoints:       50,
		Active:              true,
	}
	require.NoError(t, db.Create(&plan).Error)

	// Seed staff reviewer
	hash, _ := bcrypt.GenerateFromPassword([]byte("staff123secure"), bcrypt.DefaultCost)
	staff := model.User{
		Id:           uuid.New(),
		Email:        "flowstaff-" + uuid.New().String() + "@example.com",
		PasswordHash: string(hash),
		FullName:     "Flow Staff",
		Role:         "staff",
		Status:       "active",
	}
	require.NoError(t, db.Create(&staff).Error)

	userEmail := "flowuser-" + uuid.New().String() + "@example.com"

	// The service email must be on the verified list before subscribing
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
		db.Exec("DELETE FROM subscriptions WHERE plan_id = ?", plan.Id)
		db.Unscoped().Delete(&model.VerifiedEmail{}, verified.Id)
		db.Unscoped().Delete(&model.Plan{}, plan.Id)
		db.Unscoped().Delete(&model.StreamingService{}, service.Id)
		db.Unscoped().Delete(&model.Category{}, category.Id)
		db.Unscoped().Delete(&model.User{}, staff.Id)
		db.Exec("DELETE FROM user_refresh_tokens WHERE user_id IN (SELECT id FROM users WHERE email = ?)", userEmail)
		db.Exec("DELETE FROM users WHERE email = ?", userEmail)
	}()

	postJSON := func(path, token string, payload any) (*serverutils.Response[json.RawMessage], int) {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", path, strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, _ := app.Test(req, -1)

		var result serverutils.Response[json.RawMessage]
		json.NewDecoder(resp.Body).Decode(&result)
		return &result, resp.StatusCode
	}

	// 1. Register
	regResult, status := postJSON("/api/user/registro", "", dto.RegisterRequest{
		Email:    userEmail,
		Password: "flowpass123",
		FullName: "Flow User",
	})
	require.Equal(t, 201, status)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(regResult.Data, &auth))
	require.NotEmpty(t, auth.AccessToken)

	// 2. Subscribe (direct pendiente path)
	subResult, status := postJSON("/api/user/suscribirse/"+plan.Id.String(), auth.AccessToken, dto.SubscribeRequest{
		ServiceEmail:  userEmail,
		PaymentMethod: "pse",
	})
	require.Equal(t, 201, status)

	var sub dto.SubscriptionResponse
	require.NoError(t, json.Unmarshal(subResult.Data, &sub))
	assert.Equal(t, "pendiente", sub.Status)
	assert.False(t, sub.Validated)
	assert.True(t, sub.FirstPurchase)

	// A second subscription on the same service is not a first purchase,
	// even while the earlier one is still pendiente. Otherwise validating
	// both would hand out the first-purchase bonus twice.
	secondResult, status := postJSON("/api/user/suscribirse/"+plan.Id.String(), auth.AccessToken, dto.SubscribeRequest{
		ServiceEmail:  userEmail,
		PaymentMethod: "pse",
	})
	require.Equal(t, 201, status)
	var secondSub dto.SubscriptionResponse
	require.NoError(t, json.Unmarshal(secondResult.Data, &secondSub))
	assert.False(t, secondSub.FirstPurchase)

	// 3. Staff validates
	staffLogin, status := postJSON("/api/management/login", "", dto.LoginRequest{
		Email:    staff.Email,
		Password: "staff123secure",
	})
	require.Equal(t, 200, status)
	var staffAuth dto.AuthResponse
	require.NoError(t, json.Unmarshal(staffLogin.Data, &staffAuth))

	reviewResult, status := postJSON("/api/management/validar-suscripcion/"+sub.Id.String(), staffAuth.AccessToken, dto.ValidateSubscriptionRequest{
		Action: "validar",
	})
	require.Equal(t, 200, status)

	var reviewed dto.SubscriptionResponse
	require.NoError(t, json.Unmarshal(reviewResult.Data, &reviewed))
	assert.Equal(t, "activa", reviewed.Status)
	assert.True(t, reviewed.Validated)
	assert.Equal(t, plan.FirstPurchasePoints, reviewed.PointsAwarded)

	// 4. Points balance reflects the award
	req := httptest.NewRequest("GET", "/api/user/puntos", nil)
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	resp, _ := app.Test(req, -1)
	require.Equal(t, 200, resp.StatusCode)

	var pointsResult serverutils.Response[dto.PointsSummaryResponse]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pointsResult))
	assert.Equal(t, plan.FirstPurchasePoints, pointsResult.Data.AvailablePoints)
}
