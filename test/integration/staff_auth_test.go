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
	"golang.org/x/crypto/bcrypt"
)

func TestStaffAuth(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
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

	pass := "staff123secure"
	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)

	staffId := uuid.New()
	staff := model.User{
		Id:           staffId,
		Email:        "teststaff-" + uuid.New().String() + "@example.com",
		PasswordHash: string(hash),
		FullName:     "Test Staff",
		Role:         "staff",
		Status:       "active",
	}

	userId := uuid.New()
	regular := model.User{
		Id:           userId,
		Email:        "testuser-" + uuid.New().String() + "@example.com",
		PasswordHash: string(hash),
		FullName:     "Test User",
		Role:         "usuario",
		Status:       "active",
	}

	db.Create(&staff)
	db.Create(&regular)

	defer func() {
		db.Unscoped().Delete(&model.User{}, staffId)
		db.Unscoped().Delete(&model.User{}, userId)
	}()

	login := func(email, password string) (int, serverutils.Response[dto.AuthResponse]) {
		reqBody := dto.LoginRequest{Email: email, Password: password}
		body, _ := json.Marshal(reqBody)

		req := httptest.NewRequest("POST", "/api/management/login", strings.NewReader(string(body)))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req, -1)

		var result serverutils.Response[dto.AuthResponse]
		json.NewDecoder(resp.Body).Decode(&result)
		return resp.StatusCode, result
	}

	t.Run("Login as Staff success", func(t *testing.T) {
		status, result := login(staff.Email, pass)

		assert.Equal(t, 200, status)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Data.AccessToken)
		assert.Equal(t, "staff", result.Data.User.Role)
	})

	t.Run("Login as Regular User denied", func(t *testing.T) {
		status, _ := login(regular.Email, pass)
		assert.Equal(t, 401, status)
	})

	t.Run("Invalid Password", func(t *testing.T) {
		status, _ := login(staff.Email, "wrongpassword")
		assert.Equal(t, 401, status)
	})

	t.Run("Staff token reaches backoffice", func(t *testing.T) {
		_, result := login(staff.Email, pass)

		req := httptest.NewRequest("GET", "/api/management/validar-suscripciones", nil)
		req.Header.Set("Authorization", "Bearer "+result.Data.AccessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Regular token rejected by backoffice", func(t *testing.T) {
		reqBody := dto.LoginRequest{Email: regular.Email, Password: pass}
		body, _ := json.Marshal(reqBody)
		loginReq := httptest.NewRequest("POST", "/api/user/login", strings.NewReader(string(body)))
		loginReq.Header.Set("Content-Type", "application/json")
		loginResp, _ := app.Test(loginReq, -1)

		var result serverutils.Response[dto.AuthResponse]
		json.NewDecoder(loginResp.Body).Decode(&result)

		req := httptest.NewRequest("GET", "/api/management/validar-suscripciones", nil)
		req.Header.Set("Authorization", "Bearer "+result.Data.AccessToken)

		resp, _ := app.Test(req, -1)
		assert.Equal(t, 403, resp.StatusCode)
	})
}
