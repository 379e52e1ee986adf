// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"
	"streampoint-be/internal/repository/unitofwork"

	adminEvents "streampoint-be/pkg/admin/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	LoginStaff(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher adminEvents.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher adminEvents.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func hashRefreshToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

func signAccessToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func toUserProfile(user *entity.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
	}
}

// Register creates the user together with its loyalty profile in one
// transaction, then logs the new user in.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &entity.LoyaltyProfile{
		Id:        uuid.New(),
		UserId:    user.Id,
		CreatedAt: time.Now(),
	}
	if err := uow.LoyaltyRepository().CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishUserRegistered(ctx, user.Id, user.Email, user.FullName)
	}

	return s.issueTokens(ctx, uow, user, ipAddress, userAgent)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.authenticate(ctx, uow, req)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, uow, user, ipAddress, userAgent)
}

// LoginStaff is the backoffice entry point. Regular accounts are refused
// even with valid credentials.
func (s *authService) LoginStaff(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.authenticate(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	if !user.IsStaff() {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, uow, user, ipAddress, userAgent)
}

func (s *authService) authenticate(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.LoginRequest) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, ErrUserBlocked
	}

	return user, nil
}

func (s *authService) issueTokens(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	rawRefreshToken := uuid.New().String()
	refreshTokenEntity := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashRefreshToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		Revoked:   false,
		CreatedAt: time.Now(),
		IpAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}

	return &dto.AuthResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User:         toUserProfile(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().RevokeRefreshToken(ctx, hashRefreshToken(refreshToken))
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	profile := toUserProfile(user)
	return &profile, nil
}
