// FILE: internal/service/admin_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/entity"
	"streampoint-be/internal/pkg/logger"
	"streampoint-be/internal/repository/specification"
	"streampoint-be/internal/repository/unitofwork"
	"streampoint-be/pkg/admin/approval"
	"streampoint-be/pkg/admin/dashboard"
	adminEvents "streampoint-be/pkg/admin/events"
	"streampoint-be/pkg/rewards"

	"github.com/google/uuid"
)

type IAdminService interface {
	DashboardStats(ctx context.Context) (*dto.AdminDashboardStats, error)

	PendingSubscriptions(ctx context.Context) ([]dto.SubscriptionResponse, error)
	ReviewSubscription(ctx context.Context, staffId, subscriptionId uuid.UUID, req *dto.ValidateSubscriptionRequest) (*dto.SubscriptionResponse, error)

	PendingPurchases(ctx context.Context) ([]dto.PurchaseResponse, error)
	GetPurchase(ctx context.Context, purchaseId uuid.UUID) (*dto.PurchaseResponse, error)
	ReviewPurchase(ctx context.Context, staffId, purchaseId uuid.UUID, req *dto.ReviewPurchaseRequest) (*dto.PurchaseResponse, error)

	AdjustPoints(ctx context.Context, staffId uuid.UUID, req *dto.AdjustPointsRequest) (*dto.PointsSummaryResponse, error)

	ListVerifiedEmails(ctx context.Context) ([]dto.VerifiedEmailResponse, error)
	AddVerifiedEmail(ctx context.Context, staffId uuid.UUID, req *dto.VerifiedEmailRequest) (*dto.VerifiedEmailResponse, error)
	UpdateVerifiedEmail(ctx context.Context, id uuid.UUID, req *dto.VerifiedEmailRequest) (*dto.VerifiedEmailResponse, error)
	RemoveVerifiedEmail(ctx context.Context, id uuid.UUID) error

	GetRewardConfig(ctx context.Context) (*dto.RewardConfigResponse, error)
	UpdateRewardConfig(ctx context.Context, req *dto.RewardConfigRequest) (*dto.RewardConfigResponse, error)

	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	uowFactory     unitofwork.RepositoryFactory
	loyaltyService ILoyaltyService
	aggregator     *dashboard.Aggregator
	mailPublisher  IPublisherService
	eventPublisher adminEvents.Publisher
	logger         logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	loyaltyService ILoyaltyService,
	aggregator *dashboard.Aggregator,
	mailPublisher IPublisherService,
	eventPublisher adminEvents.Publisher,
	logger logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:     uowFactory,
		loyaltyService: loyaltyService,
		aggregator:     aggregator,
		mailPublisher:  mailPublisher,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*dto.AdminDashboardStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.aggregator.GetStats(ctx, uow)
}

func (s *adminService) PendingSubscriptions(ctx context.Context) ([]dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAllWithRelations(ctx,
		specification.ByStatus{Status: string(entity.SubscriptionPending)},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, toSubscriptionResponse(sub, now))
	}
	return responses, nil
}

// ReviewSubscription applies the staff verdict. Validation runs the accrual
// at most once: an already-awarded or points-funded record activates without
// crediting anything.
func (s *adminService) ReviewSubscription(ctx context.Context, staffId, subscriptionId uuid.UUID, req *dto.ValidateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOneWithRelations(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNotFound
	}

	now := time.Now()

	if req.Action == "rechazar" {
		if err := approval.RejectSubscription(sub, req.Notes); err != nil {
			return nil, err
		}
		sub.UpdatedAt = now
		if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
			return nil, err
		}
		if s.eventPublisher != nil {
			planName := ""
			if sub.Plan != nil {
				planName = sub.Plan.Name
			}
			s.eventPublisher.PublishSubscriptionRejected(ctx, sub.Id, sub.UserId, planName, req.Notes)
		}
		res := toSubscriptionResponse(sub, now)
		return &res, nil
	}

	accrue, err := approval.ValidateSubscription(sub, now)
	if err != nil {
		return nil, err
	}

	award := 0
	if accrue {
		award = rewards.SubscriptionAward(sub.Plan, sub.FirstPurchase, sub.PaymentMethod)
		if req.PointsOverride != nil {
			award = *req.PointsOverride
		}
		sub.PointsAwarded = award
	}
	sub.UpdatedAt = now
	if req.Notes != "" {
		sub.Notes = req.Notes
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, err
	}
	if award > 0 {
		planName := ""
		if sub.Plan != nil {
			planName = sub.Plan.Name
		}
		if err := s.loyaltyService.CreditInTx(ctx, uow, sub.UserId, award,
			"Puntos por suscripción validada: "+planName); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	planName := ""
	if sub.Plan != nil {
		planName = sub.Plan.Name
	}
	if s.eventPublisher != nil {
		s.eventPublisher.PublishSubscriptionValidated(ctx, sub.Id, sub.UserId, planName, award)
	}
	if sub.User != nil {
		s.queueValidationEmail(ctx, sub.User, planName, award)
	}

	res := toSubscriptionResponse(sub, now)
	return &res, nil
}

func (s *adminService) queueValidationEmail(ctx context.Context, user *entity.User, planName string, award int) {
	if s.mailPublisher == nil {
		return
	}

	payload, err := json.Marshal(dto.EmailDispatchMessage{
		Kind:          dto.EmailKindSubscriptionValidated,
		ToEmail:       user.Email,
		FullName:      user.FullName,
		PlanName:      planName,
		PointsAwarded: award,
	})
	if err != nil {
		return
	}
	if err := s.mailPublisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to queue validation email for %s: %v\n", user.Email, err)
	}
}

func (s *adminService) PendingPurchases(ctx context.Context) ([]dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.PurchaseRepository().FindAllWithRelations(ctx,
		specification.Filter("status", entity.PurchasePending),
		specification.OrderBy{Field: "submitted_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PurchaseResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toPurchaseResponse(record))
	}
	return responses, nil
}

func (s *adminService) GetPurchase(ctx context.Context, purchaseId uuid.UUID) (*dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.PurchaseRepository().FindOneWithRelations(ctx, purchaseId)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}

	res := toPurchaseResponse(record)
	return &res, nil
}

func (s *adminService) ReviewPurchase(ctx context.Context, staffId, purchaseId uuid.UUID, req *dto.ReviewPurchaseRequest) (*dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	record, err := uow.PurchaseRepository().FindOneWithRelations(ctx, purchaseId)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}

	serviceName := ""
	if record.Service != nil {
		serviceName = record.Service.Name
	}

	decision := approval.Decision{
		ReviewerId:     staffId,
		Notes:          req.Notes,
		PointsOverride: -1,
		At:             time.Now(),
	}
	if req.PointsOverride != nil {
		decision.PointsOverride = *req.PointsOverride
	}

	if req.Action == "rechazar" {
		if err := approval.RejectPurchase(record, decision); err != nil {
			return nil, err
		}
		if err := uow.PurchaseRepository().Update(ctx, record); err != nil {
			return nil, err
		}
		if s.eventPublisher != nil {
			s.eventPublisher.PublishPurchaseRejected(ctx, record.Id, record.UserId, serviceName, req.Notes)
		}
		res := toPurchaseResponse(record)
		return &res, nil
	}

	award, err := approval.ApprovePurchase(record, decision)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PurchaseRepository().Update(ctx, record); err != nil {
		return nil, err
	}
	if award > 0 {
		if err := s.loyaltyService.CreditInTx(ctx, uow, record.UserId, award,
			"Puntos por compra aprobada en "+serviceName); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishPurchaseApproved(ctx, record.Id, record.UserId, serviceName, award)
	}

	res := toPurchaseResponse(record)
	return &res, nil
}

// AdjustPoints is the manual staff correction path. It goes through the same
// ledger as every other mutation, so the audit trail stays complete.
func (s *adminService) AdjustPoints(ctx context.Context, staffId uuid.UUID, req *dto.AdjustPointsRequest) (*dto.PointsSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: strings.ToLower(req.UserEmail)})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	reason := fmt.Sprintf("Ajuste manual: %s", req.Reason)
	delta := req.Points
	switch req.Action {
	case "agregar":
		err = s.loyaltyService.Credit(ctx, user.Id, req.Points, reason)
	case "quitar":
		err = s.loyaltyService.Debit(ctx, user.Id, req.Points, reason)
		delta = -req.Points
	default:
		return nil, ErrInvalidPayment
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("ADMIN", "Manual points adjustment", map[string]interface{}{
		"staff_id": staffId,
		"user_id":  user.Id,
		"delta":    delta,
		"reason":   req.Reason,
	})
	if s.eventPublisher != nil {
		s.eventPublisher.PublishPointsAdjusted(ctx, user.Id, delta, req.Reason)
	}

	return s.loyaltyService.Balance(ctx, user.Id)
}

func toVerifiedEmailResponse(email *entity.VerifiedEmail) dto.VerifiedEmailResponse {
	res := dto.VerifiedEmailResponse{
		Id:        email.Id,
		Email:     email.Email,
		ServiceId: email.ServiceId,
		Active:    email.Active,
		Notes:     email.Notes,
		CreatedAt: email.CreatedAt,
	}
	if email.Service != nil {
		res.ServiceName = email.Service.Name
	}
	return res
}

func (s *adminService) ListVerifiedEmails(ctx context.Context) ([]dto.VerifiedEmailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	emails, err := uow.VerifiedEmailRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.VerifiedEmailResponse, 0, len(emails))
	for _, email := range emails {
		responses = append(responses, toVerifiedEmailResponse(email))
	}
	return responses, nil
}

func (s *adminService) AddVerifiedEmail(ctx context.Context, staffId uuid.UUID, req *dto.VerifiedEmailRequest) (*dto.VerifiedEmailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.CatalogRepository().FindOneService(ctx, specification.ByID{ID: req.ServiceId})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	email := &entity.VerifiedEmail{
		Id:        uuid.New(),
		Email:     strings.ToLower(req.Email),
		ServiceId: req.ServiceId,
		AddedById: &staffId,
		Active:    active,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}
	if err := uow.VerifiedEmailRepository().Create(ctx, email); err != nil {
		return nil, err
	}

	email.Service = svc
	res := toVerifiedEmailResponse(email)
	return &res, nil
}

func (s *adminService) UpdateVerifiedEmail(ctx context.Context, id uuid.UUID, req *dto.VerifiedEmailRequest) (*dto.VerifiedEmailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	email, err := uow.VerifiedEmailRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if email == nil {
		return nil, ErrNotFound
	}

	email.Email = strings.ToLower(req.Email)
	email.ServiceId = req.ServiceId
	email.Notes = req.Notes
	if req.Active != nil {
		email.Active = *req.Active
	}

	if err := uow.VerifiedEmailRepository().Update(ctx, email); err != nil {
		return nil, err
	}

	res := toVerifiedEmailResponse(email)
	return &res, nil
}

func (s *adminService) RemoveVerifiedEmail(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	email, err := uow.VerifiedEmailRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if email == nil {
		return ErrNotFound
	}

	return uow.VerifiedEmailRepository().Delete(ctx, id)
}

func (s *adminService) GetRewardConfig(ctx context.Context) (*dto.RewardConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	config, err := uow.RewardConfigRepository().FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		defaults := rewards.DefaultConfig()
		return &dto.RewardConfigResponse{
			PointsPerPeso:   defaults.PointsPerPeso,
			MinRedeemPoints: defaults.MinRedeemPoints,
		}, nil
	}

	return &dto.RewardConfigResponse{
		PointsPerPeso:   config.PointsPerPeso,
		MinRedeemPoints: config.MinRedeemPoints,
		UpdatedAt:       config.UpdatedAt,
	}, nil
}

func (s *adminService) UpdateRewardConfig(ctx context.Context, req *dto.RewardConfigRequest) (*dto.RewardConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	config, err := uow.RewardConfigRepository().FindActive(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if config == nil {
		config = &entity.RewardConfig{
			Id:              uuid.New(),
			PointsPerPeso:   req.PointsPerPeso,
			MinRedeemPoints: req.MinRedeemPoints,
			Active:          true,
			UpdatedAt:       now,
		}
		if err := uow.RewardConfigRepository().Create(ctx, config); err != nil {
			return nil, err
		}
	} else {
		config.PointsPerPeso = req.PointsPerPeso
		config.MinRedeemPoints = req.MinRedeemPoints
		config.UpdatedAt = now
		if err := uow.RewardConfigRepository().Update(ctx, config); err != nil {
			return nil, err
		}
	}

	s.loyaltyService.InvalidateConfigCache()

	return &dto.RewardConfigResponse{
		PointsPerPeso:   config.PointsPerPeso,
		MinRedeemPoints: config.MinRedeemPoints,
		UpdatedAt:       config.UpdatedAt,
	}, nil
}

func (s *adminService) GetSystemLogs(ctx context.Context, page, limit int, level string) ([]*dto.LogListResponse, error) {
	return s.aggregator.GetSystemLogs(ctx, s.logger, page, limit, level)
}

func (s *adminService) GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	return s.aggregator.GetLogDetail(ctx, s.logger, logId)
}
