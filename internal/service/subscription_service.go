// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"time"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"
	"streampoint-be/internal/repository/unitofwork"
	"streampoint-be/pkg/admin/approval"
	adminEvents "streampoint-be/pkg/admin/events"
	"streampoint-be/pkg/rewards"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	Subscribe(ctx context.Context, userId, planId uuid.UUID, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error)
	Renew(ctx context.Context, userId, subscriptionId uuid.UUID, paymentMethod string) (*dto.SubscriptionResponse, error)
	Cancel(ctx context.Context, userId, subscriptionId uuid.UUID) error
	Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	loyaltyService ILoyaltyService
	eventPublisher adminEvents.Publisher
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	loyaltyService ILoyaltyService,
	eventPublisher adminEvents.Publisher,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		loyaltyService: loyaltyService,
		eventPublisher: eventPublisher,
	}
}

func toSubscriptionResponse(sub *entity.Subscription, now time.Time) dto.SubscriptionResponse {
	res := dto.SubscriptionResponse{
		Id:            sub.Id,
		PlanId:        sub.PlanId,
		StartDate:     sub.StartDate,
		ExpiresAt:     sub.ExpiresAt,
		DaysRemaining: sub.DaysRemaining(now),
		Status:        string(sub.Status),
		Validated:     sub.Validated,
		ValidatedAt:   sub.ValidatedAt,
		PaymentMethod: string(sub.PaymentMethod),
		AmountPaid:    sub.AmountPaid,
		PointsAwarded: sub.PointsAwarded,
		FirstPurchase: sub.FirstPurchase,
		ServiceEmail:  sub.ServiceEmail,
		CreatedAt:     sub.CreatedAt,
	}
	if sub.Plan != nil {
		res.PlanName = sub.Plan.Name
		if sub.Plan.Service != nil {
			res.ServiceName = sub.Plan.Service.Name
		}
	}
	return res
}

// isFirstPurchase checks for any prior subscription of this user on the
// same streaming service, validated or not. A second pendiente subscription
// must not count as a first purchase again.
func isFirstPurchase(ctx context.Context, uow unitofwork.UnitOfWork, userId, serviceId uuid.UUID) (bool, error) {
	count, err := uow.SubscriptionRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ForService{ServiceID: serviceId},
	)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Subscribe creates a pending subscription. Points-funded subscriptions
// debit the wallet immediately; everything else waits for staff validation.
func (s *subscriptionService) Subscribe(ctx context.Context, userId, planId uuid.UUID, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	method := entity.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, ErrInvalidPayment
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.CatalogRepository().FindOnePlan(ctx,
		specification.ByID{ID: planId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	verified, err := uow.VerifiedEmailRepository().IsVerified(ctx, req.ServiceEmail, plan.ServiceId)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, ErrEmailNotVerified
	}

	firstPurchase, err := isFirstPurchase(ctx, uow, userId, plan.ServiceId)
	if err != nil {
		return nil, err
	}

	cfg := s.loyaltyService.ActiveConfig(ctx)
	pointsPrice := rewards.PointsPrice(plan.Price, cfg)

	start := time.Now()
	sub := &entity.Subscription{
		Id:            uuid.New(),
		UserId:        userId,
		PlanId:        plan.Id,
		StartDate:     start,
		ExpiresAt:     entity.ExpiryFor(start, plan.Duration),
		Status:        entity.SubscriptionPending,
		PaymentMethod: method,
		AmountPaid:    plan.Price,
		FirstPurchase: firstPurchase,
		ServiceEmail:  req.ServiceEmail,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if method == entity.PaymentPoints {
		// Full points funding: the wallet pays now, no cash changes hands.
		sub.AmountPaid = 0
		if err := s.loyaltyService.DebitInTx(ctx, uow, userId, pointsPrice,
			"Canje de puntos por plan "+plan.Name); err != nil {
			return nil, err
		}
	}

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishSubscriptionCreated(ctx, sub.Id, userId, plan.Name, false)
	}

	sub.Plan = plan
	res := toSubscriptionResponse(sub, time.Now())
	return &res, nil
}

// Renew books a fresh record that starts the day after the current one
// expires, so remaining days are never lost.
func (s *subscriptionService) Renew(ctx context.Context, userId, subscriptionId uuid.UUID, paymentMethod string) (*dto.SubscriptionResponse, error) {
	method := entity.PaymentMethod(paymentMethod)
	if !method.Valid() {
		return nil, ErrInvalidPayment
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	prior, err := uow.SubscriptionRepository().FindOneWithRelations(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, ErrNotFound
	}
	if prior.UserId != userId {
		return nil, ErrForbidden
	}
	if prior.Plan == nil {
		return nil, ErrNotFound
	}

	start := prior.ExpiresAt.AddDate(0, 0, 1)
	sub := &entity.Subscription{
		Id:            uuid.New(),
		UserId:        userId,
		PlanId:        prior.PlanId,
		StartDate:     start,
		ExpiresAt:     entity.ExpiryFor(start, prior.Plan.Duration),
		Status:        entity.SubscriptionPending,
		PaymentMethod: method,
		AmountPaid:    prior.Plan.Price,
		FirstPurchase: false,
		ServiceEmail:  prior.ServiceEmail,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if method == entity.PaymentPoints {
		cfg := s.loyaltyService.ActiveConfig(ctx)
		sub.AmountPaid = 0
		if err := s.loyaltyService.DebitInTx(ctx, uow, userId, rewards.PointsPrice(prior.Plan.Price, cfg),
			"Canje de puntos por renovación de "+prior.Plan.Name); err != nil {
			return nil, err
		}
	}

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishSubscriptionCreated(ctx, sub.Id, userId, prior.Plan.Name, true)
	}

	sub.Plan = prior.Plan
	res := toSubscriptionResponse(sub, time.Now())
	return &res, nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userId, subscriptionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subscriptionId})
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrNotFound
	}
	if sub.UserId != userId {
		return ErrForbidden
	}

	if err := approval.CancelSubscription(sub); err != nil {
		return err
	}
	sub.UpdatedAt = time.Now()

	return uow.SubscriptionRepository().Update(ctx, sub)
}

func (s *subscriptionService) Dashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAllWithRelations(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	res := &dto.DashboardResponse{
		ActiveSubscriptions:  []dto.SubscriptionResponse{},
		PendingSubscriptions: []dto.SubscriptionResponse{},
	}
	for _, sub := range subs {
		switch {
		case sub.IsActive(now):
			res.ActiveSubscriptions = append(res.ActiveSubscriptions, toSubscriptionResponse(sub, now))
		case sub.Status == entity.SubscriptionPending:
			res.PendingSubscriptions = append(res.PendingSubscriptions, toSubscriptionResponse(sub, now))
		}
	}

	profile, err := s.loyaltyService.EnsureProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	res.TotalPoints = profile.TotalPoints
	res.AvailablePoints = profile.AvailablePoints

	transactions, err := s.loyaltyService.History(ctx, userId, 10)
	if err != nil {
		return nil, err
	}
	res.RecentTransactions = transactions

	return res, nil
}
