// FILE: internal/service/checkout_service.go
package service

import (
	"context"
	"crypto/sha512"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/entity"
	"streampoint-be/internal/repository/specification"
	"streampoint-be/internal/repository/unitofwork"
	adminEvents "streampoint-be/pkg/admin/events"
	"streampoint-be/pkg/rewards"
	"streampoint-be/pkg/store"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type ICheckoutService interface {
	StartCheckout(ctx context.Context, userId, planId uuid.UUID, req *dto.StartCheckoutRequest) (*dto.CheckoutSessionResponse, error)
	StartRenewal(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.CheckoutSessionResponse, error)
	CurrentSession(ctx context.Context, userId uuid.UUID) (*dto.CheckoutSessionResponse, error)
	CompleteCheckout(ctx context.Context, userId uuid.UUID, req *dto.CompleteCheckoutRequest) (*dto.CheckoutResultResponse, error)
	HandleMidtransNotification(ctx context.Context, req *dto.MidtransNotificationRequest) error
}

type checkoutService struct {
	uowFactory     unitofwork.RepositoryFactory
	loyaltyService ILoyaltyService
	checkoutStore  *store.CheckoutStore
	mailPublisher  IPublisherService
	eventPublisher adminEvents.Publisher
	sessionTTL     time.Duration
}

func NewCheckoutService(
	uowFactory unitofwork.RepositoryFactory,
	loyaltyService ILoyaltyService,
	checkoutStore *store.CheckoutStore,
	mailPublisher IPublisherService,
	eventPublisher adminEvents.Publisher,
	sessionTTL time.Duration,
) ICheckoutService {
	return &checkoutService{
		uowFactory:     uowFactory,
		loyaltyService: loyaltyService,
		checkoutStore:  checkoutStore,
		mailPublisher:  mailPublisher,
		eventPublisher: eventPublisher,
		sessionTTL:     sessionTTL,
	}
}

// StartCheckout opens the two-step payment flow: the session lives in Redis
// until completed or the TTL runs out.
func (s *checkoutService) StartCheckout(ctx context.Context, userId, planId uuid.UUID, req *dto.StartCheckoutRequest) (*dto.CheckoutSessionResponse, error) {
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

	session := &store.CheckoutSession{
		UserID:       userId,
		PlanID:       plan.Id,
		ServiceEmail: req.ServiceEmail,
		ServiceUser:  req.ServiceUser,
		Renewal:      !firstPurchase,
		StartedAt:    time.Now(),
	}
	if err := s.checkoutStore.Save(ctx, session); err != nil {
		return nil, err
	}

	return s.sessionResponse(ctx, uow, session, plan)
}

// StartRenewal seeds a checkout session from an existing subscription, so the
// new period starts the day after the current one ends.
func (s *checkoutService) StartRenewal(ctx context.Context, userId, subscriptionId uuid.UUID) (*dto.CheckoutSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prior, err := uow.SubscriptionRepository().FindOneWithRelations(ctx, subscriptionId)
	if err != nil {
		return nil, err
	}
	if prior == nil || prior.Plan == nil {
		return nil, ErrNotFound
	}
	if prior.UserId != userId {
		return nil, ErrForbidden
	}

	session := &store.CheckoutSession{
		UserID:       userId,
		PlanID:       prior.PlanId,
		ServiceEmail: prior.ServiceEmail,
		Renewal:      true,
		PriorSubID:   prior.Id,
		StartedAt:    time.Now(),
	}
	if err := s.checkoutStore.Save(ctx, session); err != nil {
		return nil, err
	}

	return s.sessionResponse(ctx, uow, session, prior.Plan)
}

func (s *checkoutService) CurrentSession(ctx context.Context, userId uuid.UUID) (*dto.CheckoutSessionResponse, error) {
	session, err := s.checkoutStore.Get(ctx, userId)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrNoCheckoutSession
		}
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := uow.CatalogRepository().FindOnePlan(ctx, specification.ByID{ID: session.PlanID})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	return s.sessionResponse(ctx, uow, session, plan)
}

func (s *checkoutService) sessionResponse(ctx context.Context, uow unitofwork.UnitOfWork, session *store.CheckoutSession, plan *entity.Plan) (*dto.CheckoutSessionResponse, error) {
	svc, err := uow.CatalogRepository().FindOneService(ctx, specification.ByID{ID: plan.ServiceId})
	if err != nil {
		return nil, err
	}

	profile, err := s.loyaltyService.EnsureProfile(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	cfg := s.loyaltyService.ActiveConfig(ctx)
	pointsPrice := rewards.PointsPrice(plan.Price, cfg)
	maxRedeemable := profile.AvailablePoints
	if maxRedeemable > pointsPrice {
		maxRedeemable = pointsPrice
	}

	res := &dto.CheckoutSessionResponse{
		Plan:                toPlanResponse(plan),
		ServiceEmail:        session.ServiceEmail,
		Renewal:             session.Renewal,
		AvailablePoints:     profile.AvailablePoints,
		PointsPrice:         pointsPrice,
		MinRedeemPoints:     cfg.MinRedeemPoints,
		MaxRedeemablePoints: maxRedeemable,
		ExpiresAt:           session.StartedAt.Add(s.sessionTTL),
	}
	if svc != nil {
		res.ServiceName = svc.Name
	}
	return res, nil
}

// CompleteCheckout finalizes the session in one transaction: the subscription
// comes out activa and validated (the gateway already charged the user, staff
// review would add nothing), the invoice is recorded, points move. Email and
// event delivery stay outside the transaction on purpose.
func (s *checkoutService) CompleteCheckout(ctx context.Context, userId uuid.UUID, req *dto.CompleteCheckoutRequest) (*dto.CheckoutResultResponse, error) {
	session, err := s.checkoutStore.Get(ctx, userId)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrNoCheckoutSession
		}
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.CatalogRepository().FindOnePlan(ctx, specification.ByID{ID: session.PlanID})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}
	svc, err := uow.CatalogRepository().FindOneService(ctx, specification.ByID{ID: plan.ServiceId})
	if err != nil {
		return nil, err
	}

	cfg := s.loyaltyService.ActiveConfig(ctx)
	breakdown := rewards.Breakdown(plan.Price, req.PointsUsed, cfg, entity.PaymentMethod(req.SecondaryMethod))

	if breakdown.PendingAmount > 0 && req.SecondaryMethod == "" {
		return nil, ErrInvalidPayment
	}
	if req.PointsUsed > 0 {
		profile, err := s.loyaltyService.EnsureProfile(ctx, userId)
		if err != nil {
			return nil, err
		}
		if req.PointsUsed < cfg.MinRedeemPoints {
			return nil, ErrBelowMinimumRedeem
		}
		if req.PointsUsed > profile.AvailablePoints {
			return nil, ErrInsufficientPoints
		}
	}

	firstPurchase := !session.Renewal
	if firstPurchase {
		firstPurchase, err = isFirstPurchase(ctx, uow, userId, plan.ServiceId)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	start := now
	if session.PriorSubID != uuid.Nil {
		prior, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: session.PriorSubID})
		if err != nil {
			return nil, err
		}
		if prior != nil {
			start = prior.ExpiresAt.AddDate(0, 0, 1)
		}
	}

	cashback := rewards.SubscriptionAward(plan, firstPurchase, breakdown.Method)
	validatedAt := now
	sub := &entity.Subscription{
		Id:            uuid.New(),
		UserId:        userId,
		PlanId:        plan.Id,
		StartDate:     start,
		ExpiresAt:     entity.ExpiryFor(start, plan.Duration),
		Status:        entity.SubscriptionActive,
		Validated:     true,
		ValidatedAt:   &validatedAt,
		PaymentMethod: breakdown.Method,
		AmountPaid:    breakdown.PendingAmount,
		PointsAwarded: cashback,
		FirstPurchase: firstPurchase,
		ServiceEmail:  session.ServiceEmail,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	invoice := &entity.Invoice{
		Id:             uuid.New(),
		SubscriptionId: sub.Id,
		Number:         entity.NewInvoiceNumber(now),
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		PaymentMethod:  breakdown.Method,
		Total:          breakdown.Total,
		PointsUsed:     breakdown.PointsUsed,
		PointsValue:    breakdown.PointsValue,
		PendingAmount:  breakdown.PendingAmount,
		Paid:           breakdown.PendingAmount == 0,
		CreatedAt:      now,
	}
	if breakdown.Method == entity.PaymentMixed {
		invoice.SecondaryMethod = entity.PaymentMethod(req.SecondaryMethod)
	}
	if invoice.Paid {
		invoice.PaidAt = &now
	}

	useMidtrans := breakdown.PendingAmount > 0 && entity.PaymentMethod(req.SecondaryMethod) == entity.PaymentCard
	if useMidtrans {
		invoice.MidtransOrderId = invoice.Id.String()
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}
	if err := uow.InvoiceRepository().Create(ctx, invoice); err != nil {
		return nil, err
	}

	if breakdown.PointsUsed > 0 {
		if err := s.loyaltyService.DebitInTx(ctx, uow, userId, breakdown.PointsUsed,
			"Canje de puntos en factura "+invoice.Number); err != nil {
			return nil, err
		}
	}
	if cashback > 0 {
		if err := s.loyaltyService.CreditInTx(ctx, uow, userId, cashback,
			"Puntos por compra de plan "+plan.Name); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// The order is committed. Drop the session before any gateway call so a
	// retry cannot replay the checkout and file a duplicate subscription.
	if err := s.checkoutStore.Clear(ctx, userId); err != nil {
		fmt.Printf("[WARN] Failed to clear checkout session for %s: %v\n", userId, err)
	}

	snapRedirectURL := ""
	if useMidtrans {
		snapRedirectURL, err = s.createSnapTransaction(invoice, plan, req)
		if err != nil {
			// Gateway handoff is best effort once the invoice exists; the
			// pending amount stays collectable through the webhook retry.
			fmt.Printf("[WARN] Midtrans snap transaction failed for invoice %s: %v\n", invoice.Number, err)
			snapRedirectURL = ""
		}
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishCheckoutCompleted(ctx, sub.Id, userId, invoice.Number, invoice.Total)
	}

	s.queueConfirmationEmail(ctx, req, plan, invoice, cashback, session.ServiceEmail)

	sub.Plan = plan
	if sub.Plan.Service == nil {
		sub.Plan.Service = svc
	}

	invoiceRes := toInvoiceResponse(invoice)
	invoiceRes.SnapRedirectURL = snapRedirectURL

	return &dto.CheckoutResultResponse{
		Subscription:   toSubscriptionResponse(sub, now),
		Invoice:        invoiceRes,
		CashbackPoints: cashback,
	}, nil
}

func toInvoiceResponse(invoice *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		Id:              invoice.Id,
		Number:          invoice.Number,
		SubscriptionId:  invoice.SubscriptionId,
		PaymentMethod:   string(invoice.PaymentMethod),
		Total:           invoice.Total,
		PointsUsed:      invoice.PointsUsed,
		PointsValue:     invoice.PointsValue,
		PendingAmount:   invoice.PendingAmount,
		SecondaryMethod: string(invoice.SecondaryMethod),
		Paid:            invoice.Paid,
		CreatedAt:       invoice.CreatedAt,
	}
}

func (s *checkoutService) createSnapTransaction(invoice *entity.Invoice, plan *entity.Plan, req *dto.CompleteCheckoutRequest) (string, error) {
	var sClient snap.Client
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(serverKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  invoice.MidtransOrderId,
			GrossAmt: int64(invoice.PendingAmount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FullName,
			Email: req.Email,
			Phone: req.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.Id.String(),
				Price: int64(invoice.PendingAmount),
				Qty:   1,
				Name:  plan.Name,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return "", fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}
	return snapResp.RedirectURL, nil
}

func (s *checkoutService) queueConfirmationEmail(ctx context.Context, req *dto.CompleteCheckoutRequest, plan *entity.Plan, invoice *entity.Invoice, cashback int, serviceEmail string) {
	if s.mailPublisher == nil {
		return
	}

	payload, err := json.Marshal(dto.EmailDispatchMessage{
		Kind:          dto.EmailKindCheckoutConfirmation,
		ToEmail:       req.Email,
		FullName:      req.FullName,
		PlanName:      plan.Name,
		ServiceEmail:  serviceEmail,
		InvoiceNumber: invoice.Number,
		Total:         invoice.Total,
		PendingAmount: invoice.PendingAmount,
		PointsUsed:    invoice.PointsUsed,
		PointsAwarded: cashback,
	})
	if err != nil {
		return
	}
	if err := s.mailPublisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to queue confirmation email for %s: %v\n", req.Email, err)
	}
}

// HandleMidtransNotification verifies the gateway signature and flips the
// invoice paid state. Subscription access never waits for this webhook.
func (s *checkoutService) HandleMidtransNotification(ctx context.Context, req *dto.MidtransNotificationRequest) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		fmt.Println("[WEBHOOK ERROR] MIDTRANS_SERVER_KEY not configured")
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		fmt.Printf("[WEBHOOK ERROR] Signature mismatch for OrderId=%s\n", req.OrderId)
		return ErrInvalidSignature
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.Filter("midtrans_order_id", req.OrderId))
	if err != nil {
		return err
	}
	if invoice == nil {
		fmt.Printf("[WEBHOOK ERROR] No invoice for OrderId=%s\n", req.OrderId)
		return ErrNotFound
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if invoice.Paid {
			return nil
		}
		fmt.Printf("[WEBHOOK] Payment settled for invoice %s\n", invoice.Number)
		return uow.InvoiceRepository().MarkPaid(ctx, req.OrderId)
	case "deny", "cancel", "expire":
		fmt.Printf("[WEBHOOK] Payment failed for invoice %s (status=%s)\n", invoice.Number, req.TransactionStatus)
		return nil
	case "pending":
		return nil
	default:
		fmt.Printf("[WEBHOOK] Unknown status '%s' for invoice %s\n", req.TransactionStatus, invoice.Number)
		return nil
	}
}
