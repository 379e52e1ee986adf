// FILE: internal/service/purchase_service.go
package service

import (
	"context"
	"time"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/entity"
	"streampoint-be/internal/pkg/upload"
	"streampoint-be/internal/repository/specification"
	"streampoint-be/internal/repository/unitofwork"
	adminEvents "streampoint-be/pkg/admin/events"
	"streampoint-be/pkg/rewards"

	"github.com/google/uuid"
)

type IPurchaseService interface {
	Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitPurchaseRequest, receipt []byte) (*dto.PurchaseResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID) ([]dto.PurchaseResponse, error)
}

type purchaseService struct {
	uowFactory     unitofwork.RepositoryFactory
	loyaltyService ILoyaltyService
	receiptStore   *upload.ReceiptStore
	eventPublisher adminEvents.Publisher
}

func NewPurchaseService(
	uowFactory unitofwork.RepositoryFactory,
	loyaltyService ILoyaltyService,
	receiptStore *upload.ReceiptStore,
	eventPublisher adminEvents.Publisher,
) IPurchaseService {
	return &purchaseService{
		uowFactory:     uowFactory,
		loyaltyService: loyaltyService,
		receiptStore:   receiptStore,
		eventPublisher: eventPublisher,
	}
}

func toPurchaseResponse(record *entity.PurchaseRecord) dto.PurchaseResponse {
	res := dto.PurchaseResponse{
		Id:              record.Id,
		FullName:        record.FullName,
		Email:           record.Email,
		AppUsername:     record.AppUsername,
		ServiceId:       record.ServiceId,
		PlanId:          record.PlanId,
		AmountPaid:      record.AmountPaid,
		PurchaseDate:    record.PurchaseDate,
		ReceiptPath:     record.ReceiptPath,
		Description:     record.Description,
		Status:          string(record.Status),
		FirstPurchase:   record.FirstPurchase,
		SuggestedPoints: record.SuggestedPoints,
		SubmittedAt:     record.SubmittedAt,
		ReviewedAt:      record.ReviewedAt,
		PointsAwarded:   record.PointsAwarded,
		StaffNotes:      record.StaffNotes,
	}
	if record.Service != nil {
		res.ServiceName = record.Service.Name
	}
	if record.Plan != nil {
		res.PlanName = record.Plan.Name
	}
	return res
}

// Submit stores the receipt on disk and queues the proof for staff review.
// Nothing is credited here: points only move when staff approves.
func (s *purchaseService) Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitPurchaseRequest, receipt []byte) (*dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	svc, err := uow.CatalogRepository().FindOneService(ctx,
		specification.ByID{ID: req.ServiceId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNotFound
	}

	var plan *entity.Plan
	if req.PlanId != nil {
		plan, err = uow.CatalogRepository().FindOnePlan(ctx, specification.ByID{ID: *req.PlanId})
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, ErrNotFound
		}
		if plan.ServiceId != svc.Id {
			return nil, ErrPlanServiceMismatch
		}
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	receiptPath, err := s.receiptStore.Save(receipt, now)
	if err != nil {
		return nil, err
	}

	// Proof submissions only lose first-purchase status to subscriptions a
	// staff member already validated; a pendiente one proves nothing yet.
	validatedSubs, err := uow.SubscriptionRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ForService{ServiceID: svc.Id},
		specification.ValidatedOnly{},
	)
	if err != nil {
		return nil, err
	}
	firstPurchase := validatedSubs == 0
	if firstPurchase {
		// Out-of-band proofs count too: an already approved purchase on the
		// same service means this is not a first purchase.
		approved, err := uow.PurchaseRepository().Count(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.Filter("service_id", svc.Id),
			specification.Filter("status", entity.PurchaseApproved),
		)
		if err != nil {
			return nil, err
		}
		firstPurchase = approved == 0
	}

	cfg := s.loyaltyService.ActiveConfig(ctx)
	record := &entity.PurchaseRecord{
		Id:              uuid.New(),
		UserId:          userId,
		FullName:        req.FullName,
		Email:           req.Email,
		AppUsername:     req.AppUsername,
		Phone:           req.Phone,
		ServiceId:       svc.Id,
		PlanId:          req.PlanId,
		AmountPaid:      req.AmountPaid,
		PurchaseDate:    purchaseDate,
		ReceiptPath:     receiptPath,
		Description:     req.Description,
		Status:          entity.PurchasePending,
		FirstPurchase:   firstPurchase,
		SuggestedPoints: rewards.SuggestedPurchasePoints(req.AmountPaid, plan, &cfg, firstPurchase),
		SubmittedAt:     now,
	}

	if err := uow.PurchaseRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.PublishPurchaseSubmitted(ctx, record.Id, userId, svc.Name, record.AmountPaid)
	}

	record.Service = svc
	record.Plan = plan
	res := toPurchaseResponse(record)
	return &res, nil
}

func (s *purchaseService) ListMine(ctx context.Context, userId uuid.UUID) ([]dto.PurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.PurchaseRepository().FindAllWithRelations(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
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
