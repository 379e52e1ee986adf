package dashboard

import (
	"context"
	"time"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/entity"
	"streampoint-be/internal/pkg/logger"
	"streampoint-be/internal/repository/specification"
	"streampoint-be/internal/repository/unitofwork"
)

// Aggregator handles backoffice dashboard statistics
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats retrieves the staff dashboard counters in one pass.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AdminDashboardStats, error) {
	pendingSubs, err := uow.SubscriptionRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.SubscriptionPending)},
	)
	if err != nil {
		return nil, err
	}

	// Rows that say activa but are already past expiry do not count.
	activeSubs, err := uow.SubscriptionRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.SubscriptionActive)},
		specification.NotExpiredAt{Day: time.Now()},
	)
	if err != nil {
		return nil, err
	}

	pendingPurchases, err := uow.PurchaseRepository().Count(ctx,
		specification.Filter("status", entity.PurchasePending),
	)
	if err != nil {
		return nil, err
	}

	registeredUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	outstandingPoints, err := uow.LoyaltyRepository().SumAvailablePoints(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := uow.SubscriptionRepository().GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardStats{
		PendingSubscriptions: int(pendingSubs),
		ActiveSubscriptions:  int(activeSubs),
		PendingPurchases:     int(pendingPurchases),
		RegisteredUsers:      int(registeredUsers),
		OutstandingPoints:    outstandingPoints,
		TotalRevenue:         totalRevenue,
	}, nil
}

// GetSystemLogs retrieves system logs
func (a *Aggregator) GetSystemLogs(ctx context.Context, loggerSvc logger.ILogger, page, limit int, level string) ([]*dto.LogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	logs, err := loggerSvc.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	var res []*dto.LogListResponse
	for _, l := range logs {
		ts, _ := time.Parse(time.RFC3339, l.Timestamp)
		res = append(res, &dto.LogListResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		})
	}
	return res, nil
}

// GetLogDetail retrieves a single log entry
func (a *Aggregator) GetLogDetail(ctx context.Context, loggerSvc logger.ILogger, logId string) (*dto.LogDetailResponse, error) {
	l, err := loggerSvc.GetLogById(logId)
	if err != nil {
		return nil, err
	}

	ts, _ := time.Parse(time.RFC3339, l.Timestamp)

	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        logId,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		},
		Details: l.Details,
	}, nil
}
