package events

import (
	"context"
	"time"

	"streampoint-be/internal/pkg/logger"
	pkgEvents "streampoint-be/pkg/events"
	pktNats "streampoint-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts domain event publishing so services never talk to the
// broker directly. A nil broker degrades to a no-op.
type Publisher interface {
	PublishUserRegistered(ctx context.Context, userId uuid.UUID, email, fullName string)
	PublishSubscriptionCreated(ctx context.Context, subscriptionId, userId uuid.UUID, planName string, renewal bool)
	PublishSubscriptionValidated(ctx context.Context, subscriptionId, userId uuid.UUID, planName string, pointsAwarded int)
	PublishSubscriptionRejected(ctx context.Context, subscriptionId, userId uuid.UUID, planName, reason string)
	PublishPurchaseSubmitted(ctx context.Context, purchaseId, userId uuid.UUID, serviceName string, amount float64)
	PublishPurchaseApproved(ctx context.Context, purchaseId, userId uuid.UUID, serviceName string, pointsAwarded int)
	PublishPurchaseRejected(ctx context.Context, purchaseId, userId uuid.UUID, serviceName, reason string)
	PublishPointsAdjusted(ctx context.Context, userId uuid.UUID, delta int, reason string)
	PublishCheckoutCompleted(ctx context.Context, subscriptionId, userId uuid.UUID, invoiceNumber string, total float64)
}

// NatsPublisher implements Publisher using NATS
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishUserRegistered(ctx context.Context, userId uuid.UUID, email, fullName string) {
	p.emit(ctx, "USER_REGISTERED", map[string]interface{}{
		"user_id":   userId,
		"email":     email,
		"full_name": fullName,
	})
}

func (p *NatsPublisher) PublishSubscriptionCreated(ctx context.Context, subscriptionId, userId uuid.UUID, planName string, renewal bool) {
	p.emit(ctx, "SUBSCRIPTION_CREATED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"plan_name":       planName,
		"renewal":         renewal,
		"entity_type":     "subscription",
		"entity_id":       subscriptionId.String(),
	})
}

func (p *NatsPublisher) PublishSubscriptionValidated(ctx context.Context, subscriptionId, userId uuid.UUID, planName string, pointsAwarded int) {
	p.emit(ctx, "SUBSCRIPTION_VALIDATED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"plan_name":       planName,
		"points_awarded":  pointsAwarded,
		"entity_type":     "subscription",
		"entity_id":       subscriptionId.String(),
	})
}

func (p *NatsPublisher) PublishSubscriptionRejected(ctx context.Context, subscriptionId, userId uuid.UUID, planName, reason string) {
	p.emit(ctx, "SUBSCRIPTION_REJECTED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"plan_name":       planName,
		"reason":          reason,
		"entity_type":     "subscription",
		"entity_id":       subscriptionId.String(),
	})
}

func (p *NatsPublisher) PublishPurchaseSubmitted(ctx context.Context, purchaseId, userId uuid.UUID, serviceName string, amount float64) {
	p.emit(ctx, "PURCHASE_SUBMITTED", map[string]interface{}{
		"purchase_id":  purchaseId,
		"user_id":      userId,
		"service_name": serviceName,
		"amount":       amount,
		"entity_type":  "purchase",
		"entity_id":    purchaseId.String(),
	})
}

func (p *NatsPublisher) PublishPurchaseApproved(ctx context.Context, purchaseId, userId uuid.UUID, serviceName string, pointsAwarded int) {
	p.emit(ctx, "PURCHASE_APPROVED", map[string]interface{}{
		"purchase_id":    purchaseId,
		"user_id":        userId,
		"service_name":   serviceName,
		"points_awarded": pointsAwarded,
		"entity_type":    "purchase",
		"entity_id":      purchaseId.String(),
	})
}

func (p *NatsPublisher) PublishPurchaseRejected(ctx context.Context, purchaseId, userId uuid.UUID, serviceName, reason string) {
	p.emit(ctx, "PURCHASE_REJECTED", map[string]interface{}{
		"purchase_id":  purchaseId,
		"user_id":      userId,
		"service_name": serviceName,
		"reason":       reason,
		"entity_type":  "purchase",
		"entity_id":    purchaseId.String(),
	})
}

func (p *NatsPublisher) PublishPointsAdjusted(ctx context.Context, userId uuid.UUID, delta int, reason string) {
	p.emit(ctx, "POINTS_ADJUSTED", map[string]interface{}{
		"user_id": userId,
		"delta":   delta,
		"reason":  reason,
	})
}

func (p *NatsPublisher) PublishCheckoutCompleted(ctx context.Context, subscriptionId, userId uuid.UUID, invoiceNumber string, total float64) {
	p.emit(ctx, "CHECKOUT_COMPLETED", map[string]interface{}{
		"subscription_id": subscriptionId,
		"user_id":         userId,
		"invoice_number":  invoiceNumber,
		"total":           total,
		"entity_type":     "subscription",
		"entity_id":       subscriptionId.String(),
	})
}
