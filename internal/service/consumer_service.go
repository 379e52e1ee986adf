// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the email queue. Dispatch is best-effort: a send
// failure is logged and the message acked, so a broken SMTP server can never
// wedge the queue or undo the purchase the email confirms.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.EmailDispatchMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal email message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	var err error
	switch payload.Kind {
	case dto.EmailKindCheckoutConfirmation:
		err = cs.emailService.SendCheckoutConfirmation(
			payload.ToEmail,
			payload.FullName,
			payload.InvoiceNumber,
			payload.PlanName,
			payload.ServiceEmail,
			payload.Total,
			payload.PendingAmount,
			payload.PointsUsed,
			payload.PointsAwarded,
		)
	case dto.EmailKindSubscriptionValidated:
		err = cs.emailService.SendSubscriptionValidated(
			payload.ToEmail,
			payload.FullName,
			payload.PlanName,
			payload.PointsAwarded,
		)
	default:
		log.Printf("[WARN] Unknown email kind %q, dropping", payload.Kind)
	}

	if err != nil {
		log.Printf("[ERROR] Failed to send %s email to %s: %v", payload.Kind, payload.ToEmail, err)
	}
	msg.Ack()
}
