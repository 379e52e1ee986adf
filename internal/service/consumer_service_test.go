// FILE: internal/service/consumer_service_test.go
package service

import (
	"encoding/json"
	"testing"

	"streampoint-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentCheckoutMail struct {
	toEmail       string
	fullName      string
	invoiceNumber string
	planName      string
	serviceEmail  string
	total         float64
	pendingAmount float64
	pointsUsed    int
	pointsAwarded int
}

type sentValidatedMail struct {
	toEmail       string
	fullName      string
	planName      string
	pointsAwarded int
}

type recordingMailer struct {
	checkout  []sentCheckoutMail
	validated []sentValidatedMail
}

func (r *recordingMailer) SendCheckoutConfirmation(toEmail, fullName, invoiceNumber, planName, serviceEmail string, total, pendingAmount float64, pointsUsed, pointsAwarded int) error {
	r.checkout = append(r.checkout, sentCheckoutMail{
		toEmail:       toEmail,
		fullName:      fullName,
		invoiceNumber: invoiceNumber,
		planName:      planName,
		serviceEmail:  serviceEmail,
		total:         total,
		pendingAmount: pendingAmount,
		pointsUsed:    pointsUsed,
		pointsAwarded: pointsAwarded,
	})
	return nil
}

func (r *recordingMailer) SendSubscriptionValidated(toEmail, fullName, planName string, pointsAwarded int) error {
	r.validated = append(r.validated, sentValidatedMail{
		toEmail:       toEmail,
		fullName:      fullName,
		planName:      planName,
		pointsAwarded: pointsAwarded,
	})
	return nil
}

func dispatchMessage(t *testing.T, payload dto.EmailDispatchMessage) *message.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return message.NewMessage("test-"+payload.Kind, raw)
}

// The checkout confirmation must carry everything the buyer needs to see:
// the service account they bought access for and the points the purchase
// earned them, not just the amounts.
func TestConsumerCheckoutConfirmationCarriesAwardAndServiceAccount(t *testing.T) {
	recorder := &recordingMailer{}
	consumer := &consumerService{emailService: recorder}

	consumer.processMessage(dispatchMessage(t, dto.EmailDispatchMessage{
		Kind:          dto.EmailKindCheckoutConfirmation,
		ToEmail:       "buyer@example.com",
		FullName:      "Buyer Example",
		PlanName:      "Plan Premium",
		ServiceEmail:  "cuenta-netflix@example.com",
		InvoiceNumber: "FAC-20260828-0001",
		Total:         30000,
		PendingAmount: 5000,
		PointsUsed:    250,
		PointsAwarded: 100,
	}))

	require.Len(t, recorder.checkout, 1)
	sent := recorder.checkout[0]
	assert.Equal(t, "buyer@example.com", sent.toEmail)
	assert.Equal(t, "FAC-20260828-0001", sent.invoiceNumber)
	assert.Equal(t, "cuenta-netflix@example.com", sent.serviceEmail)
	assert.Equal(t, 250, sent.pointsUsed)
	assert.Equal(t, 100, sent.pointsAwarded)
	assert.Equal(t, float64(5000), sent.pendingAmount)
	assert.Empty(t, recorder.validated)
}

func TestConsumerRoutesValidationNotice(t *testing.T) {
	recorder := &recordingMailer{}
	consumer := &consumerService{emailService: recorder}

	consumer.processMessage(dispatchMessage(t, dto.EmailDispatchMessage{
		Kind:          dto.EmailKindSubscriptionValidated,
		ToEmail:       "buyer@example.com",
		FullName:      "Buyer Example",
		PlanName:      "Plan Premium",
		PointsAwarded: 100,
	}))

	require.Len(t, recorder.validated, 1)
	assert.Equal(t, 100, recorder.validated[0].pointsAwarded)
	assert.Empty(t, recorder.checkout)
}

func TestConsumerDropsUnknownKind(t *testing.T) {
	recorder := &recordingMailer{}
	consumer := &consumerService{emailService: recorder}

	consumer.processMessage(dispatchMessage(t, dto.EmailDispatchMessage{
		Kind:    "mystery",
		ToEmail: "buyer@example.com",
	}))

	assert.Empty(t, recorder.checkout)
	assert.Empty(t, recorder.validated)
}
