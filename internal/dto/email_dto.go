// FILE: internal/dto/email_dto.go
package dto

const (
	EmailKindCheckoutConfirmation  = "checkout_confirmation"
	EmailKindSubscriptionValidated = "subscription_validated"
)

// EmailDispatchMessage is the payload queued for the email consumer. Sending
// is best-effort: a failed dispatch never rolls back the purchase it confirms.
type EmailDispatchMessage struct {
	Kind          string  `json:"kind"`
	ToEmail       string  `json:"to_email"`
	FullName      string  `json:"full_name"`
	PlanName      string  `json:"plan_name"`
	ServiceEmail  string  `json:"service_email,omitempty"`
	InvoiceNumber string  `json:"invoice_number,omitempty"`
	Total         float64 `json:"total,omitempty"`
	PendingAmount float64 `json:"pending_amount,omitempty"`
	PointsUsed    int     `json:"points_used,omitempty"`
	PointsAwarded int     `json:"points_awarded,omitempty"`
}
