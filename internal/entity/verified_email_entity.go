// FILE: internal/entity/verified_email_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerifiedEmail allow-lists an account email for a streaming service.
// Subscribing requires an active row matching (email, service).
type VerifiedEmail struct {
	Id        uuid.UUID
	Email     string
	ServiceId uuid.UUID
	AddedById *uuid.UUID
	Active    bool
	Notes     string
	CreatedAt time.Time

	Service *StreamingService
}
