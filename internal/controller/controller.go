// FILE: internal/controller/controller.go
package controller

import (
	"errors"

	"streampoint-be/internal/pkg/upload"
	"streampoint-be/internal/service"
	"streampoint-be/pkg/admin/approval"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserId reads the authenticated user from the JWT middleware locals.
func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	if s, ok := ctx.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			return id
		}
	}
	return uuid.Nil
}

// statusFor maps service sentinels to HTTP statuses so every controller
// reports failures the same way.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrUserBlocked),
		errors.Is(err, service.ErrInvalidSignature):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, approval.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrEmailNotVerified),
		errors.Is(err, service.ErrInsufficientPoints),
		errors.Is(err, service.ErrBelowMinimumRedeem),
		errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrNoCheckoutSession),
		errors.Is(err, service.ErrPlanServiceMismatch),
		errors.Is(err, upload.ErrReceiptTooLarge),
		errors.Is(err, upload.ErrReceiptEmpty),
		errors.Is(err, upload.ErrReceiptInvalidType):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
