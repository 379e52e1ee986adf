// FILE: internal/service/errors.go
package service

import "errors"

// Business rule violations surface as sentinels so controllers can map them
// to the right status codes without string matching.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already registered")
	ErrUserBlocked         = errors.New("user account is blocked")
	ErrNotFound            = errors.New("resource not found")
	ErrForbidden           = errors.New("operation not allowed for this user")
	ErrEmailNotVerified    = errors.New("service email is not verified for this service")
	ErrInsufficientPoints  = errors.New("insufficient points")
	ErrBelowMinimumRedeem  = errors.New("points below the minimum redemption")
	ErrInvalidPayment      = errors.New("invalid payment method")
	ErrNoCheckoutSession   = errors.New("no active checkout session")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrPlanServiceMismatch = errors.New("plan does not belong to the selected service")
)
