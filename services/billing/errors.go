package billing

import "errors"

// Domain errors surfaced by the billing service. Payment-critical failures
// are never papered over with fabricated success.
var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentNotPaid      = errors.New("payment has not been captured")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)
