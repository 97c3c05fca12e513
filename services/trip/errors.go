package trip

import "errors"

// Validation and state-guard errors surfaced by the trip service
var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrRequestNotFound = errors.New("delivery request not found")
	ErrNotOwner        = errors.New("not the owner of this resource")
	ErrTripNotActive   = errors.New("trip is not active")
	ErrTripHasMatches  = errors.New("trip has matches and cannot be cancelled")
	ErrInvalidSpace    = errors.New("space category must be small, medium or large")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrInvalidCost     = errors.New("estimated cost must be greater than zero")
)
