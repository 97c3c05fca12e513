package match

import (
	"errors"
	"fmt"
)

// State-guard and authorization errors surfaced by the lifecycle state
// machine. Handlers map these to HTTP statuses; they are never retried
// silently.
var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrRequestNotFound   = errors.New("delivery request not found")
	ErrMatchNotFound     = errors.New("match not found")
	ErrDuplicateMatch    = errors.New("match request already exists")
	ErrMatchNotPending   = errors.New("match is not pending")
	ErrMatchNotAccepted  = errors.New("match is not accepted")
	ErrMatchNotInTransit = errors.New("match has no confirmed pickup")
	ErrNotAuthorized     = errors.New("not authorized for this match")
	ErrPaymentRequired   = errors.New("payment required before requesting pickup code")
	ErrInvalidCode       = errors.New("invalid or expired code")
	ErrInvalidPhase      = errors.New("phase must be pickup or delivery")
)

// CooldownError reports that a one-time code was requested again before the
// cooldown elapsed. RemainingMinutes is rounded up to whole minutes.
type CooldownError struct {
	RemainingMinutes int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("please wait %d minute(s) before requesting another code", e.RemainingMinutes)
}

// IsCooldown reports whether err is a cooldown violation
func IsCooldown(err error) bool {
	var ce *CooldownError
	return errors.As(err, &ce)
}
