package models

import (
	"time"
)

// OTCPhase is the lifecycle phase a one-time code gates
type OTCPhase string

const (
	OTCPhasePickup   OTCPhase = "pickup"
	OTCPhaseDelivery OTCPhase = "delivery"
)

// Valid reports whether the phase is one of the two known phases
func (p OTCPhase) Valid() bool {
	return p == OTCPhasePickup || p == OTCPhaseDelivery
}

// OneTimeCode is a short-lived numeric code bound to a match and phase.
// Only the most recently issued code for a (match, phase) is authoritative;
// issuing a new one supersedes any prior code.
type OneTimeCode struct {
	MatchID   string    `json:"match_id"`
	Phase     OTCPhase  `json:"phase"`
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OTCIssueResponse is returned to the requesting party on successful issuance
type OTCIssueResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}
