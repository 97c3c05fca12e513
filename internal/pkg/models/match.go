package models

import (
	"time"
)

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusPending         MatchStatus = "pending"
	MatchStatusAccepted        MatchStatus = "accepted"
	MatchStatusPickupConfirmed MatchStatus = "pickup_confirmed"
	MatchStatusCompleted       MatchStatus = "completed"
	MatchStatusDeclined        MatchStatus = "declined"
	MatchStatusDisputed        MatchStatus = "disputed"
)

// Match represents a pairing of one trip with one delivery request.
// At most one match exists per (trip, delivery request) pair; terminal
// matches are retained for audit and dispute resolution.
type Match struct {
	ID                  string      `json:"id" db:"id"`
	TripID              string      `json:"trip_id" db:"trip_id"`
	DeliveryRequestID   string      `json:"delivery_request_id" db:"delivery_request_id"`
	TravelerID          string      `json:"traveler_id" db:"traveler_id"`
	BusinessID          string      `json:"business_id" db:"business_id"`
	Status              MatchStatus `json:"status" db:"status"`
	PickupConfirmedAt   *time.Time  `json:"pickup_confirmed_at,omitempty" db:"pickup_confirmed_at"`
	DeliveryConfirmedAt *time.Time  `json:"delivery_confirmed_at,omitempty" db:"delivery_confirmed_at"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at" db:"updated_at"`
}

// IsParty reports whether the given user is one of the two parties to the match
func (m *Match) IsParty(userID string) bool {
	return m.TravelerID == userID || m.BusinessID == userID
}

// MatchDetail is a match with its payment and counterpart projections
type MatchDetail struct {
	Match
	Request  *DeliveryRequest `json:"delivery_request,omitempty"`
	Payment  *Payment         `json:"payment,omitempty"`
	Traveler *UserInfo        `json:"traveler,omitempty"`
	Business *UserInfo        `json:"business,omitempty"`
}

// SearchFilter is the caller-supplied filter for candidate ranking
type SearchFilter struct {
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"` // "HH:MM"
	Space        string    `json:"space"`
	VerifiedOnly bool      `json:"verified_only"`
}

// RankedTrip is a trip candidate with its relevance score and reasons
type RankedTrip struct {
	Trip           TripCandidate `json:"trip"`
	RelevanceScore float64       `json:"relevance_score"`
	MatchReasons   []string      `json:"match_reasons"`

	// rawScore orders results; RelevanceScore is the display-capped value
	rawScore float64
}

// RawScore returns the uncapped score used for ordering
func (r *RankedTrip) RawScore() float64 { return r.rawScore }

// SetScores records the raw sort score and the capped reported score
func (r *RankedTrip) SetScores(raw, reported float64) {
	r.rawScore = raw
	r.RelevanceScore = reported
}

// RankedRequest is a delivery-request candidate with its score and reasons
type RankedRequest struct {
	Request        RequestCandidate `json:"request"`
	RelevanceScore float64          `json:"relevance_score"`
	MatchReasons   []string         `json:"match_reasons"`
}
