package models

import (
	"time"
)

// PaymentStatus represents the status of an escrowed payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Payment represents a business's escrowed payment for a match
type Payment struct {
	ID                string        `json:"id" db:"id"`
	MatchID           string        `json:"match_id" db:"match_id"`
	BusinessID        string        `json:"business_id" db:"business_id"`
	TravelerID        string        `json:"traveler_id" db:"traveler_id"`
	Amount            float64       `json:"amount" db:"amount"`
	Commission        float64       `json:"commission" db:"commission"`
	TravelerEarnings  float64       `json:"traveler_earnings" db:"traveler_earnings"`
	PaymentReference  string        `json:"payment_reference" db:"payment_reference"`
	Status            PaymentStatus `json:"payment_status" db:"payment_status"`
	PaidAt            *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	EscrowReleasedAt  *time.Time    `json:"escrow_released_at,omitempty" db:"escrow_released_at"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
}

// PaymentInitResponse is the gateway checkout handle returned on initialization
type PaymentInitResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaymentEvent is published when a payment transitions to paid
type PaymentEvent struct {
	PaymentID string    `json:"payment_id"`
	MatchID   string    `json:"match_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
