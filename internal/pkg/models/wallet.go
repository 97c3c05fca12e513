package models

import (
	"time"
)

// WalletAccount tracks a traveler's escrowed and available funds.
// Pending balance accrues on payment capture; available balance accrues
// only on delivery confirmation (escrow release).
type WalletAccount struct {
	UserID         string    `json:"user_id" db:"user_id"`
	Balance        float64   `json:"balance" db:"balance"`
	PendingBalance float64   `json:"pending_balance" db:"pending_balance"`
	TotalEarned    float64   `json:"total_earned" db:"total_earned"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// WithdrawalStatus represents the status of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
)

// Withdrawal is a traveler's request to move available funds to their bank
type Withdrawal struct {
	ID            string           `json:"id" db:"id"`
	UserID        string           `json:"user_id" db:"user_id"`
	Amount        float64          `json:"amount" db:"amount"`
	BankName      string           `json:"bank_name" db:"bank_name"`
	AccountNumber string           `json:"account_number" db:"account_number"`
	Status        WithdrawalStatus `json:"status" db:"status"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}

// BankDetails identifies the destination account for a withdrawal
type BankDetails struct {
	BankName      string `json:"bank_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
}
