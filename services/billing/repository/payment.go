package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/billing"
)

// BillingRepo implements the billing repository interface
type BillingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(cfg *models.Config, db *sqlx.DB) *BillingRepo {
	return &BillingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreatePayment inserts a new pending payment
func (r *BillingRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (
			id, match_id, business_id, traveler_id, amount, commission,
			traveler_earnings, payment_reference, payment_status, created_at
		) VALUES (
			:id, :match_id, :business_id, :traveler_id, :amount, :commission,
			:traveler_earnings, :payment_reference, :payment_status, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

const paymentColumns = `
	id, match_id, business_id, traveler_id, amount, commission,
	traveler_earnings, payment_reference, payment_status, paid_at,
	escrow_released_at, created_at
`

// GetPaymentByReference retrieves a payment by its gateway reference
func (r *BillingRepo) GetPaymentByReference(ctx context.Context, reference string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_reference = $1`

	var p models.Payment
	if err := r.db.GetContext(ctx, &p, query, reference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &p, nil
}

// GetPaidPaymentByMatch retrieves the captured payment for a match
func (r *BillingRepo) GetPaidPaymentByMatch(ctx context.Context, matchID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE match_id = $1 AND payment_status = $2
		ORDER BY paid_at DESC
		LIMIT 1`

	var p models.Payment
	if err := r.db.GetContext(ctx, &p, query, matchID, models.PaymentStatusPaid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get paid payment: %w", err)
	}

	return &p, nil
}

// HasPaidPayment reports whether a captured payment exists for a match
func (r *BillingRepo) HasPaidPayment(ctx context.Context, matchID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE match_id = $1 AND payment_status = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, matchID, models.PaymentStatusPaid); err != nil {
		return false, fmt.Errorf("failed to check payment: %w", err)
	}

	return exists, nil
}

// MarkPaid transitions a payment from pending to paid. The status guard and
// the write are one statement, so a redelivered webhook applies at most
// once; the loser sees false.
func (r *BillingRepo) MarkPaid(ctx context.Context, reference string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET payment_status = $1, paid_at = $2
		WHERE payment_reference = $3 AND payment_status = $4
	`

	res, err := r.db.ExecContext(ctx, query, models.PaymentStatusPaid, paidAt, reference, models.PaymentStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows > 0, nil
}

// MarkEscrowReleased stamps escrow_released_at exactly once per payment
func (r *BillingRepo) MarkEscrowReleased(ctx context.Context, paymentID string, releasedAt time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET escrow_released_at = $1
		WHERE id = $2 AND escrow_released_at IS NULL
	`

	res, err := r.db.ExecContext(ctx, query, releasedAt, paymentID)
	if err != nil {
		return false, fmt.Errorf("failed to mark escrow released: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows > 0, nil
}

// GetMatchForBilling retrieves the match a payment is being raised against
func (r *BillingRepo) GetMatchForBilling(ctx context.Context, matchID string) (*models.Match, error) {
	query := `
		SELECT id, trip_id, delivery_request_id, traveler_id, business_id,
			status, pickup_confirmed_at, delivery_confirmed_at, created_at, updated_at
		FROM matches
		WHERE id = $1
	`

	var m models.Match
	if err := r.db.GetContext(ctx, &m, query, matchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("match not found")
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return &m, nil
}

// GetRequestCost returns the estimated cost of a delivery request
func (r *BillingRepo) GetRequestCost(ctx context.Context, requestID string) (float64, error) {
	query := `SELECT estimated_cost FROM delivery_requests WHERE id = $1`

	var cost float64
	if err := r.db.GetContext(ctx, &cost, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("delivery request not found")
		}
		return 0, fmt.Errorf("failed to get request cost: %w", err)
	}

	return cost, nil
}
