package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/match"
)

const pgUniqueViolation = "23505"

// MatchRepo implements the match repository interface
type MatchRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(cfg *models.Config, db *sqlx.DB) *MatchRepo {
	return &MatchRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetMatch retrieves a match by ID
func (r *MatchRepo) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	query := `
		SELECT id, trip_id, delivery_request_id, traveler_id, business_id,
			status, pickup_confirmed_at, delivery_confirmed_at, created_at, updated_at
		FROM matches
		WHERE id = $1
	`

	var m models.Match
	if err := r.db.GetContext(ctx, &m, query, matchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, match.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return &m, nil
}

// GetMatchByPair retrieves the match for a (trip, delivery request) pair
func (r *MatchRepo) GetMatchByPair(ctx context.Context, tripID, requestID string) (*models.Match, error) {
	query := `
		SELECT id, trip_id, delivery_request_id, traveler_id, business_id,
			status, pickup_confirmed_at, delivery_confirmed_at, created_at, updated_at
		FROM matches
		WHERE trip_id = $1 AND delivery_request_id = $2
	`

	var m models.Match
	if err := r.db.GetContext(ctx, &m, query, tripID, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, match.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by pair: %w", err)
	}

	return &m, nil
}

// CreateMatch inserts a new match. The unique constraint on
// (trip_id, delivery_request_id) backs the one-match-per-pair invariant, so
// a racing duplicate surfaces as ErrDuplicateMatch here too.
func (r *MatchRepo) CreateMatch(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches (
			id, trip_id, delivery_request_id, traveler_id, business_id,
			status, created_at, updated_at
		) VALUES (
			:id, :trip_id, :delivery_request_id, :traveler_id, :business_id,
			:status, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return match.ErrDuplicateMatch
		}
		return fmt.Errorf("failed to create match: %w", err)
	}

	return nil
}

// TransitionStatus performs a compare-and-set on the match status. The guard
// and the write are one statement, so two racing transitions cannot both
// succeed; the loser sees false. confirmedAt, when set, lands in the
// timestamp column of the target state.
func (r *MatchRepo) TransitionStatus(ctx context.Context, matchID string, from, to models.MatchStatus, confirmedAt *time.Time) (bool, error) {
	var query string
	args := []interface{}{to, matchID, from}

	switch to {
	case models.MatchStatusPickupConfirmed:
		query = `UPDATE matches SET status = $1, pickup_confirmed_at = $4, updated_at = NOW() WHERE id = $2 AND status = $3`
		args = append(args, confirmedAt)
	case models.MatchStatusCompleted:
		query = `UPDATE matches SET status = $1, delivery_confirmed_at = $4, updated_at = NOW() WHERE id = $2 AND status = $3`
		args = append(args, confirmedAt)
	default:
		query = `UPDATE matches SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to transition match status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows > 0, nil
}

// GetMatchDetail retrieves a match with its request, payment and party projections
func (r *MatchRepo) GetMatchDetail(ctx context.Context, matchID string) (*models.MatchDetail, error) {
	m, err := r.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	detail := &models.MatchDetail{Match: *m}

	request, err := r.GetRequest(ctx, m.DeliveryRequestID)
	if err != nil && !errors.Is(err, match.ErrRequestNotFound) {
		return nil, err
	}
	detail.Request = request

	payment, err := r.getPaymentByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	detail.Payment = payment

	if traveler, err := r.GetUserInfo(ctx, m.TravelerID); err == nil {
		detail.Traveler = traveler
	}
	if business, err := r.GetUserInfo(ctx, m.BusinessID); err == nil {
		detail.Business = business
	}

	return detail, nil
}

// ListMatchesByTrip lists all matches received on a trip, newest first
func (r *MatchRepo) ListMatchesByTrip(ctx context.Context, tripID string) ([]models.MatchDetail, error) {
	query := `
		SELECT id, trip_id, delivery_request_id, traveler_id, business_id,
			status, pickup_confirmed_at, delivery_confirmed_at, created_at, updated_at
		FROM matches
		WHERE trip_id = $1
		ORDER BY created_at DESC
	`

	var matches []models.Match
	if err := r.db.SelectContext(ctx, &matches, query, tripID); err != nil {
		return nil, fmt.Errorf("failed to list matches by trip: %w", err)
	}

	return r.expandDetails(ctx, matches)
}

// ListDeliveriesByTraveler lists a traveler's matches past the proposal
// stage, newest first.
func (r *MatchRepo) ListDeliveriesByTraveler(ctx context.Context, travelerID string) ([]models.MatchDetail, error) {
	query := `
		SELECT id, trip_id, delivery_request_id, traveler_id, business_id,
			status, pickup_confirmed_at, delivery_confirmed_at, created_at, updated_at
		FROM matches
		WHERE traveler_id = $1 AND status NOT IN ($2, $3)
		ORDER BY created_at DESC
	`

	var matches []models.Match
	err := r.db.SelectContext(ctx, &matches, query, travelerID,
		models.MatchStatusPending, models.MatchStatusDeclined)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	return r.expandDetails(ctx, matches)
}

func (r *MatchRepo) expandDetails(ctx context.Context, matches []models.Match) ([]models.MatchDetail, error) {
	details := make([]models.MatchDetail, 0, len(matches))
	for i := range matches {
		detail := models.MatchDetail{Match: matches[i]}

		request, err := r.GetRequest(ctx, matches[i].DeliveryRequestID)
		if err != nil && !errors.Is(err, match.ErrRequestNotFound) {
			return nil, err
		}
		detail.Request = request

		payment, err := r.getPaymentByMatch(ctx, matches[i].ID)
		if err != nil {
			return nil, err
		}
		detail.Payment = payment

		details = append(details, detail)
	}

	return details, nil
}

// getPaymentByMatch returns the payment for a match, or nil when none exists
func (r *MatchRepo) getPaymentByMatch(ctx context.Context, matchID string) (*models.Payment, error) {
	query := `
		SELECT id, match_id, business_id, traveler_id, amount, commission,
			traveler_earnings, payment_reference, payment_status, paid_at,
			escrow_released_at, created_at
		FROM payments
		WHERE match_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var p models.Payment
	if err := r.db.GetContext(ctx, &p, query, matchID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &p, nil
}

// GetUserInfo retrieves the read-only identity projection for a user
func (r *MatchRepo) GetUserInfo(ctx context.Context, userID string) (*models.UserInfo, error) {
	query := `
		SELECT id, full_name, email, phone, is_verified
		FROM users
		WHERE id = $1
	`

	var u models.UserInfo
	if err := r.db.GetContext(ctx, &u, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
