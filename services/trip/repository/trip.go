package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/trip"
)

// TripRepo implements the trip repository interface
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, t *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, traveler_id, origin, destination, departure_date,
			departure_time, available_space, description, status,
			created_at, updated_at
		) VALUES (
			:id, :traveler_id, :origin, :destination, :departure_date,
			:departure_time, :available_space, :description, :status,
			:created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	query := `
		SELECT id, traveler_id, origin, destination, departure_date,
			departure_time, available_space, description, status,
			created_at, updated_at
		FROM trips
		WHERE id = $1
	`

	var t models.Trip
	if err := r.db.GetContext(ctx, &t, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &t, nil
}

// ListTripsByTraveler lists a traveler's trips, newest first
func (r *TripRepo) ListTripsByTraveler(ctx context.Context, travelerID string) ([]models.Trip, error) {
	query := `
		SELECT id, traveler_id, origin, destination, departure_date,
			departure_time, available_space, description, status,
			created_at, updated_at
		FROM trips
		WHERE traveler_id = $1
		ORDER BY created_at DESC
	`

	var trips []models.Trip
	if err := r.db.SelectContext(ctx, &trips, query, travelerID); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	return trips, nil
}

// CancelTrip transitions an active trip to cancelled. The status guard and
// the write are one statement; false means the trip was not active.
func (r *TripRepo) CancelTrip(ctx context.Context, tripID string) (bool, error) {
	query := `
		UPDATE trips
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := r.db.ExecContext(ctx, query, models.TripStatusCancelled, tripID, models.TripStatusActive)
	if err != nil {
		return false, fmt.Errorf("failed to cancel trip: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows > 0, nil
}

// HasMatches reports whether any match references the trip
func (r *TripRepo) HasMatches(ctx context.Context, tripID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM matches WHERE trip_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, tripID); err != nil {
		return false, fmt.Errorf("failed to check trip matches: %w", err)
	}

	return exists, nil
}

// CreateRequest inserts a new delivery request
func (r *TripRepo) CreateRequest(ctx context.Context, d *models.DeliveryRequest) error {
	query := `
		INSERT INTO delivery_requests (
			id, business_id, origin, destination, delivery_date,
			package_size, item_description, estimated_cost, status,
			created_at, updated_at
		) VALUES (
			:id, :business_id, :origin, :destination, :delivery_date,
			:package_size, :item_description, :estimated_cost, :status,
			:created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, d); err != nil {
		return fmt.Errorf("failed to create delivery request: %w", err)
	}

	return nil
}

// ListRequestsByBusiness lists a business's delivery requests, newest first
func (r *TripRepo) ListRequestsByBusiness(ctx context.Context, businessID string) ([]models.DeliveryRequest, error) {
	query := `
		SELECT id, business_id, origin, destination, delivery_date,
			package_size, item_description, estimated_cost, status,
			created_at, updated_at
		FROM delivery_requests
		WHERE business_id = $1
		ORDER BY created_at DESC
	`

	var requests []models.DeliveryRequest
	if err := r.db.SelectContext(ctx, &requests, query, businessID); err != nil {
		return nil, fmt.Errorf("failed to list delivery requests: %w", err)
	}

	return requests, nil
}

// SearchRequests lists pending delivery requests with optional
// case-insensitive origin/destination filters, newest first.
func (r *TripRepo) SearchRequests(ctx context.Context, origin, destination string) ([]models.RequestCandidate, error) {
	query := `
		SELECT d.id, d.business_id, d.origin, d.destination, d.delivery_date,
			d.package_size, d.item_description, d.estimated_cost, d.status,
			d.created_at, d.updated_at,
			u.full_name AS business_name, u.is_verified AS business_verified
		FROM delivery_requests d
		JOIN users u ON u.id = d.business_id
		WHERE d.status = $1
	`
	args := []interface{}{models.RequestStatusPending}

	if origin != "" {
		args = append(args, "%"+origin+"%")
		query += fmt.Sprintf(" AND d.origin ILIKE $%d", len(args))
	}
	if destination != "" {
		args = append(args, "%"+destination+"%")
		query += fmt.Sprintf(" AND d.destination ILIKE $%d", len(args))
	}

	query += " ORDER BY d.created_at DESC"

	var requests []models.RequestCandidate
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search delivery requests: %w", err)
	}

	return requests, nil
}
