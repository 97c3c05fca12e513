package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/match"
)

// GetActiveTrips loads the candidate set for the forward ranking direction:
// active trips joined with their owner's verification status.
func (r *MatchRepo) GetActiveTrips(ctx context.Context, verifiedOnly bool) ([]models.TripCandidate, error) {
	query := `
		SELECT t.id, t.traveler_id, t.origin, t.destination,
			t.departure_date, t.departure_time, t.available_space,
			t.description, t.status, t.created_at, t.updated_at,
			u.full_name AS traveler_name, u.is_verified AS traveler_verified
		FROM trips t
		JOIN users u ON u.id = t.traveler_id
		WHERE t.status = $1
	`
	args := []interface{}{models.TripStatusActive}

	if verifiedOnly {
		query += ` AND u.is_verified = TRUE`
	}

	var trips []models.TripCandidate
	if err := r.db.SelectContext(ctx, &trips, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get active trips: %w", err)
	}

	return trips, nil
}

// GetPendingRequests loads the candidate set for the reverse ranking
// direction: pending delivery requests joined with their owner's
// verification status.
func (r *MatchRepo) GetPendingRequests(ctx context.Context) ([]models.RequestCandidate, error) {
	query := `
		SELECT d.id, d.business_id, d.origin, d.destination,
			d.delivery_date, d.package_size, d.item_description,
			d.estimated_cost, d.status, d.created_at, d.updated_at,
			u.full_name AS business_name, u.is_verified AS business_verified
		FROM delivery_requests d
		JOIN users u ON u.id = d.business_id
		WHERE d.status = $1
	`

	var requests []models.RequestCandidate
	if err := r.db.SelectContext(ctx, &requests, query, models.RequestStatusPending); err != nil {
		return nil, fmt.Errorf("failed to get pending requests: %w", err)
	}

	return requests, nil
}

// GetTrip retrieves a trip by ID
func (r *MatchRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
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
			return nil, match.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &t, nil
}

// GetRequest retrieves a delivery request by ID
func (r *MatchRepo) GetRequest(ctx context.Context, requestID string) (*models.DeliveryRequest, error) {
	query := `
		SELECT id, business_id, origin, destination, delivery_date,
			package_size, item_description, estimated_cost, status,
			created_at, updated_at
		FROM delivery_requests
		WHERE id = $1
	`

	var d models.DeliveryRequest
	if err := r.db.GetContext(ctx, &d, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, match.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get delivery request: %w", err)
	}

	return &d, nil
}

// UpdateRequestStatus updates the status of a delivery request
func (r *MatchRepo) UpdateRequestStatus(ctx context.Context, requestID string, status models.DeliveryRequestStatus) error {
	query := `UPDATE delivery_requests SET status = $1, updated_at = NOW() WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, status, requestID); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	return nil
}

// UpdateTripStatus updates the status of a trip
func (r *MatchRepo) UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) error {
	query := `UPDATE trips SET status = $1, updated_at = NOW() WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, status, tripID); err != nil {
		return fmt.Errorf("failed to update trip status: %w", err)
	}

	return nil
}
