package trip

import (
	"context"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/movever/movever/services/trip TripRepo

// TripRepo defines the data access operations of the trip service
type TripRepo interface {
	// Trips
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	ListTripsByTraveler(ctx context.Context, travelerID string) ([]models.Trip, error)
	// CancelTrip transitions an active trip to cancelled; false means the
	// trip was not active.
	CancelTrip(ctx context.Context, tripID string) (bool, error)
	HasMatches(ctx context.Context, tripID string) (bool, error)

	// Delivery requests
	CreateRequest(ctx context.Context, request *models.DeliveryRequest) error
	ListRequestsByBusiness(ctx context.Context, businessID string) ([]models.DeliveryRequest, error)
	// SearchRequests is the traveler-side browse: pending requests with
	// optional case-insensitive origin/destination filters.
	SearchRequests(ctx context.Context, origin, destination string) ([]models.RequestCandidate, error)
}
