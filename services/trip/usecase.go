package trip

import (
	"context"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/movever/movever/services/trip TripUC

// TripUC defines the trip service business logic: posting and listing trips
// and delivery requests.
type TripUC interface {
	CreateTrip(ctx context.Context, travelerID string, req models.CreateTripRequest) (*models.Trip, error)
	ListTripsByTraveler(ctx context.Context, travelerID string) ([]models.Trip, error)
	CancelTrip(ctx context.Context, tripID, actorID string) error

	CreateDeliveryRequest(ctx context.Context, businessID string, req models.CreateDeliveryRequest) (*models.DeliveryRequest, error)
	ListRequestsByBusiness(ctx context.Context, businessID string) ([]models.DeliveryRequest, error)
	SearchRequests(ctx context.Context, origin, destination string) ([]models.RequestCandidate, error)
}
