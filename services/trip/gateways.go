package trip

import (
	"context"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/movever/movever/services/trip TripGW

// TripGW defines the trip service gateway interface. All methods are
// best-effort posting confirmations.
type TripGW interface {
	Notify(ctx context.Context, notification models.Notification) error
	PublishPostedEvent(ctx context.Context, subject string, payload interface{}) error
}
