package gateway

import (
	"context"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/models"
	natspkg "github.com/movever/movever/internal/pkg/nats"
	"github.com/movever/movever/services/trip"
)

// tripGW publishes trip side effects to NATS
type tripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new NATS gateway instance
func NewTripGW(client *natspkg.Client) trip.TripGW {
	return &tripGW{
		natsClient: client,
	}
}

// Notify publishes a notification for the external dispatcher
func (g *tripGW) Notify(ctx context.Context, notification models.Notification) error {
	return g.natsClient.PublishJSON(constants.SubjectNotificationPush, notification)
}

// PublishPostedEvent publishes a posting event for downstream consumers
func (g *tripGW) PublishPostedEvent(ctx context.Context, subject string, payload interface{}) error {
	return g.natsClient.PublishJSON(subject, payload)
}
