package gateway

import (
	"context"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/models"
	natspkg "github.com/movever/movever/internal/pkg/nats"
	"github.com/movever/movever/services/match"
)

// matchGW publishes match side effects to NATS. The downstream notification
// service owns push/email fan-out; this gateway only hands events off.
type matchGW struct {
	natsClient *natspkg.Client
}

// NewMatchGW creates a new NATS gateway instance
func NewMatchGW(client *natspkg.Client) match.MatchGW {
	return &matchGW{
		natsClient: client,
	}
}

// Notify publishes a notification for the external dispatcher
func (g *matchGW) Notify(ctx context.Context, notification models.Notification) error {
	return g.natsClient.PublishJSON(constants.SubjectNotificationPush, notification)
}

// PublishMatchEvent publishes a lifecycle event for downstream consumers
func (g *matchGW) PublishMatchEvent(ctx context.Context, subject string, m *models.Match) error {
	return g.natsClient.PublishJSON(subject, m)
}
