package match

import (
	"context"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/movever/movever/services/match MatchGW

// MatchGW defines the match service gateway interface. All methods are
// best-effort: the usecase logs failures and never lets them fail the
// triggering lifecycle operation.
type MatchGW interface {
	// Notify dispatches a push notification through the external dispatcher
	Notify(ctx context.Context, notification models.Notification) error
	// PublishMatchEvent publishes a lifecycle event for downstream consumers
	PublishMatchEvent(ctx context.Context, subject string, match *models.Match) error
}
