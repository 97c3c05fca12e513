package match

import (
	"context"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/movever/movever/services/match MatchUC,BillingProvider

// MatchUC defines the match service business logic: candidate ranking and
// the match lifecycle state machine.
type MatchUC interface {
	// Ranking
	SearchTrips(ctx context.Context, filter models.SearchFilter) ([]models.RankedTrip, error)
	FindRequestsForTrip(ctx context.Context, tripID string) ([]models.RankedRequest, error)

	// Lifecycle
	Propose(ctx context.Context, tripID, requestID, actorID string) (*models.Match, error)
	Accept(ctx context.Context, matchID, actorID string) (*models.Match, error)
	Decline(ctx context.Context, matchID, actorID string) (*models.Match, error)
	RequestCode(ctx context.Context, matchID string, phase models.OTCPhase, actorID string) (*models.OTCIssueResponse, error)
	ConfirmPickup(ctx context.Context, matchID, code, actorID string) (*models.Match, error)
	ConfirmDelivery(ctx context.Context, matchID, code, actorID string) (*models.Match, error)

	// Detail reads
	GetMatchDetail(ctx context.Context, matchID, actorID string) (*models.MatchDetail, error)
	ListMatchesByTrip(ctx context.Context, tripID, actorID string) ([]models.MatchDetail, error)
	ListDeliveriesByTraveler(ctx context.Context, travelerID string) ([]models.MatchDetail, error)
}

// BillingProvider is the slice of the billing service the lifecycle state
// machine depends on: the payment-captured guard and the escrow release hook.
type BillingProvider interface {
	HasPaidPayment(ctx context.Context, matchID string) (bool, error)
	ReleaseEscrow(ctx context.Context, matchID string) error
}
