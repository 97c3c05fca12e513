package match

import (
	"context"
	"time"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/movever/movever/services/match MatchRepo,OTCRepo,KeyedStore

// MatchRepo defines the data access operations of the match service
type MatchRepo interface {
	// Candidate reads for the ranking engine
	GetActiveTrips(ctx context.Context, verifiedOnly bool) ([]models.TripCandidate, error)
	GetPendingRequests(ctx context.Context) ([]models.RequestCandidate, error)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	GetRequest(ctx context.Context, requestID string) (*models.DeliveryRequest, error)

	// Match CRUD and guarded transitions
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
	GetMatchByPair(ctx context.Context, tripID, requestID string) (*models.Match, error)
	CreateMatch(ctx context.Context, match *models.Match) error
	// TransitionStatus performs a compare-and-set on the match status and
	// returns false when the match was not in the expected state.
	TransitionStatus(ctx context.Context, matchID string, from, to models.MatchStatus, confirmedAt *time.Time) (bool, error)
	GetMatchDetail(ctx context.Context, matchID string) (*models.MatchDetail, error)
	ListMatchesByTrip(ctx context.Context, tripID string) ([]models.MatchDetail, error)
	ListDeliveriesByTraveler(ctx context.Context, travelerID string) ([]models.MatchDetail, error)

	// Lifecycle side effects on the owning entities
	UpdateRequestStatus(ctx context.Context, requestID string, status models.DeliveryRequestStatus) error
	UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) error

	// Read-only identity projection
	GetUserInfo(ctx context.Context, userID string) (*models.UserInfo, error)
}

// OTCRepo stores one-time codes with their cooldown and expiry semantics.
// Only the most recently issued code per (match, phase) is retrievable;
// issuing supersedes, consuming deletes.
type OTCRepo interface {
	IssueCode(ctx context.Context, otc *models.OneTimeCode, cooldown time.Duration) error
	GetLatest(ctx context.Context, matchID string, phase models.OTCPhase) (*models.OneTimeCode, error)
	Consume(ctx context.Context, matchID string, phase models.OTCPhase) error
}

// KeyedStore is the TTL key-value abstraction the OTC repository is built on,
// so the backing implementation is swappable without touching code logic.
type KeyedStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}
