package usecase

import (
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/geo"
	"github.com/movever/movever/services/match"
)

// MatchUC implements the match.MatchUC interface
type MatchUC struct {
	cfg     *models.Config
	repo    match.MatchRepo
	otcRepo match.OTCRepo
	billing match.BillingProvider
	gw      match.MatchGW
	geo     geo.Resolver
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	cfg *models.Config,
	repo match.MatchRepo,
	otcRepo match.OTCRepo,
	billing match.BillingProvider,
	gw match.MatchGW,
	resolver geo.Resolver,
) *MatchUC {
	return &MatchUC{
		cfg:     cfg,
		repo:    repo,
		otcRepo: otcRepo,
		billing: billing,
		gw:      gw,
		geo:     resolver,
	}
}
