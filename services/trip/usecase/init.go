package usecase

import (
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/trip"
)

// TripUC implements the trip.TripUC interface
type TripUC struct {
	cfg  *models.Config
	repo trip.TripRepo
	gw   trip.TripGW
}

// NewTripUC creates a new trip use case
func NewTripUC(cfg *models.Config, repo trip.TripRepo, gw trip.TripGW) *TripUC {
	return &TripUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}
