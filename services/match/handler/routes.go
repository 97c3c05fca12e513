package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/movever/movever/internal/pkg/middleware"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/match"
	httpHandler "github.com/movever/movever/services/match/handler/http"
)

// Handler combines the handlers for the match service
type Handler struct {
	matchHTTP *httpHandler.MatchHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC, cfg *models.Config) *Handler {
	return &Handler{
		matchHTTP: httpHandler.NewMatchHandler(matchUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the match service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	trips := e.Group("/trips", auth)
	trips.GET("/search", h.matchHTTP.SearchTrips)
	trips.GET("/:id/matches", h.matchHTTP.FindRequestsForTrip)
	trips.GET("/:id/match-requests", h.matchHTTP.ListMatchesByTrip)

	matches := e.Group("/matches", auth)
	matches.POST("", h.matchHTTP.Propose)
	matches.GET("/:id", h.matchHTTP.GetMatch)
	matches.POST("/:id/accept", h.matchHTTP.Accept)
	matches.POST("/:id/decline", h.matchHTTP.Decline)
	matches.POST("/:id/otc", h.matchHTTP.RequestCode)
	matches.POST("/:id/pickup", h.matchHTTP.ConfirmPickup)
	matches.POST("/:id/delivery", h.matchHTTP.ConfirmDelivery)

	e.GET("/deliveries", h.matchHTTP.ListMyDeliveries, auth)
}
