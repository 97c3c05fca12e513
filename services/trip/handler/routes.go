package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/movever/movever/internal/pkg/middleware"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/trip"
	httpHandler "github.com/movever/movever/services/trip/handler/http"
)

// Handler combines the handlers for the trip service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trip.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the trip service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	trips := e.Group("/trips", auth)
	trips.POST("", h.tripHTTP.CreateTrip)
	trips.GET("", h.tripHTTP.ListMyTrips)
	trips.DELETE("/:id", h.tripHTTP.CancelTrip)

	requests := e.Group("/delivery-requests", auth)
	requests.POST("", h.tripHTTP.CreateDeliveryRequest)
	requests.GET("", h.tripHTTP.ListMyRequests)
	requests.GET("/search", h.tripHTTP.SearchRequests)
}
