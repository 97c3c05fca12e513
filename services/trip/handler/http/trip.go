package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movever/movever/internal/pkg/middleware"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/internal/utils"
	"github.com/movever/movever/services/trip"
)

// TripHandler handles HTTP requests for trip and delivery-request posting
type TripHandler struct {
	tripUC trip.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trip.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// CreateTrip posts a new trip for the caller
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Origin == "" || req.Destination == "" {
		return utils.BadRequestResponse(c, "origin and destination are required")
	}

	t, err := h.tripUC.CreateTrip(c.Request().Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		return writeTripError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip posted", t)
}

// ListMyTrips lists the caller's trips
func (h *TripHandler) ListMyTrips(c echo.Context) error {
	trips, err := h.tripUC.ListTripsByTraveler(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return writeTripError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", trips)
}

// CancelTrip cancels one of the caller's active trips
func (h *TripHandler) CancelTrip(c echo.Context) error {
	err := h.tripUC.CancelTrip(c.Request().Context(), c.Param("id"), middleware.UserIDFromContext(c))
	if err != nil {
		return writeTripError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", nil)
}

// CreateDeliveryRequest posts a new delivery request for the caller
func (h *TripHandler) CreateDeliveryRequest(c echo.Context) error {
	var req models.CreateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Origin == "" || req.Destination == "" {
		return utils.BadRequestResponse(c, "origin and destination are required")
	}

	d, err := h.tripUC.CreateDeliveryRequest(c.Request().Context(), middleware.UserIDFromContext(c), req)
	if err != nil {
		return writeTripError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Delivery request posted", d)
}

// ListMyRequests lists the caller's delivery requests
func (h *TripHandler) ListMyRequests(c echo.Context) error {
	requests, err := h.tripUC.ListRequestsByBusiness(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return writeTripError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Delivery requests retrieved", requests)
}

// SearchRequests browses pending delivery requests
func (h *TripHandler) SearchRequests(c echo.Context) error {
	requests, err := h.tripUC.SearchRequests(c.Request().Context(), c.QueryParam("origin"), c.QueryParam("destination"))
	if err != nil {
		return writeTripError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Delivery requests retrieved", requests)
}

// writeTripError maps domain errors to HTTP statuses
func writeTripError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, trip.ErrTripNotFound),
		errors.Is(err, trip.ErrRequestNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, trip.ErrNotOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, trip.ErrTripHasMatches),
		errors.Is(err, trip.ErrTripNotActive):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, trip.ErrInvalidSpace),
		errors.Is(err, trip.ErrInvalidDate),
		errors.Is(err, trip.ErrInvalidCost):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
