package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/movever/movever/internal/pkg/middleware"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/internal/utils"
	"github.com/movever/movever/services/match"
)

// MatchHandler handles HTTP requests for search and match lifecycle operations
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
	}
}

type proposeRequest struct {
	TripID    string `json:"trip_id"`
	RequestID string `json:"request_id"`
}

type codeRequest struct {
	Phase string `json:"phase"`
}

type confirmRequest struct {
	Code string `json:"code"`
}

// SearchTrips ranks active trips against the caller's filter
func (h *MatchHandler) SearchTrips(c echo.Context) error {
	filter := models.SearchFilter{
		Origin:       c.QueryParam("origin"),
		Destination:  c.QueryParam("destination"),
		Time:         c.QueryParam("time"),
		Space:        c.QueryParam("space"),
		VerifiedOnly: c.QueryParam("verified_only") == "true",
	}

	if dateStr := c.QueryParam("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid date, expected YYYY-MM-DD")
		}
		filter.Date = date
	}

	results, err := h.matchUC.SearchTrips(c.Request().Context(), filter)
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips ranked", results)
}

// FindRequestsForTrip ranks pending delivery requests against a trip
func (h *MatchHandler) FindRequestsForTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	results, err := h.matchUC.FindRequestsForTrip(c.Request().Context(), tripID)
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Requests ranked", results)
}

// ListMatchesByTrip lists the match requests received on a trip
func (h *MatchHandler) ListMatchesByTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	matches, err := h.matchUC.ListMatchesByTrip(c.Request().Context(), tripID, middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Matches retrieved", matches)
}

// Propose creates a pending match for a (trip, delivery request) pair
func (h *MatchHandler) Propose(c echo.Context) error {
	var req proposeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.TripID == "" || req.RequestID == "" {
		return utils.BadRequestResponse(c, "trip_id and request_id are required")
	}

	m, err := h.matchUC.Propose(c.Request().Context(), req.TripID, req.RequestID, middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Match proposed", m)
}

// Accept transitions a pending match to accepted
func (h *MatchHandler) Accept(c echo.Context) error {
	m, err := h.matchUC.Accept(c.Request().Context(), c.Param("id"), middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match accepted", m)
}

// Decline transitions a pending match to declined
func (h *MatchHandler) Decline(c echo.Context) error {
	m, err := h.matchUC.Decline(c.Request().Context(), c.Param("id"), middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match declined", m)
}

// RequestCode issues a one-time code for a match phase
func (h *MatchHandler) RequestCode(c echo.Context) error {
	var req codeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.matchUC.RequestCode(c.Request().Context(), c.Param("id"),
		models.OTCPhase(req.Phase), middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// ConfirmPickup confirms the pickup phase with a one-time code
func (h *MatchHandler) ConfirmPickup(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "code is required")
	}

	m, err := h.matchUC.ConfirmPickup(c.Request().Context(), c.Param("id"), req.Code, middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup confirmed", m)
}

// ConfirmDelivery confirms the delivery phase with a one-time code
func (h *MatchHandler) ConfirmDelivery(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "code is required")
	}

	m, err := h.matchUC.ConfirmDelivery(c.Request().Context(), c.Param("id"), req.Code, middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Delivery confirmed", m)
}

// GetMatch returns a match with its request, payment and party projections
func (h *MatchHandler) GetMatch(c echo.Context) error {
	detail, err := h.matchUC.GetMatchDetail(c.Request().Context(), c.Param("id"), middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match retrieved", detail)
}

// ListMyDeliveries lists the caller's deliveries as a traveler
func (h *MatchHandler) ListMyDeliveries(c echo.Context) error {
	deliveries, err := h.matchUC.ListDeliveriesByTraveler(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return writeMatchError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Deliveries retrieved", deliveries)
}

// writeMatchError maps domain errors to HTTP statuses
func writeMatchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, match.ErrTripNotFound),
		errors.Is(err, match.ErrRequestNotFound),
		errors.Is(err, match.ErrMatchNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, match.ErrDuplicateMatch),
		errors.Is(err, match.ErrMatchNotPending),
		errors.Is(err, match.ErrMatchNotAccepted),
		errors.Is(err, match.ErrMatchNotInTransit):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, match.ErrNotAuthorized):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, match.ErrPaymentRequired):
		return utils.ErrorResponseHandler(c, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, match.ErrInvalidCode),
		errors.Is(err, match.ErrInvalidPhase):
		return utils.BadRequestResponse(c, err.Error())
	case match.IsCooldown(err):
		return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
