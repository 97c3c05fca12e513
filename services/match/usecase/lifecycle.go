package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/logger"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/match"
)

// Propose creates a pending match for a (trip, delivery request) pair. At
// most one match may exist per pair; a second proposal fails with
// ErrDuplicateMatch. The traveler is notified best-effort.
func (uc *MatchUC) Propose(ctx context.Context, tripID, requestID, actorID string) (*models.Match, error) {
	_, err := uc.repo.GetMatchByPair(ctx, tripID, requestID)
	if err == nil {
		return nil, match.ErrDuplicateMatch
	}
	if !errors.Is(err, match.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to check existing match: %w", err)
	}

	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	request, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	m := &models.Match{
		ID:                uuid.New().String(),
		TripID:            tripID,
		DeliveryRequestID: requestID,
		TravelerID:        trip.TravelerID,
		BusinessID:        request.BusinessID,
		Status:            models.MatchStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.repo.CreateMatch(ctx, m); err != nil {
		return nil, err
	}

	uc.notify(ctx, m.TravelerID, "match_requested", "New Match Request",
		"A business wants you to deliver a package on your trip.",
		map[string]interface{}{
			"match_id":   m.ID,
			"trip_id":    tripID,
			"request_id": requestID,
			"status":     string(m.Status),
		})
	uc.publish(ctx, constants.SubjectMatchProposed, m)

	return m, nil
}

// Accept transitions a pending match to accepted. The delivery request is
// marked matched and the business is notified to proceed to payment.
func (uc *MatchUC) Accept(ctx context.Context, matchID, actorID string) (*models.Match, error) {
	m, err := uc.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.IsParty(actorID) {
		return nil, match.ErrNotAuthorized
	}

	ok, err := uc.repo.TransitionStatus(ctx, matchID, models.MatchStatusPending, models.MatchStatusAccepted, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to accept match: %w", err)
	}
	if !ok {
		return nil, match.ErrMatchNotPending
	}
	m.Status = models.MatchStatusAccepted

	if err := uc.repo.UpdateRequestStatus(ctx, m.DeliveryRequestID, models.RequestStatusMatched); err != nil {
		logger.Warn("failed to mark delivery request matched", logrus.Fields{
			"match_id":   matchID,
			"request_id": m.DeliveryRequestID,
			"error":      err.Error(),
		})
	}

	travelerName := "The traveler"
	if traveler, err := uc.repo.GetUserInfo(ctx, m.TravelerID); err == nil {
		travelerName = traveler.FullName
	}

	uc.notify(ctx, m.BusinessID, "match_accepted", "Match Accepted",
		fmt.Sprintf("%s has accepted your delivery request. Proceed to payment to secure the delivery.", travelerName),
		map[string]interface{}{
			"match_id":   matchID,
			"trip_id":    m.TripID,
			"request_id": m.DeliveryRequestID,
			"status":     string(m.Status),
		})
	uc.publish(ctx, constants.SubjectMatchAccepted, m)

	return m, nil
}

// Decline transitions a pending match to declined and notifies the business
func (uc *MatchUC) Decline(ctx context.Context, matchID, actorID string) (*models.Match, error) {
	m, err := uc.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.IsParty(actorID) {
		return nil, match.ErrNotAuthorized
	}

	ok, err := uc.repo.TransitionStatus(ctx, matchID, models.MatchStatusPending, models.MatchStatusDeclined, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decline match: %w", err)
	}
	if !ok {
		return nil, match.ErrMatchNotPending
	}
	m.Status = models.MatchStatusDeclined

	uc.notify(ctx, m.BusinessID, "match_declined", "Match Declined",
		"The traveler has declined your delivery request. Try searching for other trips.",
		map[string]interface{}{
			"match_id":   matchID,
			"request_id": m.DeliveryRequestID,
			"status":     string(m.Status),
		})
	uc.publish(ctx, constants.SubjectMatchDeclined, m)

	return m, nil
}

// ConfirmPickup transitions an accepted match to pickup_confirmed. It
// requires the latest unexpired pickup code and a captured payment; the code
// is consumed only after the transition wins.
func (uc *MatchUC) ConfirmPickup(ctx context.Context, matchID, code, actorID string) (*models.Match, error) {
	m, err := uc.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.IsParty(actorID) {
		return nil, match.ErrNotAuthorized
	}

	if err := uc.validateCode(ctx, matchID, models.OTCPhasePickup, code); err != nil {
		return nil, err
	}

	paid, err := uc.billing.HasPaidPayment(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to check payment: %w", err)
	}
	if !paid {
		return nil, match.ErrPaymentRequired
	}

	now := time.Now()
	ok, err := uc.repo.TransitionStatus(ctx, matchID, models.MatchStatusAccepted, models.MatchStatusPickupConfirmed, &now)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm pickup: %w", err)
	}
	if !ok {
		return nil, match.ErrMatchNotAccepted
	}
	m.Status = models.MatchStatusPickupConfirmed
	m.PickupConfirmedAt = &now

	uc.consumeCode(ctx, matchID, models.OTCPhasePickup)

	if err := uc.repo.UpdateRequestStatus(ctx, m.DeliveryRequestID, models.RequestStatusInTransit); err != nil {
		logger.Warn("failed to mark delivery request in transit", logrus.Fields{
			"match_id":   matchID,
			"request_id": m.DeliveryRequestID,
			"error":      err.Error(),
		})
	}

	uc.notify(ctx, m.BusinessID, "package_in_transit", "Package Picked Up",
		"The traveler has confirmed pickup. Your package is now in transit.",
		map[string]interface{}{
			"match_id":   matchID,
			"request_id": m.DeliveryRequestID,
		})
	uc.publish(ctx, constants.SubjectMatchPickedUp, m)

	return m, nil
}

// ConfirmDelivery transitions a pickup_confirmed match to completed. It
// requires the latest unexpired delivery code, marks the request delivered
// and the trip completed, and triggers the escrow release. The status
// compare-and-set makes a replayed call fail instead of releasing twice.
func (uc *MatchUC) ConfirmDelivery(ctx context.Context, matchID, code, actorID string) (*models.Match, error) {
	m, err := uc.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.IsParty(actorID) {
		return nil, match.ErrNotAuthorized
	}

	if err := uc.validateCode(ctx, matchID, models.OTCPhaseDelivery, code); err != nil {
		return nil, err
	}

	now := time.Now()
	ok, err := uc.repo.TransitionStatus(ctx, matchID, models.MatchStatusPickupConfirmed, models.MatchStatusCompleted, &now)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm delivery: %w", err)
	}
	if !ok {
		return nil, match.ErrMatchNotInTransit
	}
	m.Status = models.MatchStatusCompleted
	m.DeliveryConfirmedAt = &now

	uc.consumeCode(ctx, matchID, models.OTCPhaseDelivery)

	if err := uc.repo.UpdateRequestStatus(ctx, m.DeliveryRequestID, models.RequestStatusDelivered); err != nil {
		logger.Warn("failed to mark delivery request delivered", logrus.Fields{
			"match_id":   matchID,
			"request_id": m.DeliveryRequestID,
			"error":      err.Error(),
		})
	}
	if err := uc.repo.UpdateTripStatus(ctx, m.TripID, models.TripStatusCompleted); err != nil {
		logger.Warn("failed to mark trip completed", logrus.Fields{
			"match_id": matchID,
			"trip_id":  m.TripID,
			"error":    err.Error(),
		})
	}

	uc.notify(ctx, m.BusinessID, "package_delivered", "Package Delivered",
		"Your package has been successfully delivered and confirmed.",
		map[string]interface{}{
			"match_id":   matchID,
			"request_id": m.DeliveryRequestID,
		})
	uc.publish(ctx, constants.SubjectMatchDelivered, m)

	if err := uc.billing.ReleaseEscrow(ctx, matchID); err != nil {
		logger.Error("escrow release failed", logrus.Fields{
			"match_id": matchID,
			"error":    err.Error(),
		})
	}

	return m, nil
}

// GetMatchDetail returns a match with its request, payment and party
// projections, visible only to the two parties.
func (uc *MatchUC) GetMatchDetail(ctx context.Context, matchID, actorID string) (*models.MatchDetail, error) {
	detail, err := uc.repo.GetMatchDetail(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !detail.IsParty(actorID) {
		return nil, match.ErrNotAuthorized
	}
	return detail, nil
}

// ListMatchesByTrip lists the match requests received on a trip
func (uc *MatchUC) ListMatchesByTrip(ctx context.Context, tripID, actorID string) ([]models.MatchDetail, error) {
	trip, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.TravelerID != actorID {
		return nil, match.ErrNotAuthorized
	}
	return uc.repo.ListMatchesByTrip(ctx, tripID)
}

// ListDeliveriesByTraveler lists a traveler's active and past deliveries
func (uc *MatchUC) ListDeliveriesByTraveler(ctx context.Context, travelerID string) ([]models.MatchDetail, error) {
	return uc.repo.ListDeliveriesByTraveler(ctx, travelerID)
}

// notify dispatches a notification best-effort: failures are logged and
// never fail the lifecycle operation that triggered them.
func (uc *MatchUC) notify(ctx context.Context, userID, notifType, title, body string, data map[string]interface{}) {
	n := models.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Body:      body,
		Data:      data,
		Timestamp: time.Now(),
	}
	if err := uc.gw.Notify(ctx, n); err != nil {
		logger.Warn("notification dispatch failed", logrus.Fields{
			"user_id": userID,
			"type":    notifType,
			"error":   err.Error(),
		})
	}
}

// publish emits a lifecycle event best-effort
func (uc *MatchUC) publish(ctx context.Context, subject string, m *models.Match) {
	if err := uc.gw.PublishMatchEvent(ctx, subject, m); err != nil {
		logger.Warn("match event publish failed", logrus.Fields{
			"subject":  subject,
			"match_id": m.ID,
			"error":    err.Error(),
		})
	}
}
