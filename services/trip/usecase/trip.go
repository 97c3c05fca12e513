package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/logger"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/trip"
)

const dateLayout = "2006-01-02"

// CreateTrip validates and posts a traveler's trip
func (uc *TripUC) CreateTrip(ctx context.Context, travelerID string, req models.CreateTripRequest) (*models.Trip, error) {
	departureDate, err := time.Parse(dateLayout, req.DepartureDate)
	if err != nil {
		return nil, trip.ErrInvalidDate
	}
	if !validSpace(req.AvailableSpace) {
		return nil, trip.ErrInvalidSpace
	}

	now := time.Now()
	t := &models.Trip{
		ID:             uuid.New().String(),
		TravelerID:     travelerID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureDate:  departureDate,
		DepartureTime:  req.DepartureTime,
		AvailableSpace: models.SpaceCategory(req.AvailableSpace),
		Description:    req.Description,
		Status:         models.TripStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.CreateTrip(ctx, t); err != nil {
		return nil, err
	}

	uc.notify(ctx, travelerID, "trip_posted", "Trip Posted",
		"Your trip is live. Businesses along your route can now request deliveries.",
		map[string]interface{}{"trip_id": t.ID})
	uc.publish(ctx, constants.SubjectTripPosted, t)

	return t, nil
}

// ListTripsByTraveler lists a traveler's trips
func (uc *TripUC) ListTripsByTraveler(ctx context.Context, travelerID string) ([]models.Trip, error) {
	return uc.repo.ListTripsByTraveler(ctx, travelerID)
}

// CancelTrip cancels an active trip. Trips with matches cannot be cancelled:
// a business may already be relying on the capacity.
func (uc *TripUC) CancelTrip(ctx context.Context, tripID, actorID string) error {
	t, err := uc.repo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if t.TravelerID != actorID {
		return trip.ErrNotOwner
	}

	hasMatches, err := uc.repo.HasMatches(ctx, tripID)
	if err != nil {
		return err
	}
	if hasMatches {
		return trip.ErrTripHasMatches
	}

	cancelled, err := uc.repo.CancelTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if !cancelled {
		return trip.ErrTripNotActive
	}

	return nil
}

// CreateDeliveryRequest validates and posts a business's delivery request
func (uc *TripUC) CreateDeliveryRequest(ctx context.Context, businessID string, req models.CreateDeliveryRequest) (*models.DeliveryRequest, error) {
	deliveryDate, err := time.Parse(dateLayout, req.DeliveryDate)
	if err != nil {
		return nil, trip.ErrInvalidDate
	}
	if !validSpace(req.PackageSize) {
		return nil, trip.ErrInvalidSpace
	}
	if req.EstimatedCost <= 0 {
		return nil, trip.ErrInvalidCost
	}

	now := time.Now()
	d := &models.DeliveryRequest{
		ID:              uuid.New().String(),
		BusinessID:      businessID,
		Origin:          req.Origin,
		Destination:     req.Destination,
		DeliveryDate:    deliveryDate,
		PackageSize:     models.SpaceCategory(req.PackageSize),
		ItemDescription: req.ItemDescription,
		EstimatedCost:   req.EstimatedCost,
		Status:          models.RequestStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.repo.CreateRequest(ctx, d); err != nil {
		return nil, err
	}

	uc.notify(ctx, businessID, "request_posted", "Delivery Request Posted",
		"Your delivery request is live. Matching travelers will be able to see it.",
		map[string]interface{}{"request_id": d.ID})
	uc.publish(ctx, constants.SubjectRequestPosted, d)

	return d, nil
}

// ListRequestsByBusiness lists a business's delivery requests
func (uc *TripUC) ListRequestsByBusiness(ctx context.Context, businessID string) ([]models.DeliveryRequest, error) {
	return uc.repo.ListRequestsByBusiness(ctx, businessID)
}

// SearchRequests is the traveler-side browse over pending requests
func (uc *TripUC) SearchRequests(ctx context.Context, origin, destination string) ([]models.RequestCandidate, error) {
	return uc.repo.SearchRequests(ctx, origin, destination)
}

func validSpace(space string) bool {
	switch models.SpaceCategory(space) {
	case models.SpaceSmall, models.SpaceMedium, models.SpaceLarge:
		return true
	}
	return false
}

func (uc *TripUC) notify(ctx context.Context, userID, notifType, title, body string, data map[string]interface{}) {
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

func (uc *TripUC) publish(ctx context.Context, subject string, payload interface{}) {
	if err := uc.gw.PublishPostedEvent(ctx, subject, payload); err != nil {
		logger.Warn("posted event publish failed", logrus.Fields{
			"subject": subject,
			"error":   err.Error(),
		})
	}
}
