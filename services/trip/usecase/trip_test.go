package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/trip"
	"github.com/movever/movever/services/trip/mocks"
)

type tripUCMocks struct {
	repo *mocks.MockTripRepo
	gw   *mocks.MockTripGW
}

func newTestTripUC(t *testing.T) (*TripUC, tripUCMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := tripUCMocks{
		repo: mocks.NewMockTripRepo(ctrl),
		gw:   mocks.NewMockTripGW(ctrl),
	}
	uc := NewTripUC(&models.Config{}, m.repo, m.gw)
	return uc, m, ctrl
}

func TestCreateTrip_Success(t *testing.T) {
	uc, m, ctrl := newTestTripUC(t)
	defer ctrl.Finish()

	req := models.CreateTripRequest{
		Origin:         "Abuja",
		Destination:    "Jos",
		DepartureDate:  "2026-09-12",
		DepartureTime:  "09:00",
		AvailableSpace: "medium",
	}

	m.repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *models.Trip) error {
			assert.NotEmpty(t, tr.ID)
			assert.Equal(t, "traveler-1", tr.TravelerID)
			assert.Equal(t, models.TripStatusActive, tr.Status)
			assert.Equal(t, models.SpaceMedium, tr.AvailableSpace)
			assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), tr.DepartureDate)
			return nil
		})
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) error {
			assert.Equal(t, "traveler-1", n.UserID)
			assert.Equal(t, "trip_posted", n.Type)
			return nil
		})
	m.gw.EXPECT().PublishPostedEvent(gomock.Any(), constants.SubjectTripPosted, gomock.Any()).Return(nil)

	created, err := uc.CreateTrip(context.Background(), "traveler-1", req)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "Abuja", created.Origin)
}

func TestCreateTrip_InvalidDate(t *testing.T) {
	uc, _, ctrl := newTestTripUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateTrip(context.Background(), "traveler-1", models.CreateTripRequest{
		Origin:         "Abuja",
		Destination:    "Jos",
		DepartureDate:  "12/09/2026",
		AvailableSpace: "medium",
	})

	assert.ErrorIs(t, err, trip.ErrInvalidDate)
}

func TestCreateTrip_InvalidSpace(t *testing.T) {
	uc, _, ctrl := newTestTripUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateTrip(context.Background(), "traveler-1", models.CreateTripRequest{
		Origin:         "Abuja",
		Destination:    "Jos",
		DepartureDate:  "2026-09-12",
		AvailableSpace: "gigantic",
	})

	assert.ErrorIs(t, err, trip.ErrInvalidSpace)
}

func TestCreateTrip_PublishFailureDoesNotFailCreate(t *testing.T) {
	uc, m, ctrl := newTestTripUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishPostedEvent(gomock.Any(), constants.SubjectTripPosted, gomock.Any()).
		Return(errors.New("nats unavailable"))

	created, err := uc.CreateTrip(context.Background(), "traveler-1", models.CreateTripRequest{
		Origin:         "Abuja",
		Destination:    "Jos",
		DepartureDate:  "2026-09-12",
		AvailableSpace: "small",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestCancelTrip(t *testing.T) {
	activeTrip := func() *models.Trip {
		return &models.Trip{
			ID:         "trip-1",
			TravelerID: "traveler-1",
			Status:     models.TripStatusActive,
		}
	}

	testCases := []struct {
		name      string
		actorID   string
		mockSetup func(m tripUCMocks)
		wantErr   error
	}{
		{
			name:    "owner cancels unmatched trip",
			actorID: "traveler-1",
			mockSetup: func(m tripUCMocks) {
				m.repo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip(), nil)
				m.repo.EXPECT().HasMatches(gomock.Any(), "trip-1").Return(false, nil)
				m.repo.EXPECT().CancelTrip(gomock.Any(), "trip-1").Return(true, nil)
			},
			wantErr: nil,
		},
		{
			name:    "non-owner is rejected",
			actorID: "traveler-2",
			mockSetup: func(m tripUCMocks) {
				m.repo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip(), nil)
			},
			wantErr: trip.ErrNotOwner,
		},
		{
			name:    "trip with matches cannot be cancelled",
			actorID: "traveler-1",
			mockSetup: func(m tripUCMocks) {
				m.repo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip(), nil)
				m.repo.EXPECT().HasMatches(gomock.Any(), "trip-1").Return(true, nil)
			},
			wantErr: trip.ErrTripHasMatches,
		},
		{
			name:    "already completed trip",
			actorID: "traveler-1",
			mockSetup: func(m tripUCMocks) {
				m.repo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(activeTrip(), nil)
				m.repo.EXPECT().HasMatches(gomock.Any(), "trip-1").Return(false, nil)
				m.repo.EXPECT().CancelTrip(gomock.Any(), "trip-1").Return(false, nil)
			},
			wantErr: trip.ErrTripNotActive,
		},
		{
			name:    "trip not found",
			actorID: "traveler-1",
			mockSetup: func(m tripUCMocks) {
				m.repo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(nil, trip.ErrTripNotFound)
			},
			wantErr: trip.ErrTripNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m, ctrl := newTestTripUC(t)
			defer ctrl.Finish()
			tc.mockSetup(m)

			err := uc.CancelTrip(context.Background(), "trip-1", tc.actorID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateDeliveryRequest_Success(t *testing.T) {
	uc, m, ctrl := newTestTripUC(t)
	defer ctrl.Finish()

	req := models.CreateDeliveryRequest{
		Origin:          "Abuja",
		Destination:     "Jos",
		DeliveryDate:    "2026-09-12",
		PackageSize:     "small",
		ItemDescription: "Documents",
		EstimatedCost:   5000,
	}

	m.repo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.DeliveryRequest) error {
			assert.NotEmpty(t, d.ID)
			assert.Equal(t, "business-1", d.BusinessID)
			assert.Equal(t, models.RequestStatusPending, d.Status)
			assert.Equal(t, models.SpaceSmall, d.PackageSize)
			assert.Equal(t, 5000.0, d.EstimatedCost)
			return nil
		})
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Notification) error {
			assert.Equal(t, "request_posted", n.Type)
			return nil
		})
	m.gw.EXPECT().PublishPostedEvent(gomock.Any(), constants.SubjectRequestPosted, gomock.Any()).Return(nil)

	created, err := uc.CreateDeliveryRequest(context.Background(), "business-1", req)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "Documents", created.ItemDescription)
}

func TestCreateDeliveryRequest_InvalidCost(t *testing.T) {
	uc, _, ctrl := newTestTripUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateDeliveryRequest(context.Background(), "business-1", models.CreateDeliveryRequest{
		Origin:        "Abuja",
		Destination:   "Jos",
		DeliveryDate:  "2026-09-12",
		PackageSize:   "small",
		EstimatedCost: 0,
	})

	assert.ErrorIs(t, err, trip.ErrInvalidCost)
}

func TestCreateDeliveryRequest_InvalidSize(t *testing.T) {
	uc, _, ctrl := newTestTripUC(t)
	defer ctrl.Finish()

	_, err := uc.CreateDeliveryRequest(context.Background(), "business-1", models.CreateDeliveryRequest{
		Origin:        "Abuja",
		Destination:   "Jos",
		DeliveryDate:  "2026-09-12",
		PackageSize:   "oversized",
		EstimatedCost: 5000,
	})

	assert.ErrorIs(t, err, trip.ErrInvalidSpace)
}

func TestSearchRequests_Passthrough(t *testing.T) {
	uc, m, ctrl := newTestTripUC(t)
	defer ctrl.Finish()

	expected := []models.RequestCandidate{{DeliveryRequest: models.DeliveryRequest{ID: "req-1"}}}
	m.repo.EXPECT().SearchRequests(gomock.Any(), "abuja", "jos").Return(expected, nil)

	got, err := uc.SearchRequests(context.Background(), "abuja", "jos")

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}
