package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/match"
)

func pendingMatch() *models.Match {
	return &models.Match{
		ID:                "match-1",
		TripID:            "trip-1",
		DeliveryRequestID: "req-1",
		TravelerID:        "traveler-1",
		BusinessID:        "business-1",
		Status:            models.MatchStatusPending,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

func TestPropose_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{ID: "trip-1", TravelerID: "traveler-1", Status: models.TripStatusActive}
	request := &models.DeliveryRequest{ID: "req-1", BusinessID: "business-1", Status: models.RequestStatusPending}

	m.repo.EXPECT().GetMatchByPair(gomock.Any(), "trip-1", "req-1").Return(nil, match.ErrMatchNotFound)
	m.repo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)
	m.repo.EXPECT().GetRequest(gomock.Any(), "req-1").Return(request, nil)
	m.repo.EXPECT().CreateMatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, created *models.Match) error {
			assert.NotEmpty(t, created.ID)
			assert.Equal(t, models.MatchStatusPending, created.Status)
			assert.Equal(t, "traveler-1", created.TravelerID)
			assert.Equal(t, "business-1", created.BusinessID)
			return nil
		})
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Notification) error {
			assert.Equal(t, "traveler-1", n.UserID)
			assert.Equal(t, "match_requested", n.Type)
			return nil
		})
	m.gw.EXPECT().PublishMatchEvent(gomock.Any(), constants.SubjectMatchProposed, gomock.Any()).Return(nil)

	// Act
	created, err := uc.Propose(context.Background(), "trip-1", "req-1", "business-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusPending, created.Status)
}

func TestPropose_DuplicatePair(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatchByPair(gomock.Any(), "trip-1", "req-1").Return(pendingMatch(), nil)

	// Act
	created, err := uc.Propose(context.Background(), "trip-1", "req-1", "business-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrDuplicateMatch)
	assert.Nil(t, created)
}

func TestAccept_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(pendingMatch(), nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "match-1",
		models.MatchStatusPending, models.MatchStatusAccepted, nil).Return(true, nil)
	m.repo.EXPECT().UpdateRequestStatus(gomock.Any(), "req-1", models.RequestStatusMatched).Return(nil)
	m.repo.EXPECT().GetUserInfo(gomock.Any(), "traveler-1").
		Return(&models.UserInfo{ID: "traveler-1", FullName: "Ada Obi"}, nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Notification) error {
			assert.Equal(t, "business-1", n.UserID)
			assert.Contains(t, n.Body, "Ada Obi")
			return nil
		})
	m.gw.EXPECT().PublishMatchEvent(gomock.Any(), constants.SubjectMatchAccepted, gomock.Any()).Return(nil)

	// Act
	accepted, err := uc.Accept(context.Background(), "match-1", "traveler-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusAccepted, accepted.Status)
}

func TestAccept_NotPending(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	declined := pendingMatch()
	declined.Status = models.MatchStatusDeclined

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(declined, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "match-1",
		models.MatchStatusPending, models.MatchStatusAccepted, nil).Return(false, nil)

	// Act
	accepted, err := uc.Accept(context.Background(), "match-1", "traveler-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrMatchNotPending)
	assert.Nil(t, accepted)
}

func TestAccept_NotAParty(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(pendingMatch(), nil)

	// Act
	accepted, err := uc.Accept(context.Background(), "match-1", "stranger")

	// Assert
	assert.ErrorIs(t, err, match.ErrNotAuthorized)
	assert.Nil(t, accepted)
}

func TestDecline_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(pendingMatch(), nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "match-1",
		models.MatchStatusPending, models.MatchStatusDeclined, nil).Return(true, nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishMatchEvent(gomock.Any(), constants.SubjectMatchDeclined, gomock.Any()).Return(nil)

	// Act
	declined, err := uc.Decline(context.Background(), "match-1", "traveler-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusDeclined, declined.Status)
}

func acceptedMatch() *models.Match {
	m := pendingMatch()
	m.Status = models.MatchStatusAccepted
	return m
}

func validPickupCode() *models.OneTimeCode {
	return &models.OneTimeCode{
		MatchID:   "match-1",
		Phase:     models.OTCPhasePickup,
		Code:      "123456",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
}

func TestConfirmPickup_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(acceptedMatch(), nil)
	m.otcRepo.EXPECT().GetLatest(gomock.Any(), "match-1", models.OTCPhasePickup).Return(validPickupCode(), nil)
	m.billing.EXPECT().HasPaidPayment(gomock.Any(), "match-1").Return(true, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "match-1",
		models.MatchStatusAccepted, models.MatchStatusPickupConfirmed, gomock.Any()).Return(true, nil)
	m.otcRepo.EXPECT().Consume(gomock.Any(), "match-1", models.OTCPhasePickup).Return(nil)
	m.repo.EXPECT().UpdateRequestStatus(gomock.Any(), "req-1", models.RequestStatusInTransit).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishMatchEvent(gomock.Any(), constants.SubjectMatchPickedUp, gomock.Any()).Return(nil)

	// Act
	confirmed, err := uc.ConfirmPickup(context.Background(), "match-1", "123456", "traveler-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusPickupConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.PickupConfirmedAt)
}

func TestConfirmPickup_WrongCode(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(acceptedMatch(), nil)
	m.otcRepo.EXPECT().GetLatest(gomock.Any(), "match-1", models.OTCPhasePickup).Return(validPickupCode(), nil)

	// Act
	confirmed, err := uc.ConfirmPickup(context.Background(), "match-1", "000000", "traveler-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrInvalidCode)
	assert.Nil(t, confirmed)
}

func TestConfirmPickup_ExpiredCode(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	expired := validPickupCode()
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(acceptedMatch(), nil)
	m.otcRepo.EXPECT().GetLatest(gomock.Any(), "match-1", models.OTCPhasePickup).Return(expired, nil)

	// Act
	confirmed, err := uc.ConfirmPickup(context.Background(), "match-1", "123456", "traveler-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrInvalidCode)
	assert.Nil(t, confirmed)
}

func TestConfirmPickup_PaymentNotCaptured(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(acceptedMatch(), nil)
	m.otcRepo.EXPECT().GetLatest(gomock.Any(), "match-1", models.OTCPhasePickup).Return(validPickupCode(), nil)
	m.billing.EXPECT().HasPaidPayment(gomock.Any(), "match-1").Return(false, nil)

	// Act
	confirmed, err := uc.ConfirmPickup(context.Background(), "match-1", "123456", "traveler-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrPaymentRequired)
	assert.Nil(t, confirmed)
}

func TestConfirmPickup_TransitionLost(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(acceptedMatch(), nil)
	m.otcRepo.EXPECT().GetLatest(gomock.Any(), "match-1", models.OTCPhasePickup).Return(validPickupCode(), nil)
	m.billing.EXPECT().HasPaidPayment(gomock.Any(), "match-1").Return(true, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "match-1",
		models.MatchStatusAccepted, models.MatchStatusPickupConfirmed, gomock.Any()).Return(false, nil)

	// Act: the losing call must not consume the code or emit side effects
	confirmed, err := uc.ConfirmPickup(context.Background(), "match-1", "123456", "traveler-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrMatchNotAccepted)
	assert.Nil(t, confirmed)
}

func TestConfirmDelivery_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	inTransit := pendingMatch()
	inTransit.Status = models.MatchStatusPickupConfirmed

	code := &models.OneTimeCode{
		MatchID:   "match-1",
		Phase:     models.OTCPhaseDelivery,
		Code:      "654321",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(inTransit, nil)
	m.otcRepo.EXPECT().GetLatest(gomock.Any(), "match-1", models.OTCPhaseDelivery).Return(code, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "match-1",
		models.MatchStatusPickupConfirmed, models.MatchStatusCompleted, gomock.Any()).Return(true, nil)
	m.otcRepo.EXPECT().Consume(gomock.Any(), "match-1", models.OTCPhaseDelivery).Return(nil)
	m.repo.EXPECT().UpdateRequestStatus(gomock.Any(), "req-1", models.RequestStatusDelivered).Return(nil)
	m.repo.EXPECT().UpdateTripStatus(gomock.Any(), "trip-1", models.TripStatusCompleted).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishMatchEvent(gomock.Any(), constants.SubjectMatchDelivered, gomock.Any()).Return(nil)
	m.billing.EXPECT().ReleaseEscrow(gomock.Any(), "match-1").Return(nil)

	// Act
	completed, err := uc.ConfirmDelivery(context.Background(), "match-1", "654321", "traveler-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCompleted, completed.Status)
	assert.NotNil(t, completed.DeliveryConfirmedAt)
}

func TestConfirmDelivery_ReplayRejected(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	done := pendingMatch()
	done.Status = models.MatchStatusCompleted

	code := &models.OneTimeCode{
		MatchID:   "match-1",
		Phase:     models.OTCPhaseDelivery,
		Code:      "654321",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(done, nil)
	m.otcRepo.EXPECT().GetLatest(gomock.Any(), "match-1", models.OTCPhaseDelivery).Return(code, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "match-1",
		models.MatchStatusPickupConfirmed, models.MatchStatusCompleted, gomock.Any()).Return(false, nil)

	// Act: replaying a completed delivery must not release escrow again
	completed, err := uc.ConfirmDelivery(context.Background(), "match-1", "654321", "traveler-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrMatchNotInTransit)
	assert.Nil(t, completed)
}

func TestConfirmDelivery_EscrowFailureDoesNotFailConfirmation(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	inTransit := pendingMatch()
	inTransit.Status = models.MatchStatusPickupConfirmed

	code := &models.OneTimeCode{
		MatchID:   "match-1",
		Phase:     models.OTCPhaseDelivery,
		Code:      "654321",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(inTransit, nil)
	m.otcRepo.EXPECT().GetLatest(gomock.Any(), "match-1", models.OTCPhaseDelivery).Return(code, nil)
	m.repo.EXPECT().TransitionStatus(gomock.Any(), "match-1",
		models.MatchStatusPickupConfirmed, models.MatchStatusCompleted, gomock.Any()).Return(true, nil)
	m.otcRepo.EXPECT().Consume(gomock.Any(), "match-1", models.OTCPhaseDelivery).Return(nil)
	m.repo.EXPECT().UpdateRequestStatus(gomock.Any(), "req-1", models.RequestStatusDelivered).Return(nil)
	m.repo.EXPECT().UpdateTripStatus(gomock.Any(), "trip-1", models.TripStatusCompleted).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishMatchEvent(gomock.Any(), constants.SubjectMatchDelivered, gomock.Any()).Return(nil)
	m.billing.EXPECT().ReleaseEscrow(gomock.Any(), "match-1").Return(errors.New("billing down"))

	// Act
	completed, err := uc.ConfirmDelivery(context.Background(), "match-1", "654321", "traveler-1")

	// Assert: the confirmation stands, the release is retried out of band
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCompleted, completed.Status)
}

func TestRequestCode_PickupRequiresPayment(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(acceptedMatch(), nil)
	m.billing.EXPECT().HasPaidPayment(gomock.Any(), "match-1").Return(false, nil)

	// Act
	resp, err := uc.RequestCode(context.Background(), "match-1", models.OTCPhasePickup, "traveler-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrPaymentRequired)
	assert.Nil(t, resp)
}

func TestRequestCode_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(acceptedMatch(), nil)
	m.billing.EXPECT().HasPaidPayment(gomock.Any(), "match-1").Return(true, nil)
	m.otcRepo.EXPECT().IssueCode(gomock.Any(), gomock.Any(), 5*time.Minute).DoAndReturn(
		func(_ context.Context, otc *models.OneTimeCode, _ time.Duration) error {
			assert.Equal(t, "match-1", otc.MatchID)
			assert.Equal(t, models.OTCPhasePickup, otc.Phase)
			assert.Len(t, otc.Code, 6)
			assert.True(t, otc.ExpiresAt.After(otc.IssuedAt))
			return nil
		})
	m.repo.EXPECT().GetUserInfo(gomock.Any(), "traveler-1").
		Return(&models.UserInfo{ID: "traveler-1", FullName: "Ada Obi"}, nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Notification) error {
			// The code goes to the business, who hands it over in person
			assert.Equal(t, "business-1", n.UserID)
			assert.Equal(t, "otc_issued", n.Type)
			assert.Contains(t, n.Body, "Ada Obi")
			return nil
		})

	// Act
	resp, err := uc.RequestCode(context.Background(), "match-1", models.OTCPhasePickup, "traveler-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Code sent successfully", resp.Message)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
}

func TestRequestCode_CooldownSurfaces(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetMatch(gomock.Any(), "match-1").Return(acceptedMatch(), nil)
	m.otcRepo.EXPECT().IssueCode(gomock.Any(), gomock.Any(), 5*time.Minute).
		Return(&match.CooldownError{RemainingMinutes: 3})

	// Act
	resp, err := uc.RequestCode(context.Background(), "match-1", models.OTCPhaseDelivery, "traveler-1")

	// Assert
	assert.True(t, match.IsCooldown(err))
	assert.Nil(t, resp)
}

func TestRequestCode_InvalidPhase(t *testing.T) {
	// Arrange
	uc, _, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	// Act
	resp, err := uc.RequestCode(context.Background(), "match-1", models.OTCPhase("handover"), "traveler-1")

	// Assert
	assert.ErrorIs(t, err, match.ErrInvalidPhase)
	assert.Nil(t, resp)
}

func TestGetMatchDetail_OnlyParties(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	detail := &models.MatchDetail{Match: *pendingMatch()}
	m.repo.EXPECT().GetMatchDetail(gomock.Any(), "match-1").Return(detail, nil).Times(2)

	// Act + Assert
	got, err := uc.GetMatchDetail(context.Background(), "match-1", "business-1")
	require.NoError(t, err)
	assert.Equal(t, "match-1", got.ID)

	_, err = uc.GetMatchDetail(context.Background(), "match-1", "stranger")
	assert.ErrorIs(t, err, match.ErrNotAuthorized)
}

func TestListMatchesByTrip_OwnerOnly(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestMatchUC(t)
	defer ctrl.Finish()

	trip := &models.Trip{ID: "trip-1", TravelerID: "traveler-1"}
	m.repo.EXPECT().GetTrip(gomock.Any(), "trip-1").Return(trip, nil)

	// Act
	got, err := uc.ListMatchesByTrip(context.Background(), "trip-1", "someone-else")

	// Assert
	assert.ErrorIs(t, err, match.ErrNotAuthorized)
	assert.Nil(t, got)
}
