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
	"github.com/movever/movever/services/billing"
)

func paidPayment() *models.Payment {
	now := time.Now()
	return &models.Payment{
		ID:               "payment-1",
		MatchID:          "match-1",
		BusinessID:       "business-1",
		TravelerID:       "traveler-1",
		Amount:           5000,
		Commission:       250,
		TravelerEarnings: 4750,
		PaymentReference: "ref-1",
		Status:           models.PaymentStatusPaid,
		PaidAt:           &now,
		CreatedAt:        now,
	}
}

func TestReleaseEscrow_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	m.repo.EXPECT().GetPaidPaymentByMatch(gomock.Any(), "match-1").Return(paidPayment(), nil)
	m.repo.EXPECT().MarkEscrowReleased(gomock.Any(), "payment-1", gomock.Any()).Return(true, nil)
	m.repo.EXPECT().ReleaseToAvailable(gomock.Any(), "traveler-1", 4750.0).Return(nil)
	m.gw.EXPECT().PublishPaymentEvent(gomock.Any(), constants.SubjectEscrowReleased, gomock.Any()).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Notification) error {
			assert.Equal(t, "traveler-1", n.UserID)
			assert.Equal(t, "escrow_released", n.Type)
			return nil
		})

	// Act
	err := uc.ReleaseEscrow(context.Background(), "match-1")

	// Assert
	require.NoError(t, err)
}

func TestReleaseEscrow_AlreadyReleased(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	m.repo.EXPECT().GetPaidPaymentByMatch(gomock.Any(), "match-1").Return(paidPayment(), nil)
	m.repo.EXPECT().MarkEscrowReleased(gomock.Any(), "payment-1", gomock.Any()).Return(false, nil)

	// Act: a second release must not move funds again
	err := uc.ReleaseEscrow(context.Background(), "match-1")

	// Assert
	require.NoError(t, err)
}

func TestReleaseEscrow_NoCapturedPayment(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	m.repo.EXPECT().GetPaidPaymentByMatch(gomock.Any(), "match-1").Return(nil, billing.ErrPaymentNotFound)

	// Act: skipped, not failed; the confirmation path already logged it
	err := uc.ReleaseEscrow(context.Background(), "match-1")

	// Assert
	require.NoError(t, err)
}

func TestReleaseEscrow_RepoError(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	m.repo.EXPECT().GetPaidPaymentByMatch(gomock.Any(), "match-1").Return(nil, errors.New("db down"))

	// Act
	err := uc.ReleaseEscrow(context.Background(), "match-1")

	// Assert
	assert.Error(t, err)
}

func TestHasPaidPayment_Passthrough(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	m.repo.EXPECT().HasPaidPayment(gomock.Any(), "match-1").Return(true, nil)

	// Act
	paid, err := uc.HasPaidPayment(context.Background(), "match-1")

	// Assert
	require.NoError(t, err)
	assert.True(t, paid)
}
