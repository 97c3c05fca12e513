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
	"github.com/movever/movever/services/billing/mocks"
)

type billingUCMocks struct {
	repo      *mocks.MockBillingRepo
	paymentGW *mocks.MockPaymentGW
	gw        *mocks.MockBillingGW
}

func newTestBillingUC(t *testing.T, mockMode bool) (*BillingUC, billingUCMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := billingUCMocks{
		repo:      mocks.NewMockBillingRepo(ctrl),
		paymentGW: mocks.NewMockPaymentGW(ctrl),
		gw:        mocks.NewMockBillingGW(ctrl),
	}

	cfg := &models.Config{
		Payment: models.PaymentConfig{
			CommissionRate: 0.05,
			MockMode:       mockMode,
		},
	}

	uc := NewBillingUC(cfg, m.repo, m.paymentGW, m.gw)
	return uc, m, ctrl
}

func pendingPayment() *models.Payment {
	return &models.Payment{
		ID:               "payment-1",
		MatchID:          "match-1",
		BusinessID:       "business-1",
		TravelerID:       "traveler-1",
		Amount:           5000,
		Commission:       250,
		TravelerEarnings: 4750,
		PaymentReference: "ref-1",
		Status:           models.PaymentStatusPending,
		CreatedAt:        time.Now(),
	}
}

func TestInitializePayment_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	match := &models.Match{
		ID:                "match-1",
		DeliveryRequestID: "req-1",
		TravelerID:        "traveler-1",
		BusinessID:        "business-1",
		Status:            models.MatchStatusAccepted,
	}

	m.repo.EXPECT().GetMatchForBilling(gomock.Any(), "match-1").Return(match, nil)
	m.repo.EXPECT().GetRequestCost(gomock.Any(), "req-1").Return(5000.0, nil)
	m.paymentGW.EXPECT().Initialize(gomock.Any(), "biz@example.com", int64(500000), gomock.Any()).
		Return(&models.PaymentInitResponse{
			AuthorizationURL: "https://checkout.paystack.com/abc",
			AccessCode:       "abc",
			Reference:        "ref-1",
		}, nil)
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Payment) error {
			assert.Equal(t, models.PaymentStatusPending, p.Status)
			assert.InDelta(t, 5000, p.Amount, 0.0001)
			assert.InDelta(t, 250, p.Commission, 0.0001)
			assert.InDelta(t, 4750, p.TravelerEarnings, 0.0001)
			assert.Equal(t, "ref-1", p.PaymentReference)
			assert.Equal(t, "traveler-1", p.TravelerID)
			return nil
		})

	// Act
	resp, err := uc.InitializePayment(context.Background(), "business-1", "match-1", "biz@example.com")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ref-1", resp.Reference)
}

func TestInitializePayment_MockMode(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, true)
	defer ctrl.Finish()

	match := &models.Match{ID: "match-1", DeliveryRequestID: "req-1", TravelerID: "traveler-1"}

	m.repo.EXPECT().GetMatchForBilling(gomock.Any(), "match-1").Return(match, nil)
	m.repo.EXPECT().GetRequestCost(gomock.Any(), "req-1").Return(5000.0, nil)
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)

	// Act: no gateway round trip in mock mode
	resp, err := uc.InitializePayment(context.Background(), "business-1", "match-1", "biz@example.com")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, resp.Reference, "MOCK_")
}

func TestInitializePayment_ZeroCost(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	match := &models.Match{ID: "match-1", DeliveryRequestID: "req-1"}
	m.repo.EXPECT().GetMatchForBilling(gomock.Any(), "match-1").Return(match, nil)
	m.repo.EXPECT().GetRequestCost(gomock.Any(), "req-1").Return(0.0, nil)

	// Act
	resp, err := uc.InitializePayment(context.Background(), "business-1", "match-1", "biz@example.com")

	// Assert
	assert.ErrorIs(t, err, billing.ErrInvalidAmount)
	assert.Nil(t, resp)
}

func TestHandleWebhook_CapturesOnce(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1"}}`)

	m.paymentGW.EXPECT().VerifySignature("sig", body).Return(true)
	m.repo.EXPECT().GetPaymentByReference(gomock.Any(), "ref-1").Return(pendingPayment(), nil)
	m.repo.EXPECT().MarkPaid(gomock.Any(), "ref-1", gomock.Any()).Return(true, nil)
	m.repo.EXPECT().CreditPending(gomock.Any(), "traveler-1", 4750.0).Return(nil)
	m.gw.EXPECT().PublishPaymentEvent(gomock.Any(), constants.SubjectPaymentCaptured, gomock.Any()).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n models.Notification) error {
			assert.Equal(t, "traveler-1", n.UserID)
			assert.Equal(t, "payment_secured", n.Type)
			return nil
		})

	// Act
	err := uc.HandleWebhook(context.Background(), "sig", body)

	// Assert
	require.NoError(t, err)
}

func TestHandleWebhook_RedeliveryIsNoOp(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1"}}`)

	paid := pendingPayment()
	paid.Status = models.PaymentStatusPaid

	m.paymentGW.EXPECT().VerifySignature("sig", body).Return(true)
	m.repo.EXPECT().GetPaymentByReference(gomock.Any(), "ref-1").Return(paid, nil)
	m.repo.EXPECT().MarkPaid(gomock.Any(), "ref-1", gomock.Any()).Return(false, nil)

	// Act: the lost compare-and-set must not credit the wallet again
	err := uc.HandleWebhook(context.Background(), "sig", body)

	// Assert
	require.NoError(t, err)
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1"}}`)
	m.paymentGW.EXPECT().VerifySignature("bad", body).Return(false)

	// Act
	err := uc.HandleWebhook(context.Background(), "bad", body)

	// Assert
	assert.ErrorIs(t, err, billing.ErrInvalidSignature)
}

func TestHandleWebhook_IgnoresOtherEvents(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	body := []byte(`{"event":"transfer.success","data":{"reference":"ref-1"}}`)
	m.paymentGW.EXPECT().VerifySignature("sig", body).Return(true)

	// Act
	err := uc.HandleWebhook(context.Background(), "sig", body)

	// Assert
	require.NoError(t, err)
}

func TestVerifyPayment_ChargeNotSuccessful(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	m.paymentGW.EXPECT().Verify(gomock.Any(), "ref-1").Return(false, nil)

	// Act
	payment, err := uc.VerifyPayment(context.Background(), "ref-1")

	// Assert
	assert.ErrorIs(t, err, billing.ErrPaymentNotPaid)
	assert.Nil(t, payment)
}

func TestVerifyPayment_Success(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	paid := pendingPayment()
	paid.Status = models.PaymentStatusPaid

	m.paymentGW.EXPECT().Verify(gomock.Any(), "ref-1").Return(true, nil)
	m.repo.EXPECT().GetPaymentByReference(gomock.Any(), "ref-1").Return(pendingPayment(), nil)
	m.repo.EXPECT().MarkPaid(gomock.Any(), "ref-1", gomock.Any()).Return(true, nil)
	m.repo.EXPECT().CreditPending(gomock.Any(), "traveler-1", 4750.0).Return(nil)
	m.gw.EXPECT().PublishPaymentEvent(gomock.Any(), constants.SubjectPaymentCaptured, gomock.Any()).Return(nil)
	m.gw.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().GetPaymentByReference(gomock.Any(), "ref-1").Return(paid, nil)

	// Act
	payment, err := uc.VerifyPayment(context.Background(), "ref-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}

func TestVerifyPayment_GatewayError(t *testing.T) {
	// Arrange
	uc, m, ctrl := newTestBillingUC(t, false)
	defer ctrl.Finish()

	m.paymentGW.EXPECT().Verify(gomock.Any(), "ref-1").Return(false, errors.New("gateway timeout"))

	// Act
	payment, err := uc.VerifyPayment(context.Background(), "ref-1")

	// Assert
	assert.Error(t, err)
	assert.Nil(t, payment)
}
