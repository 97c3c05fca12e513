package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/logger"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/billing"
)

const mockReferencePrefix = "MOCK_"

// InitializePayment raises a pending payment for a match from the delivery
// request's estimated cost and opens a gateway checkout. The commission
// split is fixed at creation so the escrow amounts never drift from what
// the business was charged.
func (uc *BillingUC) InitializePayment(ctx context.Context, businessID, matchID, email string) (*models.PaymentInitResponse, error) {
	m, err := uc.repo.GetMatchForBilling(ctx, matchID)
	if err != nil {
		return nil, err
	}

	cost, err := uc.repo.GetRequestCost(ctx, m.DeliveryRequestID)
	if err != nil {
		return nil, err
	}
	if cost <= 0 {
		return nil, billing.ErrInvalidAmount
	}

	commission := cost * uc.cfg.Payment.CommissionRate
	earnings := cost - commission

	var initResp *models.PaymentInitResponse
	if uc.cfg.Payment.MockMode {
		initResp = &models.PaymentInitResponse{
			AuthorizationURL: "https://standard.paystack.co/close",
			AccessCode:       "mock_code",
			Reference:        fmt.Sprintf("%s%d", mockReferencePrefix, time.Now().UnixNano()),
		}
	} else {
		// the gateway charges in kobo
		amountKobo := int64(math.Round(cost * 100))
		initResp, err = uc.paymentGW.Initialize(ctx, email, amountKobo, map[string]interface{}{
			"match_id":    matchID,
			"business_id": businessID,
			"traveler_id": m.TravelerID,
		})
		if err != nil {
			return nil, err
		}
	}

	payment := &models.Payment{
		ID:               uuid.New().String(),
		MatchID:          matchID,
		BusinessID:       businessID,
		TravelerID:       m.TravelerID,
		Amount:           cost,
		Commission:       commission,
		TravelerEarnings: earnings,
		PaymentReference: initResp.Reference,
		Status:           models.PaymentStatusPending,
		CreatedAt:        time.Now(),
	}

	if err := uc.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	return initResp, nil
}

// VerifyPayment checks the charge status with the gateway and, on success,
// captures the payment. It converges on the same capture path as the
// webhook, so whichever arrives first wins and the other is a no-op.
func (uc *BillingUC) VerifyPayment(ctx context.Context, reference string) (*models.Payment, error) {
	var success bool
	if uc.cfg.Payment.MockMode && strings.HasPrefix(reference, mockReferencePrefix) {
		success = true
	} else {
		var err error
		success, err = uc.paymentGW.Verify(ctx, reference)
		if err != nil {
			return nil, err
		}
	}

	if !success {
		return nil, billing.ErrPaymentNotPaid
	}

	if err := uc.handlePaymentCaptured(ctx, reference); err != nil {
		return nil, err
	}

	return uc.repo.GetPaymentByReference(ctx, reference)
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
	} `json:"data"`
}

// HandleWebhook authenticates a gateway webhook delivery and captures the
// referenced payment on charge success. Other event types are ignored.
func (uc *BillingUC) HandleWebhook(ctx context.Context, signature string, body []byte) error {
	if !uc.paymentGW.VerifySignature(signature, body) {
		return billing.ErrInvalidSignature
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	if event.Event != "charge.success" {
		logger.Debug("ignoring webhook event", logrus.Fields{"event": event.Event})
		return nil
	}

	return uc.handlePaymentCaptured(ctx, event.Data.Reference)
}

// handlePaymentCaptured transitions the payment to paid and credits the
// traveler's pending balance. The compare-and-set on the payment status
// makes a redelivered webhook a no-op: the escrow credit happens exactly
// once per payment.
func (uc *BillingUC) handlePaymentCaptured(ctx context.Context, reference string) error {
	payment, err := uc.repo.GetPaymentByReference(ctx, reference)
	if err != nil {
		return err
	}

	captured, err := uc.repo.MarkPaid(ctx, reference, time.Now())
	if err != nil {
		return err
	}
	if !captured {
		logger.Info("payment already captured, skipping", logrus.Fields{
			"reference": reference,
			"match_id":  payment.MatchID,
		})
		return nil
	}

	if err := uc.repo.CreditPending(ctx, payment.TravelerID, payment.TravelerEarnings); err != nil {
		return err
	}

	uc.publishPaymentEvent(ctx, constants.SubjectPaymentCaptured, payment)
	uc.notify(ctx, payment.TravelerID, "payment_secured", "Payment Secured",
		fmt.Sprintf("The business has paid for the delivery. %.2f is held in escrow until you confirm delivery.", payment.TravelerEarnings),
		map[string]interface{}{
			"match_id":   payment.MatchID,
			"payment_id": payment.ID,
		})

	return nil
}

// notify dispatches a notification best-effort
func (uc *BillingUC) notify(ctx context.Context, userID, notifType, title, body string, data map[string]interface{}) {
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

// publishPaymentEvent emits a payment event best-effort
func (uc *BillingUC) publishPaymentEvent(ctx context.Context, subject string, payment *models.Payment) {
	event := models.PaymentEvent{
		PaymentID: payment.ID,
		MatchID:   payment.MatchID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
		Timestamp: time.Now(),
	}
	if err := uc.gw.PublishPaymentEvent(ctx, subject, event); err != nil {
		logger.Warn("payment event publish failed", logrus.Fields{
			"subject":    subject,
			"payment_id": payment.ID,
			"error":      err.Error(),
		})
	}
}
