package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/logger"
	"github.com/movever/movever/services/billing"
)

// HasPaidPayment reports whether a captured payment exists for a match. The
// match lifecycle uses this as its payment-before-pickup guard.
func (uc *BillingUC) HasPaidPayment(ctx context.Context, matchID string) (bool, error) {
	return uc.repo.HasPaidPayment(ctx, matchID)
}

// ReleaseEscrow moves the traveler's earnings for a match from pending to
// available. The workflow already enforces payment-before-pickup, so a
// missing captured payment is logged and skipped rather than failed; the
// escrow_released_at stamp makes the release apply exactly once.
func (uc *BillingUC) ReleaseEscrow(ctx context.Context, matchID string) error {
	payment, err := uc.repo.GetPaidPaymentByMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, billing.ErrPaymentNotFound) {
			logger.Warn("no captured payment for match, skipping escrow release", logrus.Fields{
				"match_id": matchID,
			})
			return nil
		}
		return err
	}

	released, err := uc.repo.MarkEscrowReleased(ctx, payment.ID, time.Now())
	if err != nil {
		return err
	}
	if !released {
		logger.Info("escrow already released", logrus.Fields{
			"match_id":   matchID,
			"payment_id": payment.ID,
		})
		return nil
	}

	if err := uc.repo.ReleaseToAvailable(ctx, payment.TravelerID, payment.TravelerEarnings); err != nil {
		return err
	}

	uc.publishPaymentEvent(ctx, constants.SubjectEscrowReleased, payment)
	uc.notify(ctx, payment.TravelerID, "escrow_released", "Earnings Released",
		fmt.Sprintf("%.2f from your completed delivery is now available in your wallet.", payment.TravelerEarnings),
		map[string]interface{}{
			"match_id":   matchID,
			"payment_id": payment.ID,
		})

	return nil
}
