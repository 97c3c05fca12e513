package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/movever/movever/internal/pkg/logger"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/match"
)

// RequestCode issues a one-time code for a match phase. Only a party to the
// match may request one; the pickup phase additionally requires a captured
// payment so the traveler cannot obtain proof-of-pickup authority before
// funds are secured. Issuance supersedes any earlier code for the phase and
// is rate-limited by the repository's cooldown.
func (uc *MatchUC) RequestCode(ctx context.Context, matchID string, phase models.OTCPhase, actorID string) (*models.OTCIssueResponse, error) {
	if !phase.Valid() {
		return nil, match.ErrInvalidPhase
	}

	m, err := uc.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.IsParty(actorID) {
		return nil, match.ErrNotAuthorized
	}

	if phase == models.OTCPhasePickup {
		paid, err := uc.billing.HasPaidPayment(ctx, matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to check payment: %w", err)
		}
		if !paid {
			return nil, match.ErrPaymentRequired
		}
	}

	code, err := generateCode(uc.cfg.OTC.CodeLength)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	otc := &models.OneTimeCode{
		MatchID:   matchID,
		Phase:     phase,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(uc.cfg.OTC.ExpiryMinutes) * time.Minute),
	}

	cooldown := time.Duration(uc.cfg.OTC.CooldownMinutes) * time.Minute
	if err := uc.otcRepo.IssueCode(ctx, otc, cooldown); err != nil {
		return nil, err
	}

	// The business holds the package, so the code goes to them; they hand
	// it to the traveler face to face.
	travelerName := "The traveler"
	if traveler, err := uc.repo.GetUserInfo(ctx, m.TravelerID); err == nil {
		travelerName = traveler.FullName
	}

	title := "Pickup Code Requested"
	body := fmt.Sprintf("%s is ready for pickup. Share this code with them: %s", travelerName, code)
	if phase == models.OTCPhaseDelivery {
		title = "Delivery Code Requested"
		body = fmt.Sprintf("%s is at the destination. Share this code to complete delivery: %s", travelerName, code)
	}

	uc.notify(ctx, m.BusinessID, "otc_issued", title, body, map[string]interface{}{
		"match_id":   matchID,
		"phase":      string(phase),
		"request_id": m.DeliveryRequestID,
	})

	return &models.OTCIssueResponse{
		Message:   "Code sent successfully",
		ExpiresAt: otc.ExpiresAt,
	}, nil
}

// validateCode accepts a presented code only when it matches the most
// recently issued, unexpired code for the phase. Stale superseded codes fail
// even when the digits coincide.
func (uc *MatchUC) validateCode(ctx context.Context, matchID string, phase models.OTCPhase, code string) error {
	rec, err := uc.otcRepo.GetLatest(ctx, matchID, phase)
	if err != nil {
		return fmt.Errorf("failed to load code: %w", err)
	}
	if rec == nil || rec.Code != code || time.Now().After(rec.ExpiresAt) {
		return match.ErrInvalidCode
	}
	return nil
}

// consumeCode deletes a code after successful confirmation so it cannot be
// replayed. Deletion failure is logged only: the code still dies by TTL.
func (uc *MatchUC) consumeCode(ctx context.Context, matchID string, phase models.OTCPhase) {
	if err := uc.otcRepo.Consume(ctx, matchID, phase); err != nil {
		logger.Warn("failed to consume code", logrus.Fields{
			"match_id": matchID,
			"phase":    string(phase),
			"error":    err.Error(),
		})
	}
}

// generateCode draws each digit from a uniform cryptographic source
func generateCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
