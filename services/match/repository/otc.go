package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/match"
)

// OTCRepo stores one-time codes in a keyed TTL store. The code key is
// last-write-wins, so issuing supersedes any earlier code for the same
// (match, phase); the cooldown key is SETNX so the cooldown check and the
// issuance claim are one atomic step.
type OTCRepo struct {
	cfg   *models.Config
	store match.KeyedStore
}

// NewOTCRepository creates a new one-time-code repository
func NewOTCRepository(cfg *models.Config, store match.KeyedStore) *OTCRepo {
	return &OTCRepo{
		cfg:   cfg,
		store: store,
	}
}

// IssueCode claims the cooldown slot and stores the code under the phase key
// with the expiry as its TTL. When the cooldown is still held, it returns a
// CooldownError carrying the remaining wait rounded up to whole minutes.
func (r *OTCRepo) IssueCode(ctx context.Context, otc *models.OneTimeCode, cooldown time.Duration) error {
	cooldownKey := fmt.Sprintf(constants.KeyOTCCooldown, otc.MatchID, otc.Phase)

	claimed, err := r.store.SetNX(ctx, cooldownKey, otc.IssuedAt.Format(time.RFC3339), cooldown)
	if err != nil {
		return fmt.Errorf("failed to check code cooldown: %w", err)
	}
	if !claimed {
		remaining, err := r.store.TTL(ctx, cooldownKey)
		if err != nil || remaining <= 0 {
			remaining = cooldown
		}
		minutes := int(math.Ceil(remaining.Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		return &match.CooldownError{RemainingMinutes: minutes}
	}

	payload, err := json.Marshal(otc)
	if err != nil {
		return fmt.Errorf("failed to encode code: %w", err)
	}

	codeKey := fmt.Sprintf(constants.KeyOTCCode, otc.MatchID, otc.Phase)
	if err := r.store.Set(ctx, codeKey, payload, time.Until(otc.ExpiresAt)); err != nil {
		// give the cooldown slot back so the caller can retry
		_ = r.store.Delete(ctx, cooldownKey)
		return fmt.Errorf("failed to store code: %w", err)
	}

	return nil
}

// GetLatest returns the current code for a (match, phase), or nil when no
// unexpired code exists. Expired codes disappear by TTL, so absence covers
// both never-issued and expired.
func (r *OTCRepo) GetLatest(ctx context.Context, matchID string, phase models.OTCPhase) (*models.OneTimeCode, error) {
	codeKey := fmt.Sprintf(constants.KeyOTCCode, matchID, phase)

	raw, err := r.store.Get(ctx, codeKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get code: %w", err)
	}

	var otc models.OneTimeCode
	if err := json.Unmarshal([]byte(raw), &otc); err != nil {
		return nil, fmt.Errorf("failed to decode code: %w", err)
	}

	return &otc, nil
}

// Consume deletes the current code for a (match, phase) so it cannot be replayed
func (r *OTCRepo) Consume(ctx context.Context, matchID string, phase models.OTCPhase) error {
	codeKey := fmt.Sprintf(constants.KeyOTCCode, matchID, phase)

	if err := r.store.Delete(ctx, codeKey); err != nil {
		return fmt.Errorf("failed to consume code: %w", err)
	}

	return nil
}
