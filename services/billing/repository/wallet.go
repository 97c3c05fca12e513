package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/movever/movever/internal/pkg/models"
)

// GetWallet retrieves a traveler's wallet. Wallets are created lazily on the
// first credit, so an absent row reads as a zero-balance account.
func (r *BillingRepo) GetWallet(ctx context.Context, userID string) (*models.WalletAccount, error) {
	query := `
		SELECT user_id, balance, pending_balance, total_earned, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var w models.WalletAccount
	if err := r.db.GetContext(ctx, &w, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.WalletAccount{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &w, nil
}

// CreditPending adds escrowed earnings to the pending balance, creating the
// wallet on first use. The increment happens inside the statement so
// concurrent credits cannot lose updates.
func (r *BillingRepo) CreditPending(ctx context.Context, userID string, amount float64) error {
	query := `
		INSERT INTO wallets (user_id, balance, pending_balance, total_earned, updated_at)
		VALUES ($1, 0, $2, 0, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET pending_balance = wallets.pending_balance + EXCLUDED.pending_balance,
			updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, userID, amount); err != nil {
		return fmt.Errorf("failed to credit pending balance: %w", err)
	}

	return nil
}

// ReleaseToAvailable moves escrowed earnings from pending to available and
// adds them to lifetime earned, as one statement.
func (r *BillingRepo) ReleaseToAvailable(ctx context.Context, userID string, amount float64) error {
	query := `
		UPDATE wallets
		SET pending_balance = pending_balance - $2,
			balance = balance + $2,
			total_earned = total_earned + $2,
			updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to release escrow to wallet: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("wallet not found for user %s", userID)
	}

	return nil
}

// DebitAvailable decrements the available balance only when the wallet holds
// enough funds; the balance check and the write are one statement so
// concurrent withdrawals cannot overdraw.
func (r *BillingRepo) DebitAvailable(ctx context.Context, userID string, amount float64) (bool, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
	`

	res, err := r.db.ExecContext(ctx, query, userID, amount)
	if err != nil {
		return false, fmt.Errorf("failed to debit wallet: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows > 0, nil
}

// CreateWithdrawal inserts a pending withdrawal request
func (r *BillingRepo) CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (id, user_id, amount, bank_name, account_number, status, created_at)
		VALUES (:id, :user_id, :amount, :bank_name, :account_number, :status, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, withdrawal); err != nil {
		return fmt.Errorf("failed to create withdrawal: %w", err)
	}

	return nil
}
