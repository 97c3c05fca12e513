package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/billing"
)

// GetBalance returns a user's wallet; absent wallets read as zero balances
func (uc *BillingUC) GetBalance(ctx context.Context, userID string) (*models.WalletAccount, error) {
	return uc.repo.GetWallet(ctx, userID)
}

// RequestWithdrawal debits the available balance and records a pending
// withdrawal. The conditional debit guards against overdraw under
// concurrent requests.
func (uc *BillingUC) RequestWithdrawal(ctx context.Context, userID string, amount float64, bank models.BankDetails) (*models.Withdrawal, error) {
	if amount <= 0 {
		return nil, billing.ErrInvalidAmount
	}

	debited, err := uc.repo.DebitAvailable(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	if !debited {
		return nil, billing.ErrInsufficientBalance
	}

	withdrawal := &models.Withdrawal{
		ID:            uuid.New().String(),
		UserID:        userID,
		Amount:        amount,
		BankName:      bank.BankName,
		AccountNumber: bank.AccountNumber,
		Status:        models.WithdrawalStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := uc.repo.CreateWithdrawal(ctx, withdrawal); err != nil {
		return nil, fmt.Errorf("wallet debited but withdrawal record failed: %w", err)
	}

	return withdrawal, nil
}
