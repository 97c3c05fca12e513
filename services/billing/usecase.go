package billing

import (
	"context"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/movever/movever/services/billing BillingUC

// BillingUC defines the billing service business logic: payment
// initialization and capture, the escrow ledger, and wallet operations.
// It also satisfies the payment guard and escrow hook the match lifecycle
// depends on.
type BillingUC interface {
	// Payments
	InitializePayment(ctx context.Context, businessID, matchID, email string) (*models.PaymentInitResponse, error)
	VerifyPayment(ctx context.Context, reference string) (*models.Payment, error)
	HandleWebhook(ctx context.Context, signature string, body []byte) error

	// Escrow ledger
	HasPaidPayment(ctx context.Context, matchID string) (bool, error)
	ReleaseEscrow(ctx context.Context, matchID string) error

	// Wallet
	GetBalance(ctx context.Context, userID string) (*models.WalletAccount, error)
	RequestWithdrawal(ctx context.Context, userID string, amount float64, bank models.BankDetails) (*models.Withdrawal, error)
}
