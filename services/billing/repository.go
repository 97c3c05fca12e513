package billing

import (
	"context"
	"time"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/movever/movever/services/billing BillingRepo

// BillingRepo defines the data access operations of the billing service.
// The MarkPaid and MarkEscrowReleased writes are compare-and-set so webhook
// redelivery and replayed confirmations apply at most once; the wallet
// writes are single-statement read-modify-writes so concurrent completions
// cannot lose updates.
type BillingRepo interface {
	// Payments
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByReference(ctx context.Context, reference string) (*models.Payment, error)
	GetPaidPaymentByMatch(ctx context.Context, matchID string) (*models.Payment, error)
	HasPaidPayment(ctx context.Context, matchID string) (bool, error)
	// MarkPaid transitions a payment from pending to paid; false means it
	// was not pending (already captured or unknown reference).
	MarkPaid(ctx context.Context, reference string, paidAt time.Time) (bool, error)
	// MarkEscrowReleased stamps escrow_released_at once; false means a
	// release already happened.
	MarkEscrowReleased(ctx context.Context, paymentID string, releasedAt time.Time) (bool, error)

	// Wallets
	GetWallet(ctx context.Context, userID string) (*models.WalletAccount, error)
	CreditPending(ctx context.Context, userID string, amount float64) error
	ReleaseToAvailable(ctx context.Context, userID string, amount float64) error
	// DebitAvailable decrements the available balance only when sufficient
	// funds exist; false means insufficient balance.
	DebitAvailable(ctx context.Context, userID string, amount float64) (bool, error)
	CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error

	// Pricing inputs
	GetMatchForBilling(ctx context.Context, matchID string) (*models.Match, error)
	GetRequestCost(ctx context.Context, requestID string) (float64, error)
}
