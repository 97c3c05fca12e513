package billing

import (
	"context"

	"github.com/movever/movever/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/movever/movever/services/billing PaymentGW,BillingGW

// PaymentGW is the external payment gateway: initialize a charge, verify a
// charge by reference, and authenticate webhook deliveries.
type PaymentGW interface {
	// Initialize starts a checkout; amountKobo is the charge in the
	// gateway's minor unit.
	Initialize(ctx context.Context, email string, amountKobo int64, metadata map[string]interface{}) (*models.PaymentInitResponse, error)
	// Verify reports whether the charge behind the reference succeeded
	Verify(ctx context.Context, reference string) (bool, error)
	// VerifySignature authenticates a webhook body against its signature
	VerifySignature(signature string, body []byte) bool
}

// BillingGW publishes billing side effects. Best-effort: the usecase logs
// failures and never fails the payment operation over them.
type BillingGW interface {
	Notify(ctx context.Context, notification models.Notification) error
	PublishPaymentEvent(ctx context.Context, subject string, event models.PaymentEvent) error
}
