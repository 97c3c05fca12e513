package usecase

import (
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/billing"
)

// BillingUC implements the billing.BillingUC interface
type BillingUC struct {
	cfg       *models.Config
	repo      billing.BillingRepo
	paymentGW billing.PaymentGW
	gw        billing.BillingGW
}

// NewBillingUC creates a new billing use case
func NewBillingUC(
	cfg *models.Config,
	repo billing.BillingRepo,
	paymentGW billing.PaymentGW,
	gw billing.BillingGW,
) *BillingUC {
	return &BillingUC{
		cfg:       cfg,
		repo:      repo,
		paymentGW: paymentGW,
		gw:        gw,
	}
}
