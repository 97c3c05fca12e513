package gateway

import (
	"context"

	"github.com/movever/movever/internal/pkg/constants"
	"github.com/movever/movever/internal/pkg/models"
	natspkg "github.com/movever/movever/internal/pkg/nats"
	"github.com/movever/movever/services/billing"
)

// billingGW publishes billing side effects to NATS
type billingGW struct {
	natsClient *natspkg.Client
}

// NewBillingGW creates a new NATS gateway instance
func NewBillingGW(client *natspkg.Client) billing.BillingGW {
	return &billingGW{
		natsClient: client,
	}
}

// Notify publishes a notification for the external dispatcher
func (g *billingGW) Notify(ctx context.Context, notification models.Notification) error {
	return g.natsClient.PublishJSON(constants.SubjectNotificationPush, notification)
}

// PublishPaymentEvent publishes a payment lifecycle event
func (g *billingGW) PublishPaymentEvent(ctx context.Context, subject string, event models.PaymentEvent) error {
	return g.natsClient.PublishJSON(subject, event)
}
