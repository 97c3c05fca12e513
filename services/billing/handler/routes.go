package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/movever/movever/internal/pkg/middleware"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/services/billing"
	httpHandler "github.com/movever/movever/services/billing/handler/http"
)

// Handler combines the handlers for the billing service
type Handler struct {
	billingHTTP *httpHandler.BillingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(billingUC billing.BillingUC, cfg *models.Config) *Handler {
	return &Handler{
		billingHTTP: httpHandler.NewBillingHandler(billingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the billing service. The
// webhook stays outside the JWT group: the gateway authenticates itself
// with the body signature instead.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	payments := e.Group("/payments")
	payments.POST("/webhook", h.billingHTTP.Webhook)
	payments.POST("/initialize", h.billingHTTP.InitializePayment, auth)
	payments.GET("/verify", h.billingHTTP.VerifyPayment, auth)

	wallet := e.Group("/wallet", auth)
	wallet.GET("", h.billingHTTP.GetBalance)
	wallet.POST("/withdraw", h.billingHTTP.RequestWithdrawal)
}
