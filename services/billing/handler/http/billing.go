package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/movever/movever/internal/pkg/middleware"
	"github.com/movever/movever/internal/pkg/models"
	"github.com/movever/movever/internal/utils"
	"github.com/movever/movever/services/billing"
)

// BillingHandler handles HTTP requests for payments and wallet operations
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing HTTP handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{
		billingUC: billingUC,
	}
}

type initializeRequest struct {
	MatchID string `json:"match_id"`
	Email   string `json:"email"`
}

type withdrawRequest struct {
	Amount        float64 `json:"amount"`
	BankName      string  `json:"bank_name"`
	AccountNumber string  `json:"account_number"`
}

// InitializePayment opens a gateway checkout for a match
func (h *BillingHandler) InitializePayment(c echo.Context) error {
	var req initializeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.MatchID == "" || req.Email == "" {
		return utils.BadRequestResponse(c, "match_id and email are required")
	}

	resp, err := h.billingUC.InitializePayment(c.Request().Context(), middleware.UserIDFromContext(c), req.MatchID, req.Email)
	if err != nil {
		return writeBillingError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment initialized", resp)
}

// VerifyPayment checks a charge by reference and captures it on success
func (h *BillingHandler) VerifyPayment(c echo.Context) error {
	reference := c.QueryParam("reference")
	if reference == "" {
		return utils.BadRequestResponse(c, "reference is required")
	}

	payment, err := h.billingUC.VerifyPayment(c.Request().Context(), reference)
	if err != nil {
		return writeBillingError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment verified", payment)
}

// Webhook receives signed gateway deliveries. The signature covers the raw
// body, so the body is read before any decoding.
func (h *BillingHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read webhook body")
	}

	signature := c.Request().Header.Get("x-paystack-signature")
	if err := h.billingUC.HandleWebhook(c.Request().Context(), signature, body); err != nil {
		return writeBillingError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// GetBalance returns the caller's wallet
func (h *BillingHandler) GetBalance(c echo.Context) error {
	wallet, err := h.billingUC.GetBalance(c.Request().Context(), middleware.UserIDFromContext(c))
	if err != nil {
		return writeBillingError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Wallet retrieved", wallet)
}

// RequestWithdrawal moves available funds into a pending withdrawal
func (h *BillingHandler) RequestWithdrawal(c echo.Context) error {
	var req withdrawRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.BankName == "" || req.AccountNumber == "" {
		return utils.BadRequestResponse(c, "bank_name and account_number are required")
	}

	withdrawal, err := h.billingUC.RequestWithdrawal(c.Request().Context(), middleware.UserIDFromContext(c), req.Amount, models.BankDetails{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		return writeBillingError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Withdrawal requested", withdrawal)
}

// writeBillingError maps domain errors to HTTP statuses
func writeBillingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, billing.ErrPaymentNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, billing.ErrInvalidAmount):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, billing.ErrInsufficientBalance):
		return utils.ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, billing.ErrPaymentNotPaid):
		return utils.ErrorResponseHandler(c, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, billing.ErrInvalidSignature):
		return utils.UnauthorizedResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
