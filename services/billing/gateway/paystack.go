package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/movever/movever/internal/pkg/models"
)

// PaystackGW talks to the Paystack transaction API. Amounts are in kobo and
// webhook deliveries carry an HMAC-SHA512 signature over the raw body.
type PaystackGW struct {
	cfg        models.PaymentConfig
	httpClient *http.Client
}

// NewPaystackGW creates a new Paystack gateway client
func NewPaystackGW(cfg models.PaymentConfig) *PaystackGW {
	return &PaystackGW{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type initializeRequest struct {
	Email    string                 `json:"email"`
	Amount   int64                  `json:"amount"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool                       `json:"status"`
	Message string                     `json:"message"`
	Data    models.PaymentInitResponse `json:"data"`
}

type verifyResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Status          string `json:"status"`
		Reference       string `json:"reference"`
		GatewayResponse string `json:"gateway_response"`
	} `json:"data"`
}

// Initialize starts a checkout and returns the authorization handle
func (g *PaystackGW) Initialize(ctx context.Context, email string, amountKobo int64, metadata map[string]interface{}) (*models.PaymentInitResponse, error) {
	payload, err := json.Marshal(initializeRequest{
		Email:    email,
		Amount:   amountKobo,
		Metadata: metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode initialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.GatewayURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build initialize request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment initialization failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read initialize response: %w", err)
	}

	var parsed initializeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode initialize response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !parsed.Status {
		return nil, fmt.Errorf("payment initialization rejected: %s", parsed.Message)
	}

	return &parsed.Data, nil
}

// Verify reports whether the charge behind the reference succeeded
func (g *PaystackGW) Verify(ctx context.Context, reference string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.cfg.GatewayURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("payment verification failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read verify response: %w", err)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return false, fmt.Errorf("failed to decode verify response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !parsed.Status {
		return false, fmt.Errorf("payment verification rejected for reference %s", reference)
	}

	return parsed.Data.Status == "success", nil
}

// VerifySignature authenticates a webhook body against its
// x-paystack-signature header.
func (g *PaystackGW) VerifySignature(signature string, body []byte) bool {
	mac := hmac.New(sha512.New, []byte(g.cfg.SecretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
