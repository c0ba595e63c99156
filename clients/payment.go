package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// InitializePaymentRequest is the payload for starting a hosted payment.
type InitializePaymentRequest struct {
	ReservationID string  `json:"reservationId"`
	Amount        float64 `json:"amount"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail,omitempty"`
	CustomerPhone string  `json:"customerPhone"`
}

// PaymentGateway initializes a payment and returns the hosted payment page URL
// the customer is redirected to. Implementations: the agency's own gateway
// endpoint and Stripe Checkout.
type PaymentGateway interface {
	InitializePayment(ctx context.Context, req InitializePaymentRequest) (string, error)
}

// AgencyPaymentGateway calls the travel agency's payment-initialize endpoint.
type AgencyPaymentGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAgencyPaymentGateway creates a gateway client for the agency's payment API.
func NewAgencyPaymentGateway(baseURL string, timeout time.Duration, logger *zap.Logger) *AgencyPaymentGateway {
	return &AgencyPaymentGateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// InitializePayment posts to /payment/initialize and returns the payment page URL.
func (g *AgencyPaymentGateway) InitializePayment(ctx context.Context, request InitializePaymentRequest) (string, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInvalidResponse, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payment/initialize", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("payment: initialize request failed",
			zap.String("reservationId", request.ReservationID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var upstream struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		message := string(raw)
		if err := json.Unmarshal(raw, &upstream); err == nil && upstream.Message != "" {
			message = upstream.Message
		}
		return "", &APIError{StatusCode: resp.StatusCode, Code: upstream.Code, Message: message}
	}

	var result struct {
		PaymentPageURL string `json:"paymentPageUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if result.PaymentPageURL == "" {
		return "", fmt.Errorf("%w: gateway returned no payment page URL", ErrInvalidResponse)
	}
	return result.PaymentPageURL, nil
}
