package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vkvijay314/cloud-cart-backend/config"
)

// ErrGatewayUnavailable covers transport errors, auth failures and any
// non-2xx answer from Razorpay. The caller surfaces it as a 5xx and may
// retry the whole create-order step; this client never retries itself.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Order is the gateway-side payment intent.
type Order struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"` // major units
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// Gateway is the narrow contract the checkout flow depends on.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, currency string) (*Order, error)
}

type razorpayClient struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
}

func NewRazorpayClient(cfg *config.Razorpay) Gateway {
	return &razorpayClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL:   cfg.APIURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResult struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Error    *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

// CreateOrder registers a payment intent with Razorpay for the given
// amount in major currency units.
func (c *razorpayClient) CreateOrder(ctx context.Context, amount float64, currency string) (*Order, error) {
	payload := createOrderRequest{
		Amount:   MinorUnits(amount),
		Currency: currency,
		Receipt:  "receipt_" + uuid.NewString(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: razorpay returned %d: %s", ErrGatewayUnavailable, resp.StatusCode, respBody)
	}

	var result createOrderResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: parse razorpay response: %v", ErrGatewayUnavailable, err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("%w: razorpay error: %s", ErrGatewayUnavailable, result.Error.Description)
	}
	if result.ID == "" {
		return nil, fmt.Errorf("%w: razorpay returned empty order id", ErrGatewayUnavailable)
	}

	return &Order{
		ID:       result.ID,
		Amount:   float64(result.Amount) / 100,
		Currency: result.Currency,
		Receipt:  result.Receipt,
	}, nil
}

// MinorUnits converts a major-unit amount to the gateway's minor-unit
// representation (INR paise), rounding once at this boundary.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
