package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

var (
	ErrMissingCredentials   = errors.New("payment gateway credentials are not configured")
	ErrSignatureMismatch    = errors.New("invalid payment signature")
	ErrPaymentOrderNotFound = errors.New("payment order not found")
	ErrInvalidWebhook       = errors.New("malformed webhook payload")
)

const gatewayTimeoutSeconds = 10

// GatewayConfig is read through a provider function on every call, so key
// rotation does not require a restart.
type GatewayConfig struct {
	KeyID         string
	KeySecret     string
	WebhookSecret string
	Production    bool
}

func (c GatewayConfig) HasCredentials() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

// WebhookVerificationEnabled reports whether a real webhook secret is
// configured. The literal "dummy" is the documented sentinel that disables
// verification on non-production deployments.
func (c GatewayConfig) WebhookVerificationEnabled() bool {
	return c.WebhookSecret != "" && c.WebhookSecret != "dummy"
}

type RemoteOrder struct {
	ID       string
	Amount   int64
	Currency string
}

type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*RemoteOrder, error)
	VerifyWebhookSignature(body []byte, signature string) error
}

type RazorpayGateway struct {
	config func() GatewayConfig
}

func NewRazorpayGateway(config func() GatewayConfig) *RazorpayGateway {
	return &RazorpayGateway{config: config}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency string) (*RemoteOrder, error) {
	cfg := g.config()
	if !cfg.HasCredentials() {
		return nil, ErrMissingCredentials
	}

	client := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	client.SetTimeout(gatewayTimeoutSeconds)

	body, err := client.Order.Create(map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create remote order: %w", err)
	}
	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("create remote order: gateway returned no order id")
	}
	return &RemoteOrder{
		ID:       id,
		Amount:   amountFromResponse(body["amount"], amount),
		Currency: stringFromResponse(body["currency"], currency),
	}, nil
}

func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature string) error {
	cfg := g.config()
	if !cfg.WebhookVerificationEnabled() {
		if cfg.Production {
			return fmt.Errorf("%w: webhook secret required in production", ErrMissingCredentials)
		}
		return nil
	}
	if !utils.VerifyWebhookSignature(string(body), signature, cfg.WebhookSecret) {
		return ErrSignatureMismatch
	}
	return nil
}

// Signature computes the hex HMAC-SHA256 of message under secret. Payment
// proofs are recomputed locally, never taken from the client.
func Signature(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func amountFromResponse(v interface{}, fallback int64) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return fallback
	}
}

func stringFromResponse(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}
