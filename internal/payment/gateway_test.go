package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	// precomputed hex HMAC-SHA256 of "order_R7kXy1|pay_Q9mZw2" under "test-secret"
	want := "40ce56a985c6919cdeec9c8cfc0e8264c950f6007abcda15859800da11d9f3a0"
	assert.Equal(t, want, Signature("test-secret", "order_R7kXy1|pay_Q9mZw2"))
}

func TestGatewayConfigCredentials(t *testing.T) {
	assert.False(t, GatewayConfig{}.HasCredentials())
	assert.False(t, GatewayConfig{KeyID: "k"}.HasCredentials())
	assert.False(t, GatewayConfig{KeySecret: "s"}.HasCredentials())
	assert.True(t, GatewayConfig{KeyID: "k", KeySecret: "s"}.HasCredentials())
}

func TestWebhookVerificationEnabled(t *testing.T) {
	assert.False(t, GatewayConfig{}.WebhookVerificationEnabled())
	assert.False(t, GatewayConfig{WebhookSecret: "dummy"}.WebhookVerificationEnabled())
	assert.True(t, GatewayConfig{WebhookSecret: "whsec"}.WebhookVerificationEnabled())
}

func TestVerifyWebhookSignatureSkippedOutsideProduction(t *testing.T) {
	gw := NewRazorpayGateway(func() GatewayConfig {
		return GatewayConfig{WebhookSecret: "dummy", Production: false}
	})
	assert.NoError(t, gw.VerifyWebhookSignature([]byte(`{}`), "whatever"))
}

func TestVerifyWebhookSignatureRequiredInProduction(t *testing.T) {
	gw := NewRazorpayGateway(func() GatewayConfig {
		return GatewayConfig{WebhookSecret: "dummy", Production: true}
	})
	err := gw.VerifyWebhookSignature([]byte(`{}`), "whatever")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestVerifyWebhookSignatureMismatch(t *testing.T) {
	gw := NewRazorpayGateway(func() GatewayConfig {
		return GatewayConfig{WebhookSecret: "whsec"}
	})
	err := gw.VerifyWebhookSignature([]byte(`{"event":"x"}`), "deadbeef")
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestCreateOrderMissingCredentials(t *testing.T) {
	gw := NewRazorpayGateway(func() GatewayConfig { return GatewayConfig{} })
	_, err := gw.CreateOrder(context.Background(), 2000, "INR")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAmountFromResponse(t *testing.T) {
	assert.Equal(t, int64(2000), amountFromResponse(float64(2000), 0))
	assert.Equal(t, int64(2000), amountFromResponse(int64(2000), 0))
	assert.Equal(t, int64(2000), amountFromResponse(2000, 0))
	assert.Equal(t, int64(500), amountFromResponse(nil, 500))
	assert.Equal(t, int64(500), amountFromResponse("2000", 500))
}
