package payment

import (
	"context"
	"crypto/hmac"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spicehouse/restaurant-backend/internal/storage"
	"github.com/spicehouse/restaurant-backend/internal/types/order"
	"github.com/spicehouse/restaurant-backend/internal/types/payment"
)

type Service struct {
	repo    PaymentRepository
	orders  OrderUpdater
	gateway Gateway
	config  func() GatewayConfig
}

func NewService(repo PaymentRepository, orders OrderUpdater, gateway Gateway, config func() GatewayConfig) *Service {
	return &Service{repo: repo, orders: orders, gateway: gateway, config: config}
}

type InitiateResult struct {
	RazorpayOrderID string `json:"order_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"key_id"`
}

// InitiatePayment creates a remote order at the gateway and records a
// PaymentOrder linked to the internal order.
func (s *Service) InitiatePayment(ctx context.Context, orderID string, amount int64, currency string) (*InitiateResult, error) {
	cfg := s.config()
	if !cfg.HasCredentials() {
		return nil, ErrMissingCredentials
	}

	remote, err := s.gateway.CreateOrder(ctx, amount, currency)
	if err != nil {
		return nil, err
	}

	po := &payment.PaymentOrder{
		RazorpayOrderID: remote.ID,
		OrderID:         orderID,
		Amount:          remote.Amount,
		Currency:        remote.Currency,
		Status:          payment.StatusCreated,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.CreatePaymentOrder(ctx, po); err != nil {
		return nil, fmt.Errorf("persist payment order: %w", err)
	}

	return &InitiateResult{
		RazorpayOrderID: remote.ID,
		Amount:          remote.Amount,
		Currency:        remote.Currency,
		KeyID:           cfg.KeyID,
	}, nil
}

// VerifyPayment recomputes the signature over "orderID|paymentID" and, on
// match, marks the PaymentOrder completed and propagates completion to the
// linked order. Both updates use set semantics, so repeating the call (or
// racing the webhook) converges on the same state.
func (s *Service) VerifyPayment(ctx context.Context, remoteOrderID, paymentID, signature string) error {
	cfg := s.config()
	expected := Signature(cfg.KeySecret, remoteOrderID+"|"+paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}

	err := s.repo.CompletePaymentOrder(ctx, remoteOrderID, paymentID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrPaymentOrderNotFound
	}
	if err != nil {
		return fmt.Errorf("complete payment order: %w", err)
	}

	po, err := s.repo.FindPaymentOrderByRemoteID(ctx, remoteOrderID)
	if err != nil {
		return fmt.Errorf("load payment order: %w", err)
	}
	if po.OrderID != "" {
		if err := s.orders.SetOrderPayment(ctx, po.OrderID, order.PaymentCompleted, paymentID); err != nil {
			return fmt.Errorf("update order payment: %w", err)
		}
	}
	return nil
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity json.RawMessage `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook verifies the provider signature, then attaches the event name
// and the raw payment entity to the matching PaymentOrder. A webhook arriving
// before its PaymentOrder exists is acknowledged as a no-op; the provider
// retries and the verify path carries the state anyway.
func (s *Service) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if err := s.gateway.VerifyWebhookSignature(body, signature); err != nil {
		return err
	}

	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}
	entity := env.Payload.Payment.Entity
	if len(entity) == 0 {
		return nil
	}
	var ent struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(entity, &ent); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}
	if ent.ID == "" {
		return nil
	}
	return s.repo.AttachWebhook(ctx, ent.ID, env.Event, entity)
}

// ListForReconciliation feeds the sweeper.
func (s *Service) ListForReconciliation(ctx context.Context) ([]payment.PaymentOrder, error) {
	return s.repo.ListCompletedPaymentOrders(ctx)
}

// SyncOrderPayment re-applies the order-side completion for a completed
// PaymentOrder. A crash between the two verify updates leaves the order
// behind; this closes the gap.
func (s *Service) SyncOrderPayment(ctx context.Context, po *payment.PaymentOrder) error {
	if po.OrderID == "" || po.RazorpayPaymentID == "" {
		return nil
	}
	o, err := s.orders.FindOrderByID(ctx, po.OrderID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.PaymentStatus == order.PaymentCompleted {
		return nil
	}
	return s.orders.SetOrderPayment(ctx, po.OrderID, order.PaymentCompleted, po.RazorpayPaymentID)
}
