package payment

import (
	"context"

	"github.com/spicehouse/restaurant-backend/internal/types/order"
	"github.com/spicehouse/restaurant-backend/internal/types/payment"
)

type PaymentRepository interface {
	CreatePaymentOrder(ctx context.Context, po *payment.PaymentOrder) error
	FindPaymentOrderByRemoteID(ctx context.Context, remoteOrderID string) (*payment.PaymentOrder, error)
	CompletePaymentOrder(ctx context.Context, remoteOrderID, paymentID string) error
	AttachWebhook(ctx context.Context, paymentID, event string, entity []byte) error
	ListCompletedPaymentOrders(ctx context.Context) ([]payment.PaymentOrder, error)
}

// OrderUpdater is the slice of the order store the reconciliation needs.
type OrderUpdater interface {
	FindOrderByID(ctx context.Context, id string) (*order.Order, error)
	SetOrderPayment(ctx context.Context, id string, status order.PaymentStatus, paymentID string) error
}
