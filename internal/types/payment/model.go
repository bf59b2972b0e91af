package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusCreated   Status = "created"
	StatusCompleted Status = "completed"
)

// PaymentOrder tracks a single attempt to pay for an internal order via the
// gateway. WebhookData holds the raw provider entity as delivered, without a
// fixed schema.
type PaymentOrder struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RazorpayOrderID   string             `bson:"razorpay_order_id" json:"razorpay_order_id"`
	OrderID           string             `bson:"order_id" json:"order_id"`
	Amount            int64              `bson:"amount" json:"amount"`
	Currency          string             `bson:"currency" json:"currency"`
	Status            Status             `bson:"status" json:"status"`
	RazorpayPaymentID string             `bson:"razorpay_payment_id,omitempty" json:"razorpay_payment_id,omitempty"`
	WebhookEvent      string             `bson:"webhook_event,omitempty" json:"webhook_event,omitempty"`
	WebhookData       string             `bson:"webhook_data,omitempty" json:"webhook_data,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

type CreateOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	OrderID  string `json:"order_id"`
}

type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
