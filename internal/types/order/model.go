package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusReceived  OrderStatus = "received"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

type Item struct {
	ItemID   string  `bson:"item_id" json:"item_id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
}

type Order struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number              string             `bson:"order_number" json:"order_number"`
	CustomerName        string             `bson:"customer_name" json:"customer_name"`
	CustomerEmail       string             `bson:"customer_email" json:"customer_email"`
	CustomerPhone       string             `bson:"customer_phone" json:"customer_phone"`
	Items               []Item             `bson:"items" json:"items"`
	TotalAmount         float64            `bson:"total_amount" json:"total_amount"`
	PaymentStatus       PaymentStatus      `bson:"payment_status" json:"payment_status"`
	PaymentID           string             `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Status              OrderStatus        `bson:"order_status" json:"order_status"`
	DeliveryType        DeliveryType       `bson:"delivery_type" json:"delivery_type"`
	DeliveryAddress     string             `bson:"delivery_address,omitempty" json:"delivery_address,omitempty"`
	SpecialInstructions string             `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateRequest carries the checkout payload. TotalAmount is accepted for
// compatibility with the web client but the server recomputes the total from
// the items.
type CreateRequest struct {
	CustomerName        string  `json:"customer_name"`
	CustomerEmail       string  `json:"customer_email"`
	CustomerPhone       string  `json:"customer_phone"`
	Items               []Item  `json:"items"`
	TotalAmount         float64 `json:"total_amount"`
	DeliveryType        string  `json:"delivery_type"`
	DeliveryAddress     string  `json:"delivery_address,omitempty"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}
