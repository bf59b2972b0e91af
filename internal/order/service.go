package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spicehouse/restaurant-backend/internal/storage"
	"github.com/spicehouse/restaurant-backend/internal/types/order"
)

var (
	ErrInvalidOrder  = errors.New("invalid order payload")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrOrderNotFound = errors.New("order not found")
)

var validStatuses = map[order.OrderStatus]bool{
	order.StatusReceived:  true,
	order.StatusPreparing: true,
	order.StatusReady:     true,
	order.StatusDelivered: true,
	order.StatusCancelled: true,
}

type Service struct {
	repo OrderRepository
}

func NewService(r OrderRepository) *Service {
	return &Service{repo: r}
}

// CreateOrder validates the checkout payload, recomputes every subtotal and
// the order total from the items and persists the order as received/pending.
func (s *Service) CreateOrder(ctx context.Context, req *order.CreateRequest) (string, string, error) {
	if err := validateCreate(req); err != nil {
		return "", "", err
	}

	now := time.Now().UTC()
	items := make([]order.Item, len(req.Items))
	total := 0.0
	for i, it := range req.Items {
		it.Subtotal = it.Price * float64(it.Quantity)
		items[i] = it
		total += it.Subtotal
	}

	o := &order.Order{
		Number:              "ORD" + now.Format("20060102150405"),
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		Items:               items,
		TotalAmount:         total,
		PaymentStatus:       order.PaymentPending,
		Status:              order.StatusReceived,
		DeliveryType:        order.DeliveryType(req.DeliveryType),
		DeliveryAddress:     req.DeliveryAddress,
		SpecialInstructions: req.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if o.DeliveryType == "" {
		o.DeliveryType = order.DeliveryPickup
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return "", "", err
	}
	return o.ID.Hex(), o.Number, nil
}

func validateCreate(req *order.CreateRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.CustomerPhone) == "" ||
		!strings.Contains(req.CustomerEmail, "@") {
		return ErrInvalidOrder
	}
	if len(req.Items) == 0 {
		return ErrInvalidOrder
	}
	for _, it := range req.Items {
		if it.ItemID == "" || it.Name == "" || it.Price <= 0 || it.Quantity <= 0 {
			return ErrInvalidOrder
		}
	}
	switch order.DeliveryType(req.DeliveryType) {
	case "", order.DeliveryPickup:
	case order.DeliveryDelivery:
		if strings.TrimSpace(req.DeliveryAddress) == "" {
			return ErrInvalidOrder
		}
	default:
		return ErrInvalidOrder
	}
	return nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.repo.FindOrderByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]order.Order, error) {
	return s.repo.ListOrders(ctx)
}

// UpdateStatus accepts any known status regardless of the current one; the
// kitchen staff uses this to correct mistakes, so no transition table is
// enforced.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	st := order.OrderStatus(status)
	if !validStatuses[st] {
		return ErrInvalidStatus
	}
	err := s.repo.UpdateOrderStatus(ctx, id, st, time.Now().UTC())
	if errors.Is(err, storage.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}
