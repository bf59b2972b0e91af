package storage

import (
	"context"
	"errors"
	"time"

	"github.com/spicehouse/restaurant-backend/internal/types/catalog"
	"github.com/spicehouse/restaurant-backend/internal/types/order"
	"github.com/spicehouse/restaurant-backend/internal/types/payment"
	"github.com/spicehouse/restaurant-backend/internal/types/user"
)

// ErrNotFound is returned when a lookup or a matched update touches no record.
var ErrNotFound = errors.New("record not found")

// OrderRepository owns the order documents.
type OrderRepository interface {
	CreateOrder(ctx context.Context, o *order.Order) error
	FindOrderByID(ctx context.Context, id string) (*order.Order, error)
	ListOrders(ctx context.Context) ([]order.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status order.OrderStatus, updatedAt time.Time) error
	// SetOrderPayment applies set semantics; a missing order is a no-op so
	// that verify and webhook paths stay convergent.
	SetOrderPayment(ctx context.Context, id string, status order.PaymentStatus, paymentID string) error
}

// PaymentRepository owns the payment_orders documents.
type PaymentRepository interface {
	CreatePaymentOrder(ctx context.Context, po *payment.PaymentOrder) error
	FindPaymentOrderByRemoteID(ctx context.Context, remoteOrderID string) (*payment.PaymentOrder, error)
	CompletePaymentOrder(ctx context.Context, remoteOrderID, paymentID string) error
	// AttachWebhook upserts webhook metadata onto the payment order matched
	// by the provider payment id; zero matches is not an error.
	AttachWebhook(ctx context.Context, paymentID, event string, entity []byte) error
	ListCompletedPaymentOrders(ctx context.Context) ([]payment.PaymentOrder, error)
}

// UserRepository owns the admin/customer accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

// CatalogRepository owns everything the public site reads: info, menu,
// bookings, testimonials, gallery and offers.
type CatalogRepository interface {
	GetRestaurantInfo(ctx context.Context) (*catalog.RestaurantInfo, error)
	UpsertRestaurantInfo(ctx context.Context, info *catalog.RestaurantInfo) error

	ListMenuCategories(ctx context.Context) ([]catalog.MenuCategory, error)
	CreateMenuCategory(ctx context.Context, c *catalog.MenuCategory) error
	AddMenuItem(ctx context.Context, categoryID string, item *catalog.MenuItem) error
	UpdateMenuItem(ctx context.Context, itemID string, item *catalog.MenuItem) error
	DeleteMenuItem(ctx context.Context, itemID string) error

	CreateBooking(ctx context.Context, b *catalog.Booking) error
	ListBookings(ctx context.Context) ([]catalog.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status catalog.BookingStatus, updatedAt time.Time) error

	CreateTestimonial(ctx context.Context, t *catalog.Testimonial) error
	ListTestimonials(ctx context.Context, approved bool) ([]catalog.Testimonial, error)
	ApproveTestimonial(ctx context.Context, id string) error

	ListGallery(ctx context.Context) ([]catalog.GalleryImage, error)
	AddGalleryImage(ctx context.Context, img *catalog.GalleryImage) error
	DeleteGalleryImage(ctx context.Context, id string) error

	ListActiveOffers(ctx context.Context) ([]catalog.SpecialOffer, error)
	CreateOffer(ctx context.Context, o *catalog.SpecialOffer) error
	UpdateOffer(ctx context.Context, id string, o *catalog.SpecialOffer) error
}

// Storage unions the repositories.
type Storage interface {
	OrderRepository
	PaymentRepository
	UserRepository
	CatalogRepository

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
