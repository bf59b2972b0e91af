package catalog

import (
	"context"
	"time"

	"github.com/spicehouse/restaurant-backend/internal/types/catalog"
)

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
