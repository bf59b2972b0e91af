package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spicehouse/restaurant-backend/internal/storage"
	"github.com/spicehouse/restaurant-backend/internal/types/catalog"
)

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrNotFound       = errors.New("not found")
)

var validBookingStatuses = map[catalog.BookingStatus]bool{
	catalog.BookingPending:   true,
	catalog.BookingConfirmed: true,
	catalog.BookingCancelled: true,
}

type Service struct {
	repo CatalogRepository
}

func NewService(r CatalogRepository) *Service {
	return &Service{repo: r}
}

func (s *Service) GetRestaurantInfo(ctx context.Context) (*catalog.RestaurantInfo, error) {
	info, err := s.repo.GetRestaurantInfo(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return info, err
}

func (s *Service) UpdateRestaurantInfo(ctx context.Context, info *catalog.RestaurantInfo) error {
	if strings.TrimSpace(info.Name) == "" {
		return ErrInvalidPayload
	}
	return s.repo.UpsertRestaurantInfo(ctx, info)
}

func (s *Service) ListMenuCategories(ctx context.Context) ([]catalog.MenuCategory, error) {
	return s.repo.ListMenuCategories(ctx)
}

func (s *Service) CreateMenuCategory(ctx context.Context, c *catalog.MenuCategory) (string, error) {
	if strings.TrimSpace(c.Name) == "" {
		return "", ErrInvalidPayload
	}
	if c.Items == nil {
		c.Items = []catalog.MenuItem{}
	}
	if err := s.repo.CreateMenuCategory(ctx, c); err != nil {
		return "", err
	}
	return c.ID.Hex(), nil
}

func (s *Service) AddMenuItem(ctx context.Context, categoryID string, item *catalog.MenuItem) (string, error) {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
		return "", ErrInvalidPayload
	}
	now := time.Now().UTC()
	item.ID = primitive.NewObjectID().Hex()
	item.CreatedAt = now
	item.UpdatedAt = now
	err := s.repo.AddMenuItem(ctx, categoryID, item)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return item.ID, nil
}

func (s *Service) UpdateMenuItem(ctx context.Context, itemID string, item *catalog.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
		return ErrInvalidPayload
	}
	item.UpdatedAt = time.Now().UTC()
	err := s.repo.UpdateMenuItem(ctx, itemID, item)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) DeleteMenuItem(ctx context.Context, itemID string) error {
	err := s.repo.DeleteMenuItem(ctx, itemID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) CreateBooking(ctx context.Context, b *catalog.Booking) (string, error) {
	if strings.TrimSpace(b.Name) == "" || b.Date == "" || b.Time == "" || b.Guests <= 0 {
		return "", ErrInvalidPayload
	}
	now := time.Now().UTC()
	b.Status = catalog.BookingPending
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := s.repo.CreateBooking(ctx, b); err != nil {
		return "", err
	}
	return b.ID.Hex(), nil
}

func (s *Service) ListBookings(ctx context.Context) ([]catalog.Booking, error) {
	return s.repo.ListBookings(ctx)
}

func (s *Service) UpdateBookingStatus(ctx context.Context, id, status string) error {
	st := catalog.BookingStatus(status)
	if !validBookingStatuses[st] {
		return ErrInvalidPayload
	}
	err := s.repo.UpdateBookingStatus(ctx, id, st, time.Now().UTC())
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) CreateTestimonial(ctx context.Context, t *catalog.Testimonial) (string, error) {
	if strings.TrimSpace(t.Name) == "" || t.Rating < 1 || t.Rating > 5 {
		return "", ErrInvalidPayload
	}
	now := time.Now().UTC()
	t.Approved = false
	t.Date = now.Format("2006-01-02")
	t.CreatedAt = now
	if err := s.repo.CreateTestimonial(ctx, t); err != nil {
		return "", err
	}
	return t.ID.Hex(), nil
}

func (s *Service) ListApprovedTestimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	return s.repo.ListTestimonials(ctx, true)
}

func (s *Service) ListPendingTestimonials(ctx context.Context) ([]catalog.Testimonial, error) {
	return s.repo.ListTestimonials(ctx, false)
}

func (s *Service) ApproveTestimonial(ctx context.Context, id string) error {
	err := s.repo.ApproveTestimonial(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) ListGallery(ctx context.Context) ([]catalog.GalleryImage, error) {
	return s.repo.ListGallery(ctx)
}

func (s *Service) AddGalleryImage(ctx context.Context, img *catalog.GalleryImage) (string, error) {
	if img.Image == "" {
		return "", ErrInvalidPayload
	}
	img.CreatedAt = time.Now().UTC()
	if err := s.repo.AddGalleryImage(ctx, img); err != nil {
		return "", err
	}
	return img.ID.Hex(), nil
}

func (s *Service) DeleteGalleryImage(ctx context.Context, id string) error {
	err := s.repo.DeleteGalleryImage(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) ListActiveOffers(ctx context.Context) ([]catalog.SpecialOffer, error) {
	return s.repo.ListActiveOffers(ctx)
}

func (s *Service) CreateOffer(ctx context.Context, o *catalog.SpecialOffer) (string, error) {
	if strings.TrimSpace(o.Title) == "" {
		return "", ErrInvalidPayload
	}
	o.CreatedAt = time.Now().UTC()
	if err := s.repo.CreateOffer(ctx, o); err != nil {
		return "", err
	}
	return o.ID.Hex(), nil
}

func (s *Service) UpdateOffer(ctx context.Context, id string, o *catalog.SpecialOffer) error {
	if strings.TrimSpace(o.Title) == "" {
		return ErrInvalidPayload
	}
	err := s.repo.UpdateOffer(ctx, id, o)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
