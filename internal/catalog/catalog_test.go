package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicehouse/restaurant-backend/internal/storage"
	"github.com/spicehouse/restaurant-backend/internal/types/catalog"
)

type mockCatalogRepo struct {
	getRestaurantInfoFn    func(ctx context.Context) (*catalog.RestaurantInfo, error)
	upsertRestaurantInfoFn func(ctx context.Context, info *catalog.RestaurantInfo) error

	listMenuCategoriesFn func(ctx context.Context) ([]catalog.MenuCategory, error)
	createMenuCategoryFn func(ctx context.Context, c *catalog.MenuCategory) error
	addMenuItemFn        func(ctx context.Context, categoryID string, item *catalog.MenuItem) error
	updateMenuItemFn     func(ctx context.Context, itemID string, item *catalog.MenuItem) error
	deleteMenuItemFn     func(ctx context.Context, itemID string) error

	createBookingFn       func(ctx context.Context, b *catalog.Booking) error
	listBookingsFn        func(ctx context.Context) ([]catalog.Booking, error)
	updateBookingStatusFn func(ctx context.Context, id string, status catalog.BookingStatus, updatedAt time.Time) error

	createTestimonialFn  func(ctx context.Context, t *catalog.Testimonial) error
	listTestimonialsFn   func(ctx context.Context, approved bool) ([]catalog.Testimonial, error)
	approveTestimonialFn func(ctx context.Context, id string) error

	listGalleryFn        func(ctx context.Context) ([]catalog.GalleryImage, error)
	addGalleryImageFn    func(ctx context.Context, img *catalog.GalleryImage) error
	deleteGalleryImageFn func(ctx context.Context, id string) error

	listActiveOffersFn func(ctx context.Context) ([]catalog.SpecialOffer, error)
	createOfferFn      func(ctx context.Context, o *catalog.SpecialOffer) error
	updateOfferFn      func(ctx context.Context, id string, o *catalog.SpecialOffer) error
}

func (m *mockCatalogRepo) GetRestaurantInfo(ctx context.Context) (*catalog.RestaurantInfo, error) {
	return m.getRestaurantInfoFn(ctx)
}

func (m *mockCatalogRepo) UpsertRestaurantInfo(ctx context.Context, info *catalog.RestaurantInfo) error {
	return m.upsertRestaurantInfoFn(ctx, info)
}

func (m *mockCatalogRepo) ListMenuCategories(ctx context.Context) ([]catalog.MenuCategory, error) {
	return m.listMenuCategoriesFn(ctx)
}

func (m *mockCatalogRepo) CreateMenuCategory(ctx context.Context, c *catalog.MenuCategory) error {
	return m.createMenuCategoryFn(ctx, c)
}

func (m *mockCatalogRepo) AddMenuItem(ctx context.Context, categoryID string, item *catalog.MenuItem) error {
	return m.addMenuItemFn(ctx, categoryID, item)
}

func (m *mockCatalogRepo) UpdateMenuItem(ctx context.Context, itemID string, item *catalog.MenuItem) error {
	return m.updateMenuItemFn(ctx, itemID, item)
}

func (m *mockCatalogRepo) DeleteMenuItem(ctx context.Context, itemID string) error {
	return m.deleteMenuItemFn(ctx, itemID)
}

func (m *mockCatalogRepo) CreateBooking(ctx context.Context, b *catalog.Booking) error {
	return m.createBookingFn(ctx, b)
}

func (m *mockCatalogRepo) ListBookings(ctx context.Context) ([]catalog.Booking, error) {
	return m.listBookingsFn(ctx)
}

func (m *mockCatalogRepo) UpdateBookingStatus(ctx context.Context, id string, status catalog.BookingStatus, updatedAt time.Time) error {
	return m.updateBookingStatusFn(ctx, id, status, updatedAt)
}

func (m *mockCatalogRepo) CreateTestimonial(ctx context.Context, t *catalog.Testimonial) error {
	return m.createTestimonialFn(ctx, t)
}

func (m *mockCatalogRepo) ListTestimonials(ctx context.Context, approved bool) ([]catalog.Testimonial, error) {
	return m.listTestimonialsFn(ctx, approved)
}

func (m *mockCatalogRepo) ApproveTestimonial(ctx context.Context, id string) error {
	return m.approveTestimonialFn(ctx, id)
}

func (m *mockCatalogRepo) ListGallery(ctx context.Context) ([]catalog.GalleryImage, error) {
	return m.listGalleryFn(ctx)
}

func (m *mockCatalogRepo) AddGalleryImage(ctx context.Context, img *catalog.GalleryImage) error {
	return m.addGalleryImageFn(ctx, img)
}

func (m *mockCatalogRepo) DeleteGalleryImage(ctx context.Context, id string) error {
	return m.deleteGalleryImageFn(ctx, id)
}

func (m *mockCatalogRepo) ListActiveOffers(ctx context.Context) ([]catalog.SpecialOffer, error) {
	return m.listActiveOffersFn(ctx)
}

func (m *mockCatalogRepo) CreateOffer(ctx context.Context, o *catalog.SpecialOffer) error {
	return m.createOfferFn(ctx, o)
}

func (m *mockCatalogRepo) UpdateOffer(ctx context.Context, id string, o *catalog.SpecialOffer) error {
	return m.updateOfferFn(ctx, id, o)
}

func TestCreateTestimonialDefaults(t *testing.T) {
	var saved *catalog.Testimonial
	repo := &mockCatalogRepo{
		createTestimonialFn: func(ctx context.Context, tm *catalog.Testimonial) error {
			saved = tm
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.CreateTestimonial(context.Background(), &catalog.Testimonial{
		Name:     "Priya",
		Rating:   5,
		Comment:  "Wonderful food",
		Approved: true,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.False(t, saved.Approved, "submitted testimonials must await moderation")
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), saved.Date)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestCreateTestimonialRatingBounds(t *testing.T) {
	repo := &mockCatalogRepo{
		createTestimonialFn: func(ctx context.Context, tm *catalog.Testimonial) error {
			t.Fatal("repo must not be called for an invalid testimonial")
			return nil
		},
	}
	svc := NewService(repo)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.CreateTestimonial(context.Background(), &catalog.Testimonial{
			Name:   "Priya",
			Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidPayload, "rating %d", rating)
	}
}

func TestApproveTestimonialNotFound(t *testing.T) {
	repo := &mockCatalogRepo{
		approveTestimonialFn: func(ctx context.Context, id string) error {
			return storage.ErrNotFound
		},
	}
	svc := NewService(repo)

	err := svc.ApproveTestimonial(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBookingValidation(t *testing.T) {
	repo := &mockCatalogRepo{
		createBookingFn: func(ctx context.Context, b *catalog.Booking) error {
			t.Fatal("repo must not be called for an invalid booking")
			return nil
		},
	}
	svc := NewService(repo)

	tests := []struct {
		name    string
		booking catalog.Booking
	}{
		{"missing name", catalog.Booking{Date: "2026-09-10", Time: "19:00", Guests: 2}},
		{"missing date", catalog.Booking{Name: "Ravi", Time: "19:00", Guests: 2}},
		{"missing time", catalog.Booking{Name: "Ravi", Date: "2026-09-10", Guests: 2}},
		{"zero guests", catalog.Booking{Name: "Ravi", Date: "2026-09-10", Time: "19:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), &tt.booking)
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	var saved *catalog.Booking
	repo := &mockCatalogRepo{
		createBookingFn: func(ctx context.Context, b *catalog.Booking) error {
			saved = b
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.CreateBooking(context.Background(), &catalog.Booking{
		Name:   "Ravi",
		Date:   "2026-09-10",
		Time:   "19:00",
		Guests: 4,
		Status: catalog.BookingConfirmed,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, catalog.BookingPending, saved.Status)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestUpdateBookingStatus(t *testing.T) {
	var got catalog.BookingStatus
	repo := &mockCatalogRepo{
		updateBookingStatusFn: func(ctx context.Context, id string, status catalog.BookingStatus, updatedAt time.Time) error {
			got = status
			return nil
		},
	}
	svc := NewService(repo)

	require.NoError(t, svc.UpdateBookingStatus(context.Background(), "b1", "confirmed"))
	assert.Equal(t, catalog.BookingConfirmed, got)

	err := svc.UpdateBookingStatus(context.Background(), "b1", "arrived")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestAddMenuItemAssignsID(t *testing.T) {
	var saved *catalog.MenuItem
	repo := &mockCatalogRepo{
		addMenuItemFn: func(ctx context.Context, categoryID string, item *catalog.MenuItem) error {
			saved = item
			return nil
		},
	}
	svc := NewService(repo)

	id, err := svc.AddMenuItem(context.Background(), "cat1", &catalog.MenuItem{
		Name:  "Paneer Tikka",
		Price: 280,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.NotEmpty(t, id)
	assert.Equal(t, id, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestAddMenuItemValidation(t *testing.T) {
	repo := &mockCatalogRepo{
		addMenuItemFn: func(ctx context.Context, categoryID string, item *catalog.MenuItem) error {
			t.Fatal("repo must not be called for an invalid item")
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.AddMenuItem(context.Background(), "cat1", &catalog.MenuItem{Price: 280})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = svc.AddMenuItem(context.Background(), "cat1", &catalog.MenuItem{Name: "Dal", Price: 0})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestAddMenuItemUnknownCategory(t *testing.T) {
	repo := &mockCatalogRepo{
		addMenuItemFn: func(ctx context.Context, categoryID string, item *catalog.MenuItem) error {
			return storage.ErrNotFound
		},
	}
	svc := NewService(repo)

	_, err := svc.AddMenuItem(context.Background(), "missing", &catalog.MenuItem{Name: "Dal", Price: 180})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRestaurantInfoValidation(t *testing.T) {
	repo := &mockCatalogRepo{
		upsertRestaurantInfoFn: func(ctx context.Context, info *catalog.RestaurantInfo) error {
			return nil
		},
	}
	svc := NewService(repo)

	err := svc.UpdateRestaurantInfo(context.Background(), &catalog.RestaurantInfo{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	err = svc.UpdateRestaurantInfo(context.Background(), &catalog.RestaurantInfo{Name: "Spice House"})
	assert.NoError(t, err)
}

func TestCreateOfferValidation(t *testing.T) {
	repo := &mockCatalogRepo{
		createOfferFn: func(ctx context.Context, o *catalog.SpecialOffer) error {
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.CreateOffer(context.Background(), &catalog.SpecialOffer{Title: ""})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = svc.CreateOffer(context.Background(), &catalog.SpecialOffer{Title: "Lunch Combo"})
	assert.NoError(t, err)
}

func newCatalogRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/menu", h.ListMenuCategories)
	r.Post("/menu/categories", h.CreateMenuCategory)
	r.Post("/testimonials", h.CreateTestimonial)
	r.Get("/testimonials", h.ListTestimonials)
	r.Post("/bookings", h.CreateBooking)
	return r
}

func TestListMenuHandlerEmpty(t *testing.T) {
	repo := &mockCatalogRepo{
		listMenuCategoriesFn: func(ctx context.Context) ([]catalog.MenuCategory, error) {
			return nil, nil
		},
	}
	h := NewHandler(NewService(repo))
	router := newCatalogRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateTestimonialHandler(t *testing.T) {
	repo := &mockCatalogRepo{
		createTestimonialFn: func(ctx context.Context, tm *catalog.Testimonial) error {
			return nil
		},
	}
	h := NewHandler(NewService(repo))
	router := newCatalogRouter(h)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"name":"Priya","rating":5,"text":"Great"}`, http.StatusOK},
		{"rating out of range", `{"name":"Priya","rating":9}`, http.StatusBadRequest},
		{"malformed json", `{"name":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/testimonials", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreateBookingHandler(t *testing.T) {
	repo := &mockCatalogRepo{
		createBookingFn: func(ctx context.Context, b *catalog.Booking) error {
			return nil
		},
	}
	h := NewHandler(NewService(repo))
	router := newCatalogRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/bookings",
		strings.NewReader(`{"name":"Ravi","date":"2026-09-10","time":"19:00","guests":4}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking_id")
}

func TestCreateCategoryHandlerRepoError(t *testing.T) {
	repo := &mockCatalogRepo{
		createMenuCategoryFn: func(ctx context.Context, c *catalog.MenuCategory) error {
			return errors.New("write failed")
		},
	}
	h := NewHandler(NewService(repo))
	router := newCatalogRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/menu/categories",
		strings.NewReader(`{"name":"Starters"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
