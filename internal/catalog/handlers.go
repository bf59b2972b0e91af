package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spicehouse/restaurant-backend/internal/types/catalog"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	switch err {
	case ErrInvalidPayload:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case ErrNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) GetRestaurantInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.GetRestaurantInfo(r.Context())
	if err == ErrNotFound {
		writeJSON(w, nil)
		return
	}
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, info)
}

func (h *Handler) UpdateRestaurantInfo(w http.ResponseWriter, r *http.Request) {
	var info catalog.RestaurantInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.svc.UpdateRestaurantInfo(r.Context(), &info); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Restaurant info updated"})
}

func (h *Handler) ListMenuCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListMenuCategories(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if cats == nil {
		cats = []catalog.MenuCategory{}
	}
	writeJSON(w, cats)
}

func (h *Handler) CreateMenuCategory(w http.ResponseWriter, r *http.Request) {
	var c catalog.MenuCategory
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateMenuCategory(r.Context(), &c)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Category created", "id": id})
}

func (h *Handler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")
	var item catalog.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.svc.AddMenuItem(r.Context(), categoryID, &item)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Item created successfully", "id": id})
}

func (h *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item catalog.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.svc.UpdateMenuItem(r.Context(), chi.URLParam(r, "id"), &item); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Item updated successfully"})
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMenuItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Item deleted"})
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var b catalog.Booking
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateBooking(r.Context(), &b)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Booking created successfully", "booking_id": id})
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.svc.ListBookings(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if bookings == nil {
		bookings = []catalog.Booking{}
	}
	writeJSON(w, bookings)
}

func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			status = req.Status
		}
	}
	if err := h.svc.UpdateBookingStatus(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Booking status updated"})
}

func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var t catalog.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateTestimonial(r.Context(), &t)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Testimonial submitted for approval", "testimonial_id": id})
}

func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.ListApprovedTestimonials(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if ts == nil {
		ts = []catalog.Testimonial{}
	}
	writeJSON(w, ts)
}

func (h *Handler) ListPendingTestimonials(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.ListPendingTestimonials(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if ts == nil {
		ts = []catalog.Testimonial{}
	}
	writeJSON(w, ts)
}

func (h *Handler) ApproveTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ApproveTestimonial(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Testimonial approved"})
}

func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.ListGallery(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if images == nil {
		images = []catalog.GalleryImage{}
	}
	writeJSON(w, images)
}

func (h *Handler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	var img catalog.GalleryImage
	if err := json.NewDecoder(r.Body).Decode(&img); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.svc.AddGalleryImage(r.Context(), &img)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Image added", "id": id})
}

func (h *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGalleryImage(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Image deleted"})
}

func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.svc.ListActiveOffers(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if offers == nil {
		offers = []catalog.SpecialOffer{}
	}
	writeJSON(w, offers)
}

func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var o catalog.SpecialOffer
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, err := h.svc.CreateOffer(r.Context(), &o)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Offer created", "id": id})
}

func (h *Handler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	var o catalog.SpecialOffer
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.svc.UpdateOffer(r.Context(), chi.URLParam(r, "id"), &o); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Offer updated"})
}
