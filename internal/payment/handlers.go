package payment

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/spicehouse/restaurant-backend/internal/types/payment"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	var req payment.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 || req.Currency == "" {
		http.Error(w, "amount and currency are required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.InitiatePayment(r.Context(), req.OrderID, req.Amount, req.Currency)
	switch {
	case err == nil:
	case errors.Is(err, ErrMissingCredentials):
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		http.Error(w, "error creating payment order: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req payment.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.VerifyPayment(r.Context(), req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	switch {
	case err == nil:
	case errors.Is(err, ErrSignatureMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrPaymentOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	default:
		http.Error(w, "error verifying payment: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message":    "Payment verified successfully",
		"payment_id": req.RazorpayPaymentID,
	})
}

func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	signature := r.Header.Get("X-Razorpay-Signature")

	err = h.svc.HandleWebhook(r.Context(), body, signature)
	switch {
	case err == nil:
	case errors.Is(err, ErrSignatureMismatch), errors.Is(err, ErrInvalidWebhook):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrMissingCredentials):
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		http.Error(w, "webhook error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "processed"})
}
