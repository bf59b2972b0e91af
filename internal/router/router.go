package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/spicehouse/restaurant-backend/internal/catalog"
	"github.com/spicehouse/restaurant-backend/internal/logger"
	"github.com/spicehouse/restaurant-backend/internal/middleware"
	"github.com/spicehouse/restaurant-backend/internal/order"
	"github.com/spicehouse/restaurant-backend/internal/payment"
	"github.com/spicehouse/restaurant-backend/internal/user"
)

func NewRouter(
	userH *user.Handler,
	orderH *order.Handler,
	paymentH *payment.Handler,
	catalogH *catalog.Handler,
	jwtSecret []byte,
	userRepo user.UserRepository,
) chi.Router {
	r := chi.NewRouter()

	r.Use(logger.WithLogging)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.GzipHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", userH.Register)
		r.Post("/auth/login", userH.Login)

		r.Get("/restaurant/info", catalogH.GetRestaurantInfo)
		r.Get("/menu/categories", catalogH.ListMenuCategories)

		r.Post("/orders", orderH.CreateOrder)
		r.Get("/orders/{id}", orderH.GetOrder)

		r.Post("/payment/create-order", paymentH.CreatePaymentOrder)
		r.Post("/payment/verify", paymentH.VerifyPayment)
		r.Post("/payment/webhook", paymentH.Webhook)

		r.Post("/bookings", catalogH.CreateBooking)
		r.Get("/testimonials", catalogH.ListTestimonials)
		r.Post("/testimonials", catalogH.CreateTestimonial)
		r.Get("/gallery", catalogH.ListGallery)
		r.Get("/offers", catalogH.ListOffers)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminOnly(jwtSecret, userRepo))

			r.Get("/orders", orderH.ListOrders)
			r.Put("/orders/{id}/status", orderH.UpdateStatus)

			r.Put("/restaurant/info", catalogH.UpdateRestaurantInfo)
			r.Post("/menu/category", catalogH.CreateMenuCategory)
			r.Post("/menu/item", catalogH.AddMenuItem)
			r.Put("/menu/item/{id}", catalogH.UpdateMenuItem)
			r.Delete("/menu/item/{id}", catalogH.DeleteMenuItem)

			r.Get("/bookings", catalogH.ListBookings)
			r.Put("/bookings/{id}/status", catalogH.UpdateBookingStatus)

			r.Get("/testimonials/pending", catalogH.ListPendingTestimonials)
			r.Put("/testimonials/{id}/approve", catalogH.ApproveTestimonial)

			r.Post("/gallery", catalogH.AddGalleryImage)
			r.Delete("/gallery/{id}", catalogH.DeleteGalleryImage)

			r.Post("/offers", catalogH.CreateOffer)
			r.Put("/offers/{id}", catalogH.UpdateOffer)
		})
	})

	return r
}
