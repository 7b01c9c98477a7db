package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wedora/backend/internal/handler"
	"github.com/wedora/backend/internal/middleware"
)

// registerAPIRoutes maps the business endpoints. Payment history is the
// only route behind authentication; everything else trusts the payloads
// it validates.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	// Catalog.
	r.POST("/add-service", handler.Handle(h.Services.Handler, h.Services.CreateService, http.StatusCreated))
	r.GET("/services", handler.Handle(h.Services.Handler, h.Services.ListServices, http.StatusOK))
	r.GET("/top-services", handler.Handle(h.Services.Handler, h.Services.ListTopServices, http.StatusOK))
	r.GET("/services/:id", handler.Handle(h.Services.Handler, h.Services.GetService, http.StatusOK))

	// Accounts.
	r.POST("/users", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusOK))
	r.GET("/users", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK))

	// Bookings.
	r.POST("/bookings", handler.Handle(h.Bookings.Handler, h.Bookings.CreateBooking, http.StatusOK))
	r.GET("/bookings", handler.Handle(h.Bookings.Handler, h.Bookings.ListBookings, http.StatusOK))
	r.GET("/bookings/:id", handler.Handle(h.Bookings.Handler, h.Bookings.GetBooking, http.StatusOK))
	r.DELETE("/bookings/:id", handler.HandleNoContent(h.Bookings.Handler, h.Bookings.DeleteBooking, http.StatusNoContent))
	r.GET("/booked-dates/:serviceId", handler.Handle(h.Bookings.Handler, h.Bookings.BookedDates, http.StatusOK))

	// Payments.
	r.POST("/create-checkout-session", handler.Handle(h.Payments.Handler, h.Payments.CreateCheckoutSession, http.StatusOK))
	r.PATCH("/payment-success", handler.Handle(h.Payments.Handler, h.Payments.ConfirmPayment, http.StatusOK))
	r.GET("/payments", handler.Handle(h.Payments.Handler, h.Payments.ListPayments, http.StatusOK), m.Auth.RequireAuth)
}
