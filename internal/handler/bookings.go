package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/server"
	"github.com/wedora/backend/internal/service"
)

// BookingsHandler serves the reservation endpoints.
type BookingsHandler struct {
	Handler
	bookings *service.BookingService
}

func NewBookingsHandler(s *server.Server, bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{
		Handler:  NewHandler(s),
		bookings: bookings,
	}
}

// CreateBookingRequest reserves a service for one calendar day.
type CreateBookingRequest struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

func (r *CreateBookingRequest) Validate() error {
	return validate.Struct(r)
}

// ListBookingsRequest optionally narrows the listing to one user's email.
type ListBookingsRequest struct {
	Email string `query:"email" validate:"omitempty,email"`
}

func (r *ListBookingsRequest) Validate() error {
	return validate.Struct(r)
}

// BookingIDRequest identifies one booking by path parameter.
type BookingIDRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *BookingIDRequest) Validate() error {
	return validate.Struct(r)
}

// BookedDatesRequest identifies the service whose occupied dates to list.
type BookedDatesRequest struct {
	ServiceID string `param:"serviceId" validate:"required,uuid"`
}

func (r *BookedDatesRequest) Validate() error {
	return validate.Struct(r)
}

// CreateBooking attempts to reserve the slot. A date conflict comes back
// as a structured result with success false, not as an error status.
func (h *BookingsHandler) CreateBooking(c echo.Context, req *CreateBookingRequest) (*service.BookingResult, error) {
	return h.bookings.Create(c.Request().Context(), req.ServiceID, req.Date, req.UserEmail)
}

// ListBookings returns bookings newest first.
func (h *BookingsHandler) ListBookings(c echo.Context, req *ListBookingsRequest) ([]domain.Booking, error) {
	return h.bookings.List(c.Request().Context(), req.Email)
}

// GetBooking returns one booking by id.
func (h *BookingsHandler) GetBooking(c echo.Context, req *BookingIDRequest) (*domain.Booking, error) {
	return h.bookings.Get(c.Request().Context(), req.ID)
}

// DeleteBooking cancels a booking.
func (h *BookingsHandler) DeleteBooking(c echo.Context, req *BookingIDRequest) error {
	return h.bookings.Delete(c.Request().Context(), req.ID)
}

// BookedDates lists the occupied dates for a service.
func (h *BookingsHandler) BookedDates(c echo.Context, req *BookedDatesRequest) ([]string, error) {
	return h.bookings.BookedDates(c.Request().Context(), req.ServiceID)
}
