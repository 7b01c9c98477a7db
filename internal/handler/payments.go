package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/middleware"
	"github.com/wedora/backend/internal/server"
	"github.com/wedora/backend/internal/service"
)

// PaymentsHandler serves the checkout and settlement endpoints.
type PaymentsHandler struct {
	Handler
	payments *service.PaymentService
}

func NewPaymentsHandler(s *server.Server, payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{
		Handler:  NewHandler(s),
		payments: payments,
	}
}

// CreateCheckoutSessionRequest opens a hosted checkout for a booking.
type CreateCheckoutSessionRequest struct {
	BookingID string `json:"bookingId" validate:"required,uuid"`
}

func (r *CreateCheckoutSessionRequest) Validate() error {
	return validate.Struct(r)
}

// ConfirmPaymentRequest carries the checkout session to verify and settle.
type ConfirmPaymentRequest struct {
	SessionID string `query:"session_id" validate:"required"`
}

func (r *ConfirmPaymentRequest) Validate() error {
	return validate.Struct(r)
}

// ListPaymentsRequest optionally filters the history by email. The filter
// may only name the caller's own verified email.
type ListPaymentsRequest struct {
	Email string `query:"email" validate:"omitempty,email"`
}

func (r *ListPaymentsRequest) Validate() error {
	return validate.Struct(r)
}

// CreateCheckoutSession returns the hosted checkout redirect for a booking.
func (h *PaymentsHandler) CreateCheckoutSession(c echo.Context, req *CreateCheckoutSessionRequest) (*service.CheckoutResult, error) {
	return h.payments.CreateCheckoutSession(c.Request().Context(), req.BookingID)
}

// ConfirmPayment verifies the checkout session with the provider and
// settles it. Safe to call repeatedly for the same session.
func (h *PaymentsHandler) ConfirmPayment(c echo.Context, req *ConfirmPaymentRequest) (*service.SettlementResult, error) {
	return h.payments.ConfirmCheckout(c.Request().Context(), req.SessionID)
}

// ListPayments returns the authenticated caller's payment history, scoped
// to the verified email resolved by the auth middleware.
func (h *PaymentsHandler) ListPayments(c echo.Context, req *ListPaymentsRequest) ([]domain.Payment, error) {
	verifiedEmail := middleware.GetUserEmail(c)
	return h.payments.History(c.Request().Context(), req.Email, verifiedEmail)
}
