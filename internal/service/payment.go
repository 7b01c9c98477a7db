package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/errs"
	"github.com/wedora/backend/internal/lib/checkout"
	"github.com/wedora/backend/internal/lib/job"
	"github.com/wedora/backend/internal/repository"
	"github.com/wedora/backend/internal/sqlerr"
)

// Settlement outcome messages shown to the customer.
const (
	MsgPaymentNotCompleted     = "Payment not completed"
	MsgPaymentAlreadyProcessed = "Payment already processed"
	MsgPaymentRecorded         = "Payment recorded successfully"
)

// CheckoutClient is the checkout provider surface the payment service
// needs.
type CheckoutClient interface {
	CreateSession(ctx context.Context, in checkout.CreateSessionInput) (*checkout.Session, error)
	GetSession(ctx context.Context, id string) (*checkout.Session, error)
}

// PaymentStore is the storage surface the payment service needs.
type PaymentStore interface {
	GetByTransactionID(ctx context.Context, txID string) (*domain.Payment, error)
	ListByCustomer(ctx context.Context, email string) ([]domain.Payment, error)
	RecordSettlement(ctx context.Context, p *domain.Payment) (*repository.SettlementRecord, error)
}

// ReceiptEnqueuer schedules the receipt email after settlement.
type ReceiptEnqueuer interface {
	EnqueuePaymentReceipt(p job.PaymentReceiptPayload) error
}

// CheckoutResult carries the hosted checkout redirect for the client.
type CheckoutResult struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// SettlementResult is the outcome of confirming a checkout session.
// Confirmation is idempotent: settling the same session again reports the
// original tracking id without writing anything.
type SettlementResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TrackingID    string `json:"trackingId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	PaymentID     string `json:"paymentId,omitempty"`
}

// PaymentService drives the checkout and settlement flow.
type PaymentService struct {
	checkout CheckoutClient
	store    PaymentStore
	bookings BookingStore
	catalog  CatalogStore
	jobs     ReceiptEnqueuer
	logger   *zerolog.Logger
}

func NewPaymentService(
	checkoutClient CheckoutClient,
	store PaymentStore,
	bookings BookingStore,
	catalog CatalogStore,
	jobs ReceiptEnqueuer,
	logger *zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		checkout: checkoutClient,
		store:    store,
		bookings: bookings,
		catalog:  catalog,
		jobs:     jobs,
		logger:   logger,
	}
}

// CreateCheckoutSession opens a hosted checkout session for a booking.
// The price comes from the catalog, never from the client.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, bookingID string) (*CheckoutResult, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	svc, err := s.catalog.GetByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, err
	}

	sess, err := s.checkout.CreateSession(ctx, checkout.CreateSessionInput{
		BookingID:   booking.ID,
		ServiceName: booking.ServiceName,
		UserEmail:   booking.UserEmail,
		Cost:        svc.Price,
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// ConfirmCheckout verifies a checkout session with the provider and, when
// paid, settles it: the booking flips to Paid and a payment record is
// written, both in one transaction. Repeat confirmations for the same
// session return the original tracking id and write nothing.
func (s *PaymentService) ConfirmCheckout(ctx context.Context, sessionID string) (*SettlementResult, error) {
	sess, err := s.checkout.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.Paid() {
		return &SettlementResult{
			Success: false,
			Message: MsgPaymentNotCompleted,
		}, nil
	}

	if sess.BookingID == "" {
		return nil, errs.NewBadRequestError("Checkout session has no booking reference", false, nil, nil, nil)
	}

	// Fast path: a record for this transaction means settlement already
	// happened.
	if existing, err := s.store.GetByTransactionID(ctx, sess.TransactionID); err != nil {
		return nil, err
	} else if existing != nil {
		return &SettlementResult{
			Success:       true,
			Message:       MsgPaymentAlreadyProcessed,
			TrackingID:    existing.TrackingID,
			TransactionID: existing.TransactionID,
			PaymentID:     existing.ID,
		}, nil
	}

	payment := &domain.Payment{
		BookingID:     sess.BookingID,
		TransactionID: sess.TransactionID,
		TrackingID:    NewTrackingID(time.Now()),
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      sess.Currency,
		CustomerEmail: sess.CustomerEmail,
		ServiceName:   sess.ServiceName,
		Status:        sess.PaymentStatus,
		PaidAt:        time.Now().UTC(),
	}

	rec, err := s.store.RecordSettlement(ctx, payment)
	if err != nil {
		// A concurrent confirmation may have inserted the record between
		// the fast path read and our transaction. The winner's tracking
		// id is the answer.
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			winner, rerr := s.store.GetByTransactionID(ctx, sess.TransactionID)
			if rerr != nil {
				return nil, rerr
			}
			if winner != nil {
				return &SettlementResult{
					Success:       true,
					Message:       MsgPaymentAlreadyProcessed,
					TrackingID:    winner.TrackingID,
					TransactionID: winner.TransactionID,
					PaymentID:     winner.ID,
				}, nil
			}
		}
		return nil, err
	}

	if rec.AlreadySettled {
		// The booking was settled through a different session, so there is
		// no payment record for this transaction id to name.
		return &SettlementResult{
			Success:       true,
			Message:       MsgPaymentAlreadyProcessed,
			TrackingID:    rec.TrackingID,
			TransactionID: sess.TransactionID,
		}, nil
	}

	if err := s.jobs.EnqueuePaymentReceipt(job.PaymentReceiptPayload{
		To:          payment.CustomerEmail,
		ServiceName: payment.ServiceName,
		TrackingID:  payment.TrackingID,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
	}); err != nil {
		s.logger.Error().Err(err).
			Str("tracking_id", payment.TrackingID).
			Msg("failed to enqueue receipt email")
	}

	s.logger.Info().
		Str("booking_id", payment.BookingID).
		Str("transaction_id", payment.TransactionID).
		Str("tracking_id", payment.TrackingID).
		Msg("payment settled")

	return &SettlementResult{
		Success:       true,
		Message:       MsgPaymentRecorded,
		TrackingID:    payment.TrackingID,
		TransactionID: payment.TransactionID,
		PaymentID:     rec.PaymentID,
	}, nil
}

// History returns the caller's payment records. The result is always
// scoped to the verified email from authentication; a filter naming a
// different email is rejected rather than honored.
func (s *PaymentService) History(ctx context.Context, filterEmail, verifiedEmail string) ([]domain.Payment, error) {
	if filterEmail != "" && filterEmail != verifiedEmail {
		return nil, errs.NewForbiddenError("Cannot view another user's payment history", true)
	}

	return s.store.ListByCustomer(ctx, verifiedEmail)
}
