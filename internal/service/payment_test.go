package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/errs"
	"github.com/wedora/backend/internal/lib/checkout"
	"github.com/wedora/backend/internal/repository"
)

type paymentFixture struct {
	store    *memStore
	checkout *fakeCheckout
	jobs     *fakeJobs
	svc      *PaymentService
	booking  *domain.Booking
	service  *domain.Service
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	store := newMemStore()
	co := newFakeCheckout()
	jobs := &fakeJobs{}
	nop := zerolog.Nop()

	svc := NewPaymentService(co, paymentStore{store}, bookingStore{store}, store, jobs, &nop)

	catalog, err := store.Create(context.Background(), &domain.Service{
		Name:  "Wedding Photography",
		Price: 1500,
	})
	require.NoError(t, err)

	booking, err := bookingStore{store}.Create(context.Background(), &domain.Booking{
		ServiceID:   catalog.ID,
		ServiceName: catalog.Name,
		Date:        "2026-09-12",
		UserEmail:   "guest@example.com",
	})
	require.NoError(t, err)

	return &paymentFixture{
		store:    store,
		checkout: co,
		jobs:     jobs,
		svc:      svc,
		booking:  booking,
		service:  catalog,
	}
}

func TestCreateCheckoutSessionUsesCatalogPrice(t *testing.T) {
	f := newPaymentFixture(t)

	res, err := f.svc.CreateCheckoutSession(context.Background(), f.booking.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionID)
	assert.NotEmpty(t, res.URL)

	require.Len(t, f.checkout.created, 1)
	in := f.checkout.created[0]
	assert.Equal(t, f.booking.ID, in.BookingID)
	assert.Equal(t, "Wedding Photography", in.ServiceName)
	assert.Equal(t, "guest@example.com", in.UserEmail)
	assert.Equal(t, 1500.0, in.Cost)
}

func TestCreateCheckoutSessionUnknownBooking(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.CreateCheckoutSession(context.Background(), "b2f7f0f0-0000-0000-0000-000000000000")
	assert.Error(t, err)
}

func TestConfirmCheckoutSettlesPaidSession(t *testing.T) {
	f := newPaymentFixture(t)

	res, err := f.svc.CreateCheckoutSession(context.Background(), f.booking.ID)
	require.NoError(t, err)

	f.checkout.markPaid(res.SessionID, "pi_12345")

	out, err := f.svc.ConfirmCheckout(context.Background(), res.SessionID)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, MsgPaymentRecorded, out.Message)
	assert.Regexp(t, trackingIDPattern, out.TrackingID)
	assert.Equal(t, "pi_12345", out.TransactionID)
	assert.NotEmpty(t, out.PaymentID)

	booking := f.store.bookings[f.booking.ID]
	assert.Equal(t, domain.PaymentStatusPaid, booking.Status)
	assert.Equal(t, out.TrackingID, booking.TrackingID)

	payment := f.store.payments["pi_12345"]
	require.NotNil(t, payment)
	assert.Equal(t, f.booking.ID, payment.BookingID)
	assert.Equal(t, out.TrackingID, payment.TrackingID)
	assert.Equal(t, 1500.0, payment.Amount)
	assert.Equal(t, checkout.Currency, payment.Currency)
	assert.Equal(t, "guest@example.com", payment.CustomerEmail)

	require.Len(t, f.jobs.receipts, 1)
	assert.Equal(t, out.TrackingID, f.jobs.receipts[0].TrackingID)
	assert.Equal(t, "guest@example.com", f.jobs.receipts[0].To)
}

func TestConfirmCheckoutIsIdempotent(t *testing.T) {
	f := newPaymentFixture(t)

	res, err := f.svc.CreateCheckoutSession(context.Background(), f.booking.ID)
	require.NoError(t, err)

	f.checkout.markPaid(res.SessionID, "pi_67890")

	first, err := f.svc.ConfirmCheckout(context.Background(), res.SessionID)
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := f.svc.ConfirmCheckout(context.Background(), res.SessionID)
	require.NoError(t, err)

	assert.True(t, second.Success)
	assert.Equal(t, MsgPaymentAlreadyProcessed, second.Message)
	assert.Equal(t, first.TrackingID, second.TrackingID)
	assert.Equal(t, first.PaymentID, second.PaymentID)
	assert.Equal(t, "pi_67890", second.TransactionID)

	// Exactly one payment record and one receipt email.
	assert.Len(t, f.store.payments, 1)
	assert.Len(t, f.jobs.receipts, 1)
}

// contendedStore simulates a concurrent confirmation landing between the
// fast-path read and the settlement transaction: the first read misses,
// settlement fails with a unique violation and the re-read returns the
// winner's record.
type contendedStore struct {
	paymentStore
	winner *domain.Payment
	reads  int
}

func (s *contendedStore) GetByTransactionID(ctx context.Context, txID string) (*domain.Payment, error) {
	s.reads++
	if s.reads == 1 {
		return nil, nil
	}
	return s.winner, nil
}

func (s *contendedStore) RecordSettlement(ctx context.Context, p *domain.Payment) (*repository.SettlementRecord, error) {
	return nil, uniqueViolation("payments", "payments_transaction_id_key")
}

func TestConfirmCheckoutConcurrentDuplicateReturnsWinner(t *testing.T) {
	f := newPaymentFixture(t)

	res, err := f.svc.CreateCheckoutSession(context.Background(), f.booking.ID)
	require.NoError(t, err)
	f.checkout.markPaid(res.SessionID, "pi_race")

	winner := &domain.Payment{
		ID:            uuid.NewString(),
		BookingID:     f.booking.ID,
		TransactionID: "pi_race",
		TrackingID:    "WEDORA-20260912-0AB12C",
	}
	store := &contendedStore{paymentStore: paymentStore{f.store}, winner: winner}
	nop := zerolog.Nop()
	svc := NewPaymentService(f.checkout, store, bookingStore{f.store}, f.store, f.jobs, &nop)

	out, err := svc.ConfirmCheckout(context.Background(), res.SessionID)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, MsgPaymentAlreadyProcessed, out.Message)
	assert.Equal(t, winner.TrackingID, out.TrackingID)
	assert.Equal(t, winner.ID, out.PaymentID)
	assert.Equal(t, "pi_race", out.TransactionID)

	// The losing confirmation must not send a second receipt.
	assert.Empty(t, f.jobs.receipts)
}

func TestConfirmCheckoutBookingAlreadySettled(t *testing.T) {
	f := newPaymentFixture(t)

	res, err := f.svc.CreateCheckoutSession(context.Background(), f.booking.ID)
	require.NoError(t, err)
	f.checkout.markPaid(res.SessionID, "pi_second_session")

	// The booking was settled through an earlier session, so no payment
	// record exists for this transaction id and the conditional update
	// touches zero rows.
	booking := f.store.bookings[f.booking.ID]
	booking.Status = domain.PaymentStatusPaid
	booking.TrackingID = "WEDORA-20260911-00FF00"

	out, err := f.svc.ConfirmCheckout(context.Background(), res.SessionID)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, MsgPaymentAlreadyProcessed, out.Message)
	assert.Equal(t, "WEDORA-20260911-00FF00", out.TrackingID)
	assert.Equal(t, "pi_second_session", out.TransactionID)
	assert.Empty(t, out.PaymentID)

	// No payment written, no receipt sent.
	assert.Empty(t, f.store.payments)
	assert.Empty(t, f.jobs.receipts)
}

func TestConfirmCheckoutUnpaidSession(t *testing.T) {
	f := newPaymentFixture(t)

	res, err := f.svc.CreateCheckoutSession(context.Background(), f.booking.ID)
	require.NoError(t, err)

	out, err := f.svc.ConfirmCheckout(context.Background(), res.SessionID)
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Equal(t, MsgPaymentNotCompleted, out.Message)
	assert.Empty(t, out.TrackingID)

	// Nothing settled.
	assert.Equal(t, domain.PaymentStatusUnpaid, f.store.bookings[f.booking.ID].Status)
	assert.Empty(t, f.store.payments)
	assert.Empty(t, f.jobs.receipts)
}

func TestHistoryAlwaysScopedToVerifiedEmail(t *testing.T) {
	f := newPaymentFixture(t)

	res, err := f.svc.CreateCheckoutSession(context.Background(), f.booking.ID)
	require.NoError(t, err)
	f.checkout.markPaid(res.SessionID, "pi_list")
	_, err = f.svc.ConfirmCheckout(context.Background(), res.SessionID)
	require.NoError(t, err)

	// No filter: scoped to the verified email.
	payments, err := f.svc.History(context.Background(), "", "guest@example.com")
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	// Filter matching the verified email is allowed.
	payments, err = f.svc.History(context.Background(), "guest@example.com", "guest@example.com")
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	// Filter naming someone else is rejected, never honored.
	_, err = f.svc.History(context.Background(), "other@example.com", "guest@example.com")
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Status)
}
