package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wedora/backend/internal/domain"
)

func newBookingService(t *testing.T) (*BookingService, *memStore, *domain.Service) {
	t.Helper()

	store := newMemStore()
	nop := zerolog.Nop()
	svc := NewBookingService(bookingStore{store}, store, &nop)

	catalog, err := store.Create(context.Background(), &domain.Service{
		Name:  "Venue Decoration",
		Price: 900,
	})
	require.NoError(t, err)

	return svc, store, catalog
}

func TestCreateBookingConfirms(t *testing.T) {
	svc, _, catalog := newBookingService(t)

	res, err := svc.Create(context.Background(), catalog.ID, "2026-10-01", "alice@example.com")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, MsgBookingConfirmed, res.Message)
	require.NotNil(t, res.Booking)
	assert.Equal(t, catalog.ID, res.Booking.ServiceID)
	assert.Equal(t, "Venue Decoration", res.Booking.ServiceName)
	assert.Equal(t, domain.PaymentStatusUnpaid, res.Booking.Status)
}

func TestCreateBookingDateConflict(t *testing.T) {
	svc, _, catalog := newBookingService(t)

	first, err := svc.Create(context.Background(), catalog.ID, "2026-10-01", "alice@example.com")
	require.NoError(t, err)
	require.True(t, first.Success)

	// Second attempt for the same service and date, even by another user,
	// reports the conflict instead of failing with a transport error.
	second, err := svc.Create(context.Background(), catalog.ID, "2026-10-01", "bob@example.com")
	require.NoError(t, err)

	assert.False(t, second.Success)
	assert.Equal(t, MsgBookingConflict, second.Message)
	assert.Nil(t, second.Booking)
}

func TestCreateBookingDifferentDatesAllowed(t *testing.T) {
	svc, _, catalog := newBookingService(t)

	first, err := svc.Create(context.Background(), catalog.ID, "2026-10-01", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, first.Success)

	second, err := svc.Create(context.Background(), catalog.ID, "2026-10-02", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, second.Success)
}

func TestCreateBookingUnknownService(t *testing.T) {
	svc, _, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), "5e0df8a1-0000-0000-0000-000000000000", "2026-10-01", "alice@example.com")
	assert.Error(t, err)
}

func TestBookedDates(t *testing.T) {
	svc, _, catalog := newBookingService(t)

	for _, date := range []string{"2026-10-03", "2026-10-01"} {
		res, err := svc.Create(context.Background(), catalog.ID, date, "alice@example.com")
		require.NoError(t, err)
		require.True(t, res.Success)
	}

	dates, err := svc.BookedDates(context.Background(), catalog.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-01", "2026-10-03"}, dates)
}

func TestDeleteBookingIsIdempotent(t *testing.T) {
	svc, store, catalog := newBookingService(t)

	res, err := svc.Create(context.Background(), catalog.ID, "2026-10-01", "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), res.Booking.ID))
	assert.Empty(t, store.bookings)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, svc.Delete(context.Background(), res.Booking.ID))
}
