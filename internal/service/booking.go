package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/sqlerr"
)

// Booking outcome messages shown to the customer.
const (
	MsgBookingConfirmed = "Booking confirmed successfully!"
	MsgBookingConflict  = "You already booked this service for same date. Please pick another date"
)

// BookingStore is the storage surface the booking service needs.
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, email string) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	BookedDates(ctx context.Context, serviceID string) ([]string, error)
}

// BookingResult is the structured outcome of a booking attempt. A date
// conflict is a business outcome, not a transport error, so it comes back
// with Success false rather than a non-2xx status.
type BookingResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking,omitempty"`
}

// BookingService manages service reservations.
type BookingService struct {
	store   BookingStore
	catalog CatalogStore
	logger  *zerolog.Logger
}

func NewBookingService(store BookingStore, catalog CatalogStore, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Create reserves a service for a date. The (service, date) uniqueness is
// decided by the storage constraint; when another booking already holds
// the slot the attempt reports a conflict result. Under concurrent
// attempts for the same slot exactly one insert succeeds.
func (s *BookingService) Create(ctx context.Context, serviceID, date, userEmail string) (*BookingResult, error) {
	svc, err := s.catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Date:        date,
		UserEmail:   userEmail,
	}

	created, err := s.store.Create(ctx, booking)
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			return &BookingResult{
				Success: false,
				Message: MsgBookingConflict,
			}, nil
		}
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("service_id", created.ServiceID).
		Str("date", created.Date).
		Msg("booking created")

	return &BookingResult{
		Success: true,
		Message: MsgBookingConfirmed,
		Booking: created,
	}, nil
}

// List returns bookings newest first, optionally filtered to one user's
// email.
func (s *BookingService) List(ctx context.Context, email string) ([]domain.Booking, error) {
	return s.store.List(ctx, email)
}

// Get returns one booking by id.
func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.store.GetByID(ctx, id)
}

// Delete cancels a booking. Deleting an unknown id is a no-op.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// BookedDates returns the dates already taken for a service so clients
// can grey them out before attempting a booking.
func (s *BookingService) BookedDates(ctx context.Context, serviceID string) ([]string, error) {
	return s.store.BookedDates(ctx, serviceID)
}
