package service

import (
	"github.com/wedora/backend/internal/lib/checkout"
	"github.com/wedora/backend/internal/lib/job"
	"github.com/wedora/backend/internal/repository"
	"github.com/wedora/backend/internal/server"
)

// Services groups the business logic components for handler wiring.
type Services struct {
	Catalog *CatalogService
	User    *UserService
	Booking *BookingService
	Payment *PaymentService
	Job     *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	checkoutClient := checkout.NewClient(s.Config, s.Logger)

	catalogService := NewCatalogService(repos.Services, s.Logger)
	userService := NewUserService(repos.Users, s.Job, s.Logger)
	bookingService := NewBookingService(repos.Bookings, repos.Services, s.Logger)
	paymentService := NewPaymentService(checkoutClient, repos.Payments, repos.Bookings, repos.Services, s.Job, s.Logger)

	return &Services{
		Catalog: catalogService,
		User:    userService,
		Booking: bookingService,
		Payment: paymentService,
		Job:     s.Job,
	}, nil
}
