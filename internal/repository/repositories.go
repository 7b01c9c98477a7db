package repository

import (
	"github.com/wedora/backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Services *ServicesRepository
	Users    *UsersRepository
	Bookings *BookingsRepository
	Payments *PaymentsRepository
}

// NewRepositories constructs the repository container on top of the shared
// connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Services: NewServicesRepository(s),
		Users:    NewUsersRepository(s),
		Bookings: NewBookingsRepository(s),
		Payments: NewPaymentsRepository(s),
	}
}
