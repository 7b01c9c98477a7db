package handler

import (
	"github.com/wedora/backend/internal/server"
	"github.com/wedora/backend/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Services *ServicesHandler
	Users    *UsersHandler
	Bookings *BookingsHandler
	Payments *PaymentsHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Services: NewServicesHandler(s, services.Catalog),
		Users:    NewUsersHandler(s, services.User),
		Bookings: NewBookingsHandler(s, services.Booking),
		Payments: NewPaymentsHandler(s, services.Payment),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
