package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/server"
	"github.com/wedora/backend/internal/service"
)

// validate is the shared validator instance for request payloads.
var validate = validator.New()

// ServicesHandler serves the event service catalog endpoints.
type ServicesHandler struct {
	Handler
	catalog *service.CatalogService
}

func NewServicesHandler(s *server.Server, catalog *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// CreateServiceRequest is the payload for registering a service offering.
type CreateServiceRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=200"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Description   string  `json:"description" validate:"omitempty,max=5000"`
	ProviderName  string  `json:"providerName" validate:"omitempty,max=200"`
	ProviderEmail string  `json:"providerEmail" validate:"omitempty,email"`
	ImageURL      string  `json:"imageUrl" validate:"omitempty,url"`
}

func (r *CreateServiceRequest) Validate() error {
	return validate.Struct(r)
}

// ListServicesRequest is the (empty) payload for catalog listings.
type ListServicesRequest struct{}

func (r *ListServicesRequest) Validate() error {
	return nil
}

// GetServiceRequest identifies one service by path parameter.
type GetServiceRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetServiceRequest) Validate() error {
	return validate.Struct(r)
}

// CreateService registers a new service offering.
func (h *ServicesHandler) CreateService(c echo.Context, req *CreateServiceRequest) (*domain.Service, error) {
	return h.catalog.Create(c.Request().Context(), &domain.Service{
		Name:          req.Name,
		Price:         req.Price,
		Description:   req.Description,
		ProviderName:  req.ProviderName,
		ProviderEmail: req.ProviderEmail,
		ImageURL:      req.ImageURL,
	})
}

// ListServices returns the full catalog.
func (h *ServicesHandler) ListServices(c echo.Context, _ *ListServicesRequest) ([]domain.Service, error) {
	return h.catalog.List(c.Request().Context())
}

// ListTopServices returns the highlighted services for the landing page.
func (h *ServicesHandler) ListTopServices(c echo.Context, _ *ListServicesRequest) ([]domain.Service, error) {
	return h.catalog.ListTop(c.Request().Context())
}

// GetService returns one service by id.
func (h *ServicesHandler) GetService(c echo.Context, req *GetServiceRequest) (*domain.Service, error) {
	return h.catalog.Get(c.Request().Context(), req.ID)
}
