package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wedora/backend/internal/domain"
)

// topServicesLimit is how many services the landing page highlight shows.
const topServicesLimit = 4

// CatalogStore is the storage surface the catalog service needs.
type CatalogStore interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	ListTop(ctx context.Context, limit int) ([]domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// CatalogService manages the event services offered on the platform.
type CatalogService struct {
	store  CatalogStore
	logger *zerolog.Logger
}

func NewCatalogService(store CatalogStore, logger *zerolog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

// Create registers a new service offering.
func (s *CatalogService) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	created, err := s.store.Create(ctx, svc)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("service_id", created.ID).
		Str("name", created.Name).
		Msg("service created")

	return created, nil
}

// List returns the full catalog.
func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.store.List(ctx)
}

// ListTop returns the highlighted services for the landing page.
func (s *CatalogService) ListTop(ctx context.Context) ([]domain.Service, error) {
	return s.store.ListTop(ctx, topServicesLimit)
}

// Get returns one service by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.store.GetByID(ctx, id)
}
