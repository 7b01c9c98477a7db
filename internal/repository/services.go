package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/server"
)

// ServicesRepository persists event service records.
type ServicesRepository struct {
	pool *pgxpool.Pool
}

func NewServicesRepository(s *server.Server) *ServicesRepository {
	return &ServicesRepository{pool: s.DB.Pool}
}

const serviceColumns = `id, name, price, description, provider_name, provider_email, image_url, created_at`

func scanService(row pgx.Row) (*domain.Service, error) {
	var svc domain.Service
	var description, providerName, providerEmail, imageURL *string

	err := row.Scan(&svc.ID, &svc.Name, &svc.Price, &description, &providerName, &providerEmail, &imageURL, &svc.CreatedAt)
	if err != nil {
		return nil, err
	}

	if description != nil {
		svc.Description = *description
	}
	if providerName != nil {
		svc.ProviderName = *providerName
	}
	if providerEmail != nil {
		svc.ProviderEmail = *providerEmail
	}
	if imageURL != nil {
		svc.ImageURL = *imageURL
	}

	return &svc, nil
}

// Create inserts a service and returns it with the store-assigned id.
func (r *ServicesRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO services (name, price, description, provider_name, provider_email, image_url)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''))
		RETURNING `+serviceColumns,
		svc.Name, svc.Price, svc.Description, svc.ProviderName, svc.ProviderEmail, svc.ImageURL,
	)

	created, err := scanService(row)
	if err != nil {
		return nil, wrapErr("services", err)
	}
	return created, nil
}

// List returns all services, newest first.
func (r *ServicesRepository) List(ctx context.Context) ([]domain.Service, error) {
	return r.list(ctx, 0)
}

// ListTop returns the first `limit` services by creation time descending.
func (r *ServicesRepository) ListTop(ctx context.Context, limit int) ([]domain.Service, error) {
	return r.list(ctx, limit)
}

func (r *ServicesRepository) list(ctx context.Context, limit int) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("services", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, wrapErr("services", err)
		}
		services = append(services, *svc)
	}

	return services, wrapErr("services", rows.Err())
}

// GetByID returns one service by its store id.
func (r *ServicesRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id)

	svc, err := scanService(row)
	if err != nil {
		return nil, wrapErr("services", err)
	}
	return svc, nil
}
