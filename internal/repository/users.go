package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/server"
)

// UsersRepository persists user accounts. Email uniqueness is enforced by
// the users_email_key constraint, not by a pre-insert check.
type UsersRepository struct {
	pool *pgxpool.Pool
}

func NewUsersRepository(s *server.Server) *UsersRepository {
	return &UsersRepository{pool: s.DB.Pool}
}

const userColumns = `id, email, name, photo_url, role, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var name, photoURL *string

	err := row.Scan(&u.ID, &u.Email, &name, &photoURL, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	if name != nil {
		u.Name = *name
	}
	if photoURL != nil {
		u.PhotoURL = *photoURL
	}

	return &u, nil
}

// Create inserts a user. A duplicate email surfaces as a *sqlerr.Error
// with Code UniqueViolation.
func (r *UsersRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, name, photo_url)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		RETURNING `+userColumns,
		u.Email, u.Name, u.PhotoURL,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, wrapErr("users", err)
	}
	return created, nil
}

// List returns all users.
func (r *UsersRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, wrapErr("users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapErr("users", err)
		}
		users = append(users, *u)
	}

	return users, wrapErr("users", rows.Err())
}
