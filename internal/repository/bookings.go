package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/server"
)

// BookingsRepository persists bookings. The (service_id, booking_date)
// uniqueness lives in the bookings_service_id_booking_date_key constraint,
// so concurrent duplicate inserts cannot both succeed.
type BookingsRepository struct {
	pool *pgxpool.Pool
}

func NewBookingsRepository(s *server.Server) *BookingsRepository {
	return &BookingsRepository{pool: s.DB.Pool}
}

const bookingColumns = `id, service_id, service_name, booking_date, user_email, payment_status, tracking_id, created_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var trackingID *string

	err := row.Scan(&b.ID, &b.ServiceID, &b.ServiceName, &b.Date, &b.UserEmail, &b.Status, &trackingID, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	if trackingID != nil {
		b.TrackingID = *trackingID
	}

	return &b, nil
}

// Create inserts a booking in Unpaid state. A duplicate (service, date)
// pair surfaces as a *sqlerr.Error with Code UniqueViolation.
func (r *BookingsRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (service_id, service_name, booking_date, user_email)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bookingColumns,
		b.ServiceID, b.ServiceName, b.Date, b.UserEmail,
	)

	created, err := scanBooking(row)
	if err != nil {
		return nil, wrapErr("bookings", err)
	}
	return created, nil
}

// List returns bookings sorted by creation time descending, optionally
// filtered by the requesting user's email.
func (r *BookingsRepository) List(ctx context.Context, email string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}
	if email != "" {
		query += ` WHERE user_email = $1`
		args = append(args, email)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("bookings", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, wrapErr("bookings", err)
		}
		bookings = append(bookings, *b)
	}

	return bookings, wrapErr("bookings", rows.Err())
}

// GetByID returns one booking by its store id.
func (r *BookingsRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		return nil, wrapErr("bookings", err)
	}
	return b, nil
}

// Delete removes a booking unconditionally. Deleting a missing booking is
// not an error.
func (r *BookingsRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return wrapErr("bookings", err)
}

// BookedDates returns the occupied dates for a service.
func (r *BookingsRepository) BookedDates(ctx context.Context, serviceID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT booking_date FROM bookings WHERE service_id = $1 ORDER BY booking_date`, serviceID)
	if err != nil {
		return nil, wrapErr("bookings", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, wrapErr("bookings", err)
		}
		dates = append(dates, date)
	}

	return dates, wrapErr("bookings", rows.Err())
}
