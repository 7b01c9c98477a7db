package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/server"
)

// PaymentsRepository persists payment records. Settlement writes the
// booking flip and the payment insert in one transaction so a crash
// between the two cannot leave a paid booking without its record.
type PaymentsRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentsRepository(s *server.Server) *PaymentsRepository {
	return &PaymentsRepository{pool: s.DB.Pool}
}

// SettlementRecord reports the outcome of RecordSettlement.
type SettlementRecord struct {
	PaymentID      string
	TrackingID     string
	BookingUpdated bool
	AlreadySettled bool
}

const paymentColumns = `id, booking_id, transaction_id, tracking_id, amount, currency, customer_email, service_name, payment_status, paid_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment

	err := row.Scan(
		&p.ID, &p.BookingID, &p.TransactionID, &p.TrackingID,
		&p.Amount, &p.Currency, &p.CustomerEmail, &p.ServiceName,
		&p.Status, &p.PaidAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// GetByTransactionID returns the payment for a checkout transaction, or
// (nil, nil) when no record exists yet.
func (r *PaymentsRepository) GetByTransactionID(ctx context.Context, txID string) (*domain.Payment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE transaction_id = $1`, txID)

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("payments", err)
	}
	return p, nil
}

// ListByCustomer returns a customer's payments, newest first.
func (r *PaymentsRepository) ListByCustomer(ctx context.Context, email string) ([]domain.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE customer_email = $1 ORDER BY paid_at DESC`, email)
	if err != nil {
		return nil, wrapErr("payments", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, wrapErr("payments", err)
		}
		payments = append(payments, *p)
	}

	return payments, wrapErr("payments", rows.Err())
}

// RecordSettlement marks the booking paid and inserts the payment record
// atomically. The booking update is conditional on the booking still being
// unpaid; when another settlement already won, the existing tracking id is
// returned with AlreadySettled set and nothing is written.
func (r *PaymentsRepository) RecordSettlement(ctx context.Context, p *domain.Payment) (*SettlementRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("payments", err)
	}
	defer tx.Rollback(ctx)

	var bookingID string
	err = tx.QueryRow(ctx, `
		UPDATE bookings
		SET payment_status = $1, tracking_id = $2
		WHERE id = $3 AND payment_status <> $1
		RETURNING id`,
		domain.PaymentStatusPaid, p.TrackingID, p.BookingID,
	).Scan(&bookingID)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, wrapErr("bookings", err)
		}

		// Zero rows means either the booking is gone or it is already
		// paid. Distinguish by reading it back.
		var existing *string
		err = tx.QueryRow(ctx, `SELECT tracking_id FROM bookings WHERE id = $1`, p.BookingID).Scan(&existing)
		if err != nil {
			return nil, wrapErr("bookings", err)
		}

		rec := &SettlementRecord{AlreadySettled: true}
		if existing != nil {
			rec.TrackingID = *existing
		}
		return rec, nil
	}

	var paymentID string
	err = tx.QueryRow(ctx, `
		INSERT INTO payments (booking_id, transaction_id, tracking_id, amount, currency, customer_email, service_name, payment_status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		p.BookingID, p.TransactionID, p.TrackingID,
		p.Amount, p.Currency, p.CustomerEmail, p.ServiceName,
		p.Status, p.PaidAt,
	).Scan(&paymentID)
	if err != nil {
		return nil, wrapErr("payments", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapErr("payments", err)
	}

	return &SettlementRecord{
		PaymentID:      paymentID,
		TrackingID:     p.TrackingID,
		BookingUpdated: true,
	}, nil
}
