package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/lib/checkout"
	"github.com/wedora/backend/internal/lib/job"
	"github.com/wedora/backend/internal/repository"
	"github.com/wedora/backend/internal/sqlerr"
)

// memStore is an in-memory stand-in for the repository layer. It mirrors
// the constraint behavior of the real store: duplicate (service, date)
// bookings, duplicate emails and duplicate transaction ids fail with a
// unique violation.
type memStore struct {
	services map[string]*domain.Service
	users    map[string]*domain.User
	bookings map[string]*domain.Booking
	payments map[string]*domain.Payment
}

func newMemStore() *memStore {
	return &memStore{
		services: map[string]*domain.Service{},
		users:    map[string]*domain.User{},
		bookings: map[string]*domain.Booking{},
		payments: map[string]*domain.Payment{},
	}
}

func uniqueViolation(table, constraint string) error {
	return &sqlerr.Error{
		Code:           sqlerr.UniqueViolation,
		TableName:      table,
		ConstraintName: constraint,
		Message:        "duplicate key value violates unique constraint " + constraint,
	}
}

func notFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}

// --- CatalogStore ---

func (m *memStore) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	cp := *svc
	cp.ID = uuid.NewString()
	m.services[cp.ID] = &cp
	return &cp, nil
}

func (m *memStore) List(ctx context.Context) ([]domain.Service, error) {
	out := []domain.Service{}
	for _, svc := range m.services {
		out = append(out, *svc)
	}
	return out, nil
}

func (m *memStore) ListTop(ctx context.Context, limit int) ([]domain.Service, error) {
	out, _ := m.List(ctx)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, notFound("services")
	}
	return svc, nil
}

// --- BookingStore ---

type bookingStore struct {
	*memStore
}

func (m bookingStore) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	for _, existing := range m.bookings {
		if existing.ServiceID == b.ServiceID && existing.Date == b.Date {
			return nil, uniqueViolation("bookings", "bookings_service_id_booking_date_key")
		}
	}

	cp := *b
	cp.ID = uuid.NewString()
	cp.Status = domain.PaymentStatusUnpaid
	m.bookings[cp.ID] = &cp
	return &cp, nil
}

func (m bookingStore) List(ctx context.Context, email string) ([]domain.Booking, error) {
	out := []domain.Booking{}
	for _, b := range m.bookings {
		if email == "" || b.UserEmail == email {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m bookingStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, notFound("bookings")
	}
	return b, nil
}

func (m bookingStore) Delete(ctx context.Context, id string) error {
	delete(m.bookings, id)
	return nil
}

func (m bookingStore) BookedDates(ctx context.Context, serviceID string) ([]string, error) {
	dates := []string{}
	for _, b := range m.bookings {
		if b.ServiceID == serviceID {
			dates = append(dates, b.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// --- UserStore ---

type userStore struct {
	*memStore
}

func (m userStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return nil, uniqueViolation("users", "users_email_key")
		}
	}

	cp := *u
	cp.ID = uuid.NewString()
	cp.Role = "user"
	m.users[cp.ID] = &cp
	return &cp, nil
}

func (m userStore) List(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

// --- PaymentStore ---

type paymentStore struct {
	*memStore
}

func (m paymentStore) GetByTransactionID(ctx context.Context, txID string) (*domain.Payment, error) {
	p, ok := m.payments[txID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (m paymentStore) ListByCustomer(ctx context.Context, email string) ([]domain.Payment, error) {
	out := []domain.Payment{}
	for _, p := range m.payments {
		if p.CustomerEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m paymentStore) RecordSettlement(ctx context.Context, p *domain.Payment) (*repository.SettlementRecord, error) {
	b, ok := m.bookings[p.BookingID]
	if !ok {
		return nil, notFound("bookings")
	}

	if b.Status == domain.PaymentStatusPaid {
		return &repository.SettlementRecord{
			AlreadySettled: true,
			TrackingID:     b.TrackingID,
		}, nil
	}

	if _, exists := m.payments[p.TransactionID]; exists {
		return nil, uniqueViolation("payments", "payments_transaction_id_key")
	}

	b.Status = domain.PaymentStatusPaid
	b.TrackingID = p.TrackingID

	cp := *p
	cp.ID = uuid.NewString()
	m.payments[cp.TransactionID] = &cp

	return &repository.SettlementRecord{
		PaymentID:      cp.ID,
		TrackingID:     cp.TrackingID,
		BookingUpdated: true,
	}, nil
}

// --- CheckoutClient ---

type fakeCheckout struct {
	sessions map[string]*checkout.Session
	created  []checkout.CreateSessionInput
}

func newFakeCheckout() *fakeCheckout {
	return &fakeCheckout{sessions: map[string]*checkout.Session{}}
}

func (f *fakeCheckout) CreateSession(ctx context.Context, in checkout.CreateSessionInput) (*checkout.Session, error) {
	f.created = append(f.created, in)

	sess := &checkout.Session{
		ID:            "cs_" + uuid.NewString(),
		URL:           "https://checkout.example.com/pay/" + in.BookingID,
		PaymentStatus: "unpaid",
		AmountTotal:   int64(in.Cost * 100),
		Currency:      checkout.Currency,
		CustomerEmail: in.UserEmail,
		BookingID:     in.BookingID,
		ServiceName:   in.ServiceName,
	}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeCheckout) GetSession(ctx context.Context, id string) (*checkout.Session, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no such session %s", id)
	}
	return sess, nil
}

// markPaid simulates the customer completing payment on the hosted page.
func (f *fakeCheckout) markPaid(sessionID, transactionID string) {
	sess := f.sessions[sessionID]
	sess.PaymentStatus = "paid"
	sess.TransactionID = transactionID
}

// --- job enqueuers ---

type fakeJobs struct {
	receipts []job.PaymentReceiptPayload
	welcomes []job.WelcomeEmailPayload
}

func (f *fakeJobs) EnqueuePaymentReceipt(p job.PaymentReceiptPayload) error {
	f.receipts = append(f.receipts, p)
	return nil
}

func (f *fakeJobs) EnqueueWelcomeEmail(to, name string) error {
	f.welcomes = append(f.welcomes, job.WelcomeEmailPayload{To: to, Name: name})
	return nil
}
