package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/sqlerr"
)

// UserStore is the storage surface the user service needs.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// WelcomeEnqueuer schedules the welcome email for new accounts.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(to, name string) error
}

// UserResult is the outcome of a user registration attempt. Registration
// happens on every sign-in, so an existing account is reported as a
// non-failure with Created false.
type UserResult struct {
	Created bool         `json:"created"`
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
}

// UserService manages platform accounts.
type UserService struct {
	store  UserStore
	jobs   WelcomeEnqueuer
	logger *zerolog.Logger
}

func NewUserService(store UserStore, jobs WelcomeEnqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{
		store:  store,
		jobs:   jobs,
		logger: logger,
	}
}

// Register creates an account for the email unless one already exists.
// The duplicate outcome is decided by the unique constraint on email, not
// by a prior read, so concurrent registrations cannot both insert.
func (s *UserService) Register(ctx context.Context, u *domain.User) (*UserResult, error) {
	created, err := s.store.Create(ctx, u)
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			return &UserResult{
				Created: false,
				Message: "User already exists",
			}, nil
		}
		return nil, err
	}

	if err := s.jobs.EnqueueWelcomeEmail(created.Email, created.Name); err != nil {
		s.logger.Error().Err(err).
			Str("email", created.Email).
			Msg("failed to enqueue welcome email")
	}

	s.logger.Info().
		Str("user_id", created.ID).
		Str("email", created.Email).
		Msg("user registered")

	return &UserResult{
		Created: true,
		Message: "User created successfully",
		User:    created,
	}, nil
}

// List returns all accounts.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.List(ctx)
}
