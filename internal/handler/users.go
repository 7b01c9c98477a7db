package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wedora/backend/internal/domain"
	"github.com/wedora/backend/internal/server"
	"github.com/wedora/backend/internal/service"
)

// UsersHandler serves the platform account endpoints.
type UsersHandler struct {
	Handler
	users *service.UserService
}

func NewUsersHandler(s *server.Server, users *service.UserService) *UsersHandler {
	return &UsersHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUserRequest is the payload sent on sign-in to register an account.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	PhotoURL string `json:"photoUrl" validate:"omitempty,url"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// ListUsersRequest is the (empty) payload for listing accounts.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error {
	return nil
}

// CreateUser registers an account, reporting an already-existing email as
// a non-failure so sign-in flows can call it unconditionally.
func (h *UsersHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*service.UserResult, error) {
	return h.users.Register(c.Request().Context(), &domain.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
}

// ListUsers returns all accounts.
func (h *UsersHandler) ListUsers(c echo.Context, _ *ListUsersRequest) ([]domain.User, error) {
	return h.users.List(c.Request().Context())
}
