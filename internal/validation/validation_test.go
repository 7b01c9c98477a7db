package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wedora/backend/internal/errs"
)

var validate = validator.New()

type signupRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=10"`
}

func (r *signupRequest) Validate() error {
	return validate.Struct(r)
}

func newContext(method, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(http.MethodPost, `{"email":"a@b.com","name":"Alice"}`)

	payload := &signupRequest{}
	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, "a@b.com", payload.Email)
	assert.Equal(t, "Alice", payload.Name)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, `{"email":"not-an-email"}`)

	err := BindAndValidate(c, &signupRequest{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "email", httpErr.Errors[0].Field)
	assert.Equal(t, "must be a valid email address", httpErr.Errors[0].Error)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, `{"email":`)

	err := BindAndValidate(c, &signupRequest{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

type queryRequest struct {
	SessionID string `query:"session_id" validate:"required"`
}

func (r *queryRequest) Validate() error {
	return validate.Struct(r)
}

func TestBindAndValidateQueryParamsOnPatch(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/?session_id=cs_123", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	payload := &queryRequest{}
	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "cs_123", payload.SessionID)
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("b2f7f0f0-1234-4abc-9def-000000000000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}
