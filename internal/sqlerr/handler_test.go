package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wedora/backend/internal/errs"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, Other, MapCode("42P01"))
}

func TestErrCode(t *testing.T) {
	err := &Error{Code: UniqueViolation}
	assert.Equal(t, UniqueViolation, ErrCode(err))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("saving: %w", err)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgerr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "payments",
		ConstraintName: "payments_transaction_id_key",
	}

	out := HandleError(pgerr)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, out, &httpErr)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PAYMENT_ALREADY_EXISTS", httpErr.Code)
	assert.True(t, httpErr.Override)
	assert.Contains(t, httpErr.Message, "Transaction Id")
}

func TestHandleErrorNoRowsWithTablePrefix(t *testing.T) {
	err := fmt.Errorf("table:bookings: %w", pgx.ErrNoRows)

	out := HandleError(err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, out, &httpErr)

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Booking not found", httpErr.Message)
}

func TestHandleErrorNoRowsWithoutPrefix(t *testing.T) {
	out := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, out, &httpErr)

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Resource not found", httpErr.Message)
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	in := errs.NewForbiddenError("nope", true)

	out := HandleError(in)
	assert.Same(t, error(in), out)
}

func TestHandleErrorUnknownBecomes500(t *testing.T) {
	out := HandleError(errors.New("connection reset"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, out, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "transaction_id", extractColumnForUniqueViolation("payments_transaction_id_key"))
	assert.Equal(t, "", extractColumnForUniqueViolation(""))
}
