// Package sqlerr translates database driver errors into application errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into user-friendly HTTP errors, e.g. a unique violation on
// payments.transaction_id becomes a "Payment already exists" bad request.
package sqlerr
