// Package errs defines the error types returned to API clients.
//
// Every error that reaches the client is shaped as an HTTPError so
// responses stay consistent: a machine-readable code, a human-readable
// message, field-level validation errors where applicable, and an
// optional client action hint.
package errs
