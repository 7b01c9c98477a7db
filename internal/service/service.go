// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from handlers, applies the booking and settlement
// rules, and calls repositories to touch storage.
package service
