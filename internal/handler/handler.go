// Package handler is the HTTP entry point after the router.
//
// It parses and validates requests with the validation package, calls
// the appropriate service, and shapes the response.
package handler
