package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/wedora/backend/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// router setup has a single place to pull them from.
type Middlewares struct {
	Global *GlobalMiddlewares

	Auth *AuthMiddleware

	ContextEnhancer *ContextEnhancer

	Tracing *TracingMiddleware

	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components. When New Relic is
// not configured nrApp is nil and tracing degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	rateLimit := NewRateLimitMiddleware(s)

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s, rateLimit),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       rateLimit,
	}
}
