// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups, mapping
// paths to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wedora/backend/internal/handler"
	"github.com/wedora/backend/internal/middleware"
	"github.com/wedora/backend/internal/server"
)

// New builds the Echo instance with the global middleware chain and all
// routes registered. The returned router is handed to the server as its
// http.Handler.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the New Relic transaction must exist before the
	// context enhancer reads trace ids, and the request id must exist
	// before anything logs.
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}
