package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/wedora/backend/internal/server"
)

type recordedHits struct {
	endpoints []string
}

func (r *recordedHits) RecordRateLimitHit(endpoint string) {
	r.endpoints = append(r.endpoints, endpoint)
}

func TestRequestLoggerReportsRateLimitHits(t *testing.T) {
	hits := &recordedHits{}
	global := NewGlobalMiddlewares(&server.Server{}, hits)

	e := echo.New()
	e.Use(global.RequestLogger())
	e.GET("/services", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTooManyRequests)
	})
	e.GET("/top-services", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/top-services", nil))

	assert.Equal(t, []string{"/services"}, hits.endpoints)
}
