package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gallery/config"
	deliverycontext "gallery/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "reuses client id", header: "abc-123", keep: true},
		{name: "mints when missing", header: "", keep: false},
		{name: "mints when oversized", header: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(discardLogger()).Process)

			var seen string
			e.GET("/", func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.Len(t, seen, 36)
			}
		})
	}
}

func TestLoggerMiddleware_RendersHandlerErrors(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(discardLogger(), cfg).Handle)
	e.GET("/", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
