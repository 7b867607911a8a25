package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	deliverycontext "gallery/internal/delivery/context"
	"gallery/internal/domain/constants"
	domainerrors "gallery/internal/domain/errors"
	"gallery/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles routes per client IP through the shared limiter.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	window  time.Duration
	logger  *slog.Logger
}

// NewRateLimitMiddleware returns a middleware factory. A nil limiter disables throttling.
func NewRateLimitMiddleware(limiter service.RateLimiter, window time.Duration, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, window: window, logger: logger}
}

// Limit allows at most limit requests per IP per window for the scope.
func (m *RateLimitMiddleware) Limit(scope string, limit int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if m.limiter == nil || limit <= 0 {
			return next
		}

		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := scope + ":" + c.RealIP()

			allowed, retryAfter, err := m.limiter.Allow(ctx, key, limit, m.window)
			if err != nil {
				// The limiter store is down; serve the request rather than fail it.
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).WarnContext(ctx, "Rate limiter unavailable",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return next(c)
			}

			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set(constants.HeaderRetryAfter, strconv.Itoa(seconds))

				return domainerrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
