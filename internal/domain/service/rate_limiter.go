package service

import (
	"context"
	"time"
)

// RateLimiter counts hits per key in a fixed window shared by every instance.
type RateLimiter interface {
	// Allow records a hit and reports whether the key is still within limit.
	// When it is not, retryAfter is the time left in the current window.
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (allowed bool, retryAfter time.Duration, err error)
}
