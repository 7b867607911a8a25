// Package ratelimit provides fixed-window request limits shared through Redis,
// so every API instance sees the same counters.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"gallery/config"
	"gallery/internal/domain/lifecycle"
	"gallery/internal/domain/service"
	"gallery/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "ratelimit:"

type redisLimiter struct {
	client *goredis.Client
}

// NewRedisLimiter counts hits with INCR and lets the key's TTL close the window.
func NewRedisLimiter(client *goredis.Client) service.RateLimiter {
	return &redisLimiter{client: client}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, time.Duration, error) {
	if key == "" || window <= 0 {
		return false, 0, errors.New("invalid rate window")
	}
	if limit <= 0 {
		return true, 0, nil
	}

	redisKey := keyPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "increment rate key")
	}

	ttl, err := l.client.TTL(ctx, redisKey).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "read rate key ttl")
	}
	// First hit of a window, or a key left without expiry by an earlier failure.
	if count == 1 || ttl < 0 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, 0, errors.Wrap(err, "set rate key ttl")
		}
		ttl = window
	}

	if count > limit {
		return false, ttl, nil
	}

	return true, 0, nil
}

type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string, int64, time.Duration) (bool, time.Duration, error) {
	return true, 0, nil
}

// Params holds dependencies for the limiter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter connects to redis when configured. Without redis every request is allowed.
func NewRateLimiter(params Params) service.RateLimiter {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Warn("Redis not configured, rate limiting is disabled")

		return noopLimiter{}
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLimiter(client)
}
