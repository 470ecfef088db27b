package bootstrap

import (
	"context"
	"log/slog"

	"cowork-booking/internal/handler/middleware"
	"cowork-booking/internal/infra/cache"
	"cowork-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		NewRateLimiter,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}

// NewRateLimiter returns a nil limiter when Redis is not configured, which
// turns the middleware into a pass-through.
func NewRateLimiter(cfg config.Config, client *redis.Client) middleware.RateLimiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if client == nil {
		slog.Warn("rate limiting enabled but REDIS_ADDR is empty; limiter disabled")
		return nil
	}
	return cache.NewTokenBucket(client, cfg.RateLimit)
}
