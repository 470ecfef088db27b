package cache

import (
	"context"
	"log/slog"
	"time"

	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// NewRedisClient returns nil when no address is configured. Callers treat a
// nil client as "feature disabled" rather than an error.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.Addr == "" {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}
