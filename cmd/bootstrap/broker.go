package bootstrap

import (
	"context"
	"log/slog"

	"cowork-booking/internal/infra/broker"
	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher without BROKER_URL.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (shared.EventPublisher, error) {
	if cfg.Broker.URL == "" {
		slog.Info("BROKER_URL not set; reservation events are not published")
		return broker.NoopPublisher{}, nil
	}

	publisher, cleanup, err := broker.Dial(cfg.Broker)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher, nil
}
