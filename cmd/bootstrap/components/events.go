package components

import (
	"context"
	"log/slog"

	"appointment-agent/internal/infra/events"
	"appointment-agent/internal/pkg/config"
	"appointment-agent/internal/usecase"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.EventsConfig, logger *slog.Logger) usecase.EventPublisher {
	publisher := events.NewPublisher(cfg, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
