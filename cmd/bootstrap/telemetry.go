package bootstrap

import (
	"context"
	"log/slog"

	"appointment-agent/internal/pkg/config"
	"appointment-agent/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle, cfg config.TelemetryConfig, logger *slog.Logger) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		return err
	}
	if cfg.Enabled {
		logger.Info("tracing enabled", "endpoint", cfg.OTLPEndpoint, "service", cfg.ServiceName)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}
