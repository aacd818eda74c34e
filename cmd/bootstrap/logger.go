package bootstrap

import (
	"log/slog"

	"appointment-agent/internal/handler/middleware"
	"appointment-agent/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)

func NewLogger(cfg config.LogConfig) *middleware.Logger {
	return middleware.NewLogger(cfg)
}
