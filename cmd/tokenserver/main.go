package main

import (
	"context"
	"log/slog"
	"os"

	"appointment-agent/cmd/bootstrap"
	"appointment-agent/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.TokenServerConfig, logger *slog.Logger) {
	bootstrap.ServeHTTP(lc, engine, bootstrap.ServerOptions{
		Port:            cfg.Server.Port,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Telemetry:       cfg.Telemetry,
	}, logger)
}

func main() {
	app := fx.New(
		bootstrap.TokenServerModule,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	// Missing LIVEKIT_API_KEY or LIVEKIT_API_SECRET fails here.
	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start token server", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop token server", "error", err)
	}

	slog.Info("token server stopped")
}
