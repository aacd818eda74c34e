package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"appointment-agent/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

type ServerOptions struct {
	Port            string
	ShutdownTimeout time.Duration
	Telemetry       config.TelemetryConfig
}

// ServeHTTP binds the listener on start so a busy port fails the boot,
// and drains in-flight requests on stop.
func ServeHTTP(lc fx.Lifecycle, engine *gin.Engine, opts ServerOptions, logger *slog.Logger) {
	var handler http.Handler = engine
	if opts.Telemetry.Enabled {
		handler = otelhttp.NewHandler(engine, opts.Telemetry.ServiceName)
	}

	srv := &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("🚀 starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 stopping server")
			if opts.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.ShutdownTimeout)
				defer cancel()
			}
			return srv.Shutdown(ctx)
		},
	})
}
