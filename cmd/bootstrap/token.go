package bootstrap

import (
	"context"
	"log/slog"

	"appointment-agent/internal/handler"
	"appointment-agent/internal/handler/api"
	"appointment-agent/internal/infra/ratelimit"
	"appointment-agent/internal/pkg/clock"
	"appointment-agent/internal/pkg/config"
	"appointment-agent/internal/pkg/roomtoken"

	"go.uber.org/fx"
)

var TokenModule = fx.Module("token",
	fx.Provide(
		clock.NewSystemClock,
		fx.Annotate(
			roomtoken.NewIssuer,
			fx.As(new(api.TokenIssuer)),
		),
		NewRateLimiter,
		api.NewTokenHandler,
	),
	fx.Invoke(handler.NewTokenRouter),
)

// NewRateLimiter returns a nil Limiter when no Redis address is configured.
func NewRateLimiter(lc fx.Lifecycle, cfg config.RateLimitConfig, logger *slog.Logger) ratelimit.Limiter {
	if cfg.RedisAddr == "" {
		logger.Info("token rate limiting disabled (no redis address configured)")
		return nil
	}

	rdb := ratelimit.NewRedisClient(cfg)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	logger.Info("token rate limiting enabled (redis)", "limit", cfg.Limit, "window", cfg.Window, "redis_addr", cfg.RedisAddr)
	return ratelimit.NewRedisLimiter(rdb, cfg.Limit, cfg.Window, cfg.Prefix)
}
