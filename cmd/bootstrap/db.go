package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"appointment-agent/internal/infra/db"
	"appointment-agent/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	GormModule,
)

// GormModule needs only a *pgxpool.Pool, so tests can supply their own.
var GormModule = fx.Provide(
	NewGorm,
)

func NewDB(lc fx.Lifecycle, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// NewGorm opens gorm over the pool and brings the schema up to date.
func NewGorm(pool *pgxpool.Pool, logger *slog.Logger, cfg config.DBConfig) (*gorm.DB, error) {
	gdb, err := db.OpenGorm(pool, logger, cfg.SlowThreshold)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Migrate(ctx, gdb, logger); err != nil {
		return nil, err
	}

	return gdb, nil
}
