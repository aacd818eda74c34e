package db

import (
	"context"
	"log/slog"

	"appointment-agent/internal/infra/model"
	"appointment-agent/internal/pkg/errs"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Callers abort startup on error.
func Migrate(ctx context.Context, gdb *gorm.DB, logger *slog.Logger) error {
	if err := gdb.WithContext(ctx).AutoMigrate(
		&model.Customer{},
		&model.Appointment{},
	); err != nil {
		logger.Error("Database setup failed.", "error", err)
		return errs.Wrap(err, "database migration failed")
	}
	return nil
}
