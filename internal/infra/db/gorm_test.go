//go:build unit

package db_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"appointment-agent/internal/infra/db"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestGormLoggerTrace(t *testing.T) {
	ctx := context.Background()
	query := func() (string, int64) { return "SELECT * FROM appointments", 2 }

	t.Run("logs failed statements", func(t *testing.T) {
		logger, buf := newBufferedLogger()
		l := db.NewGormLogger(logger, time.Second)

		l.Trace(ctx, time.Now(), query, assert.AnError)

		assert.Contains(t, buf.String(), "Query failed")
		assert.Contains(t, buf.String(), "SELECT * FROM appointments")
	})

	t.Run("does not log missing records", func(t *testing.T) {
		logger, buf := newBufferedLogger()
		l := db.NewGormLogger(logger, time.Second)

		l.Trace(ctx, time.Now(), query, gormlogger.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("logs slow statements", func(t *testing.T) {
		logger, buf := newBufferedLogger()
		l := db.NewGormLogger(logger, time.Millisecond)

		l.Trace(ctx, time.Now().Add(-time.Second), query, nil)

		assert.Contains(t, buf.String(), "Slow query")
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		logger, buf := newBufferedLogger()
		l := db.NewGormLogger(logger, time.Millisecond).LogMode(gormlogger.Silent)

		l.Trace(ctx, time.Now().Add(-time.Second), query, assert.AnError)
		l.Error(ctx, "boom %d", 1)

		assert.Empty(t, buf.String())
	})
}
