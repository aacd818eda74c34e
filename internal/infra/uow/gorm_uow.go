package uow

import (
	"context"
	"database/sql"
	"log/slog"

	"appointment-agent/internal/infra/repository"
	"appointment-agent/internal/usecase"

	"gorm.io/gorm"
)

type GormUoW struct {
	db *gorm.DB
}

func NewGormUoW(db *gorm.DB) *GormUoW {
	return &GormUoW{db: db}
}

// Within runs fn in a ReadCommitted transaction.
func (u *GormUoW) Within(ctx context.Context, fn func(ctx context.Context, tx usecase.TxRepositories) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, usecase.TxRepositories{
			Appointments: repository.NewAppointmentRepository(tx),
			Customers:    repository.NewCustomerRepository(tx),
		})
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		slog.DebugContext(ctx, "transaction rolled back", "error", err.Error())
	}
	return err
}
