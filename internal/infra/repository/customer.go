package repository

import (
	"context"

	"appointment-agent/internal/domain/appointment"
	"appointment-agent/internal/infra"
	"appointment-agent/internal/infra/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Add is idempotent: the id is derived from the customer's fields, so an
// existing row with the same id already holds the same values.
func (r *CustomerRepository) Add(ctx context.Context, c appointment.Customer) error {
	row := model.CustomerFromDomain(c)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&row).Error
	if err != nil {
		return infra.WrapRepoErr("failed to add customer", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Customer, error) {
	var row model.Customer
	err := r.db.WithContext(ctx).
		Preload("Appointments", func(db *gorm.DB) *gorm.DB {
			return db.Order("date, id")
		}).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get customer", err)
	}
	return row.ToDomain(), nil
}
