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

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Add writes the appointment row only. The customer row must already exist.
func (r *AppointmentRepository) Add(ctx context.Context, a *appointment.Appointment) error {
	row := model.AppointmentFromDomain(a)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		return infra.WrapRepoErr("failed to add appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	var row model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get appointment", err)
	}
	return row.ToDomain(), nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]*appointment.Appointment, error) {
	var rows []model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("date, id").
		Find(&rows).Error
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}

	result := make([]*appointment.Appointment, len(rows))
	for i, row := range rows {
		result[i] = row.ToDomain()
	}
	return result, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *appointment.Appointment) error {
	row := model.AppointmentFromDomain(a)
	res := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"customer_id": row.CustomerID,
			"date":        row.Date,
			"status":      row.Status,
		})
	if res.Error != nil {
		return infra.WrapRepoErr("failed to update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, a *appointment.Appointment) error {
	res := r.db.WithContext(ctx).Where("id = ?", a.ID).Delete(&model.Appointment{})
	if res.Error != nil {
		return infra.WrapRepoErr("failed to delete appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
