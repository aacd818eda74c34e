package usecase

import (
	"context"
	"errors"
	"log/slog"

	"appointment-agent/internal/domain/appointment"
	"appointment-agent/internal/infra"
	"appointment-agent/internal/pkg/clock"
	"appointment-agent/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type AppointmentService interface {
	Create(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error)
	// TryUpdate reports false when no appointment has the given id.
	TryUpdate(ctx context.Context, id uuid.UUID, updated *appointment.Appointment) (bool, error)
	// TryDelete reports false when no appointment has the given id.
	TryDelete(ctx context.Context, id uuid.UUID) (bool, error)
	GetAll(ctx context.Context) ([]*appointment.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, bool, error)
}

type appointmentServiceImpl struct {
	uow          UnitOfWork
	appointments AppointmentRepository
	publisher    EventPublisher
	clock        clock.Clock
}

func NewAppointmentService(
	uow UnitOfWork,
	appointments AppointmentRepository,
	publisher EventPublisher,
	clk clock.Clock,
) AppointmentService {
	return &appointmentServiceImpl{
		uow:          uow,
		appointments: appointments,
		publisher:    publisher,
		clock:        clk,
	}
}

func (s *appointmentServiceImpl) Create(ctx context.Context, a *appointment.Appointment) (*appointment.Appointment, error) {
	if a == nil {
		return nil, errs.Mark(errs.New("appointment is required"), ErrInvalidArgument)
	}

	err := s.uow.Within(ctx, func(ctx context.Context, tx TxRepositories) error {
		if err := tx.Customers.Add(ctx, a.Customer); err != nil {
			return err
		}
		return tx.Appointments.Add(ctx, a)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.publish(ctx, EventAppointmentCreated, a)
	return a, nil
}

func (s *appointmentServiceImpl) TryUpdate(ctx context.Context, id uuid.UUID, updated *appointment.Appointment) (bool, error) {
	if updated == nil {
		return false, errs.Mark(errs.New("appointment is required"), ErrInvalidArgument)
	}

	existing, found, err := s.GetByID(ctx, id)
	if err != nil || !found {
		return false, err
	}

	existing.Overwrite(updated)

	err = s.uow.Within(ctx, func(ctx context.Context, tx TxRepositories) error {
		if err := tx.Customers.Add(ctx, existing.Customer); err != nil {
			return err
		}
		return tx.Appointments.Update(ctx, existing)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.publish(ctx, EventAppointmentUpdated, existing)
	return true, nil
}

func (s *appointmentServiceImpl) TryDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	existing, found, err := s.GetByID(ctx, id)
	if err != nil || !found {
		return false, err
	}

	if err := s.appointments.Delete(ctx, existing); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.publish(ctx, EventAppointmentDeleted, existing)
	return true, nil
}

func (s *appointmentServiceImpl) GetAll(ctx context.Context) ([]*appointment.Appointment, error) {
	all, err := s.appointments.GetAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return all, nil
}

func (s *appointmentServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, bool, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, nil
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return a, true, nil
}

// publish never fails the caller; the write has already been committed.
func (s *appointmentServiceImpl) publish(ctx context.Context, eventType EventType, a *appointment.Appointment) {
	event := AppointmentEvent{
		Type:          eventType,
		AppointmentID: a.ID,
		CustomerID:    a.CustomerID(),
		Date:          a.Date,
		Status:        a.Status,
		OccurredAt:    s.clock.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish appointment event",
			"type", string(eventType),
			"appointment_id", a.ID.String(),
			"error", err)
	}
}
