package usecase

import (
	"context"
	"time"

	"appointment-agent/internal/domain/appointment"

	"github.com/google/uuid"
)

// Repositories report a missing row as an infra.RepositoryError of kind
// infra.KindNotFound.
type AppointmentRepository interface {
	Add(ctx context.Context, a *appointment.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	GetAll(ctx context.Context) ([]*appointment.Appointment, error)
	Update(ctx context.Context, a *appointment.Appointment) error
	Delete(ctx context.Context, a *appointment.Appointment) error
}

type CustomerRepository interface {
	// Add inserts the customer unless a row with the same id exists.
	Add(ctx context.Context, c appointment.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*appointment.Customer, error)
}

// TxRepositories share one transaction.
type TxRepositories struct {
	Appointments AppointmentRepository
	Customers    CustomerRepository
}

type UnitOfWork interface {
	// Within commits when fn returns nil and rolls back otherwise. The error
	// from fn is returned unchanged.
	Within(ctx context.Context, fn func(ctx context.Context, tx TxRepositories) error) error
}

type EventType string

const (
	EventAppointmentCreated EventType = "appointment.created"
	EventAppointmentUpdated EventType = "appointment.updated"
	EventAppointmentDeleted EventType = "appointment.deleted"
)

type AppointmentEvent struct {
	Type          EventType          `json:"type"`
	AppointmentID uuid.UUID          `json:"appointmentId"`
	CustomerID    uuid.UUID          `json:"customerId"`
	Date          time.Time          `json:"date"`
	Status        appointment.Status `json:"status"`
	OccurredAt    time.Time          `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event AppointmentEvent) error
}
