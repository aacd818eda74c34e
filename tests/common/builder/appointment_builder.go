//go:build unit || e2e

package builder

import (
	"time"

	"appointment-agent/internal/domain/appointment"
	reqdto "appointment-agent/internal/handler/dto/request"
	"appointment-agent/internal/infra/model"
)

type AppointmentBuilder struct {
	FirstName string
	LastName  string
	Phone     string
	Date      time.Time
	Status    appointment.Status
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		FirstName: "Matteo",
		LastName:  "Baldassarre",
		Phone:     "3333333333",
		Date:      time.Now().Add(48 * time.Hour).UTC().Truncate(time.Microsecond),
		Status:    appointment.StatusScheduled,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithCustomer(firstName, lastName, phone string) *AppointmentBuilder {
	b.FirstName = firstName
	b.LastName = lastName
	b.Phone = phone
	return b
}

// WithDate stores the date in UTC at database precision.
func (b *AppointmentBuilder) WithDate(date time.Time) *AppointmentBuilder {
	b.Date = date.UTC().Truncate(time.Microsecond)
	return b
}

func (b *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	b.Status = status
	return b
}

// Build methods
func (b *AppointmentBuilder) Build() *appointment.Appointment {
	customer := appointment.NewCustomer(b.FirstName, b.LastName, b.Phone)
	return appointment.NewAppointment(customer, b.Date, b.Status)
}

func (b *AppointmentBuilder) BuildRequestDTO() reqdto.AppointmentRequest {
	return reqdto.AppointmentRequest{
		Customer: reqdto.CustomerRequest{
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Phone:     b.Phone,
		},
		Date:   b.Date,
		Status: b.Status.String(),
	}
}

func (b *AppointmentBuilder) BuildModel() model.Appointment {
	a := b.Build()
	row := model.AppointmentFromDomain(a)
	row.Customer = model.CustomerFromDomain(a.Customer)
	return row
}
