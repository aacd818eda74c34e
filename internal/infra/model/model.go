package model

import (
	"time"

	"appointment-agent/internal/domain/appointment"

	"github.com/google/uuid"
)

type Customer struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	FirstName    string        `gorm:"not null"`
	LastName     string        `gorm:"not null"`
	Phone        string        `gorm:"not null"`
	Appointments []Appointment `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (Customer) TableName() string { return "customers" }

type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Customer   Customer  `gorm:"foreignKey:CustomerID"`
	Date       time.Time `gorm:"type:timestamptz;not null"`
	Status     string    `gorm:"type:varchar(20);not null"`
}

func (Appointment) TableName() string { return "appointments" }

func CustomerFromDomain(c appointment.Customer) Customer {
	return Customer{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
	}
}

// AppointmentFromDomain leaves the Customer association empty; the
// customer row is written separately.
func AppointmentFromDomain(a *appointment.Appointment) Appointment {
	return Appointment{
		ID:         a.ID,
		CustomerID: a.CustomerID(),
		Date:       a.Date.UTC(),
		Status:     a.Status.String(),
	}
}

func (m Appointment) ToDomain() *appointment.Appointment {
	return &appointment.Appointment{
		ID:       m.ID,
		Customer: m.Customer.toDomainShallow(m.CustomerID),
		Date:     m.Date.UTC(),
		Status:   appointment.Status(m.Status),
	}
}

// ToDomain fills Appointments without back-references to the customer.
func (m Customer) ToDomain() *appointment.Customer {
	c := m.toDomainShallow(m.ID)
	c.Appointments = make([]appointment.Appointment, len(m.Appointments))
	for i, a := range m.Appointments {
		c.Appointments[i] = appointment.Appointment{
			ID:     a.ID,
			Date:   a.Date.UTC(),
			Status: appointment.Status(a.Status),
		}
	}
	return &c
}

func (m Customer) toDomainShallow(id uuid.UUID) appointment.Customer {
	return appointment.Customer{
		ID:        id,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
	}
}
