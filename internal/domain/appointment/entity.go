package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Customer owns no appointments directly; Appointments is filled on read
// from the appointments table and is never persisted through the customer.
type Customer struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Phone        string
	Appointments []Appointment
}

func NewCustomer(firstName, lastName, phone string) Customer {
	return Customer{
		ID:        CustomerID(firstName, lastName, phone),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	}
}

type Appointment struct {
	ID       uuid.UUID
	Customer Customer
	Date     time.Time
	Status   Status
}

func NewAppointment(customer Customer, date time.Time, status Status) *Appointment {
	return &Appointment{
		ID:       uuid.New(),
		Customer: customer,
		Date:     date,
		Status:   status,
	}
}

func (a *Appointment) CustomerID() uuid.UUID {
	return a.Customer.ID
}

// Overwrite replaces the customer reference, date and status with the
// values of updated. The identity of a is left untouched.
func (a *Appointment) Overwrite(updated *Appointment) {
	a.Customer = updated.Customer
	a.Date = updated.Date
	a.Status = updated.Status
}
