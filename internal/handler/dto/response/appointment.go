package response

import (
	"time"

	"appointment-agent/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
}

type AppointmentResponse struct {
	ID       uuid.UUID          `json:"id"`
	Customer CustomerResponse   `json:"customer" copier:"-"`
	Date     time.Time          `json:"date"`
	Status   appointment.Status `json:"status" swaggertype:"string" enums:"Scheduled,Fulfilled,Cancelled"`
}

func FromAppointment(a *appointment.Appointment) (*AppointmentResponse, error) {
	res := &AppointmentResponse{}
	if err := copier.Copy(res, a); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Customer, &a.Customer); err != nil {
		return nil, err
	}
	return res, nil
}

func FromAppointments(items []*appointment.Appointment) ([]*AppointmentResponse, error) {
	res := make([]*AppointmentResponse, len(items))
	for i, a := range items {
		r, err := FromAppointment(a)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
