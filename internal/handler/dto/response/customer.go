package response

import (
	"time"

	"appointment-agent/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// CustomerAppointmentResponse omits the customer to avoid a cycle.
type CustomerAppointmentResponse struct {
	ID     uuid.UUID          `json:"id"`
	Date   time.Time          `json:"date"`
	Status appointment.Status `json:"status" swaggertype:"string" enums:"Scheduled,Fulfilled,Cancelled"`
}

type CustomerDetailResponse struct {
	CustomerResponse
	Appointments []CustomerAppointmentResponse `json:"appointments"`
}

func FromCustomer(c *appointment.Customer) (*CustomerDetailResponse, error) {
	res := &CustomerDetailResponse{
		Appointments: make([]CustomerAppointmentResponse, len(c.Appointments)),
	}
	if err := copier.Copy(&res.CustomerResponse, c); err != nil {
		return nil, err
	}
	for i := range c.Appointments {
		if err := copier.Copy(&res.Appointments[i], &c.Appointments[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}
