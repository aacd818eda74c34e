package request

import (
	"encoding/json"
	"time"

	"appointment-agent/internal/domain/appointment"
	"appointment-agent/internal/pkg/errs"
)

// localDateLayout is RFC 3339 without the zone offset.
const localDateLayout = "2006-01-02T15:04:05.999999999"

type CustomerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// AppointmentRequest is the body of create and update. Any id sent by the
// client is ignored.
type AppointmentRequest struct {
	Customer CustomerRequest `json:"customer" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
	Status   string          `json:"status" binding:"required,oneof=Scheduled Fulfilled Cancelled"`
}

type appointmentRequestFields AppointmentRequest

// UnmarshalJSON accepts a date with or without a zone offset. A date
// without one is read as UTC.
func (r *AppointmentRequest) UnmarshalJSON(data []byte) error {
	aux := struct {
		*appointmentRequestFields
		Date *string `json:"date"`
	}{appointmentRequestFields: (*appointmentRequestFields)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == nil {
		return nil
	}
	date, err := parseDate(*aux.Date)
	if err != nil {
		return err
	}
	r.Date = date
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.Wrapf(err, "invalid date %q", s)
	}
	return t, nil
}

// ToDomain stores the date in UTC at microsecond precision, the resolution
// the database keeps.
func (r *AppointmentRequest) ToDomain() (*appointment.Appointment, error) {
	status, err := appointment.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	customer := appointment.NewCustomer(r.Customer.FirstName, r.Customer.LastName, r.Customer.Phone)
	return appointment.NewAppointment(customer, r.Date.UTC().Truncate(time.Microsecond), status), nil
}
