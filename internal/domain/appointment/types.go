package appointment

import "errors"

var ErrInvalidStatus = errors.New("invalid appointment status")

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusFulfilled Status = "Fulfilled"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusFulfilled, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
