package usecase

import (
	"context"

	"appointment-agent/internal/domain/appointment"
	"appointment-agent/internal/infra"
	"appointment-agent/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*appointment.Customer, bool, error)
}

type customerQueriesImpl struct {
	customers CustomerRepository
}

func NewCustomerQueries(customers CustomerRepository) CustomerQueries {
	return &customerQueriesImpl{customers: customers}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Customer, bool, error) {
	c, err := q.customers.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, nil
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, true, nil
}
