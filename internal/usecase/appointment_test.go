//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"appointment-agent/internal/domain/appointment"
	"appointment-agent/internal/infra"
	"appointment-agent/internal/pkg/clock"
	"appointment-agent/internal/pkg/errs"
	"appointment-agent/internal/usecase"
	"appointment-agent/tests/common/builder"
	usecasemock "appointment-agent/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *usecasemock.MockUnitOfWork
	appointments *usecasemock.MockAppointmentRepository
	customers    *usecasemock.MockCustomerRepository
	publisher    *usecasemock.MockEventPublisher
	clock        *clock.FixedClock
	service      usecase.AppointmentService
	ctx          context.Context
}

func (s *AppointmentServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = usecasemock.NewMockUnitOfWork(s.ctrl)
	s.appointments = usecasemock.NewMockAppointmentRepository(s.ctrl)
	s.customers = usecasemock.NewMockCustomerRepository(s.ctrl)
	s.publisher = usecasemock.NewMockEventPublisher(s.ctrl)
	s.clock = clock.NewFixedClock(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	s.service = usecase.NewAppointmentService(s.uow, s.appointments, s.publisher, s.clock)
	s.ctx = context.Background()
}

func (s *AppointmentServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAppointmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppointmentServiceTestSuite))
}

// expectTx runs the transaction body against the repository mocks.
func (s *AppointmentServiceTestSuite) expectTx() {
	s.uow.EXPECT().Within(s.ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, usecase.TxRepositories) error) error {
			return fn(ctx, usecase.TxRepositories{Appointments: s.appointments, Customers: s.customers})
		})
}

func notFound() error {
	return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
}

// =============================================================================
// Create
// =============================================================================

func (s *AppointmentServiceTestSuite) TestCreate() {
	s.Run("success: persists customer and appointment then publishes", func() {
		a := builder.NewAppointmentBuilder().Build()

		s.expectTx()
		gomock.InOrder(
			s.customers.EXPECT().Add(s.ctx, a.Customer).Return(nil),
			s.appointments.EXPECT().Add(s.ctx, a).Return(nil),
			s.publisher.EXPECT().Publish(s.ctx, usecase.AppointmentEvent{
				Type:          usecase.EventAppointmentCreated,
				AppointmentID: a.ID,
				CustomerID:    a.CustomerID(),
				Date:          a.Date,
				Status:        a.Status,
				OccurredAt:    s.clock.Now(),
			}).Return(nil),
		)

		created, err := s.service.Create(s.ctx, a)

		s.Require().NoError(err)
		s.Same(a, created)
	})

	s.Run("error: absent appointment never reaches the repository", func() {
		created, err := s.service.Create(s.ctx, nil)

		s.Require().Error(err)
		s.True(errs.Is(err, usecase.ErrInvalidArgument))
		s.Nil(created)
	})

	s.Run("error: repository failure is reported and nothing is published", func() {
		a := builder.NewAppointmentBuilder().Build()
		s.expectTx()
		s.customers.EXPECT().Add(s.ctx, a.Customer).Return(nil)
		s.appointments.EXPECT().Add(s.ctx, a).Return(infra.WrapRepoErr("failed to add appointment", errors.New("connection reset")))

		created, err := s.service.Create(s.ctx, a)

		s.Require().Error(err)
		s.True(errs.Is(err, usecase.ErrDatabaseOperationFailed))
		s.Nil(created)
	})

	s.Run("error: failed commit is reported and nothing is published", func() {
		a := builder.NewAppointmentBuilder().Build()
		s.uow.EXPECT().Within(s.ctx, gomock.Any()).Return(errors.New("commit failed"))

		created, err := s.service.Create(s.ctx, a)

		s.Require().Error(err)
		s.True(errs.Is(err, usecase.ErrDatabaseOperationFailed))
		s.Nil(created)
	})

	s.Run("success: publish failure does not fail the request", func() {
		a := builder.NewAppointmentBuilder().Build()
		s.expectTx()
		s.customers.EXPECT().Add(s.ctx, a.Customer).Return(nil)
		s.appointments.EXPECT().Add(s.ctx, a).Return(nil)
		s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).Return(errors.New("broker unavailable"))

		created, err := s.service.Create(s.ctx, a)

		s.Require().NoError(err)
		s.Equal(a.ID, created.ID)
	})
}

// =============================================================================
// TryUpdate
// =============================================================================

func (s *AppointmentServiceTestSuite) TestTryUpdate() {
	s.Run("success: overwrites the existing entity and updates it once", func() {
		existing := builder.NewAppointmentBuilder().Build()
		originalID := existing.ID
		updated := builder.NewAppointmentBuilder().
			WithCustomer("Giulia", "Rossi", "4444444444").
			WithDate(time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)).
			WithStatus(appointment.StatusFulfilled).
			Build()

		s.appointments.EXPECT().GetByID(s.ctx, originalID).Return(existing, nil)
		s.expectTx()
		s.customers.EXPECT().Add(s.ctx, updated.Customer).Return(nil)
		s.appointments.EXPECT().Update(s.ctx, existing).Times(1).Return(nil)
		s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e usecase.AppointmentEvent) error {
				s.Equal(usecase.EventAppointmentUpdated, e.Type)
				s.Equal(originalID, e.AppointmentID)
				s.Equal(appointment.StatusFulfilled, e.Status)
				return nil
			})

		ok, err := s.service.TryUpdate(s.ctx, originalID, updated)

		s.Require().NoError(err)
		s.True(ok)
		s.Equal(originalID, existing.ID)
		s.Equal(updated.Customer, existing.Customer)
		s.True(updated.Date.Equal(existing.Date))
		s.Equal(appointment.StatusFulfilled, existing.Status)
	})

	s.Run("not found: returns false without updating", func() {
		id := uuid.New()
		s.appointments.EXPECT().GetByID(s.ctx, id).Return(nil, notFound())

		ok, err := s.service.TryUpdate(s.ctx, id, builder.NewAppointmentBuilder().Build())

		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("error: absent payload is an invalid argument", func() {
		ok, err := s.service.TryUpdate(s.ctx, uuid.New(), nil)

		s.True(errs.Is(err, usecase.ErrInvalidArgument))
		s.False(ok)
	})

	s.Run("not found: row vanished between read and update", func() {
		existing := builder.NewAppointmentBuilder().Build()
		s.appointments.EXPECT().GetByID(s.ctx, existing.ID).Return(existing, nil)
		s.expectTx()
		s.customers.EXPECT().Add(s.ctx, gomock.Any()).Return(nil)
		s.appointments.EXPECT().Update(s.ctx, existing).Return(notFound())

		ok, err := s.service.TryUpdate(s.ctx, existing.ID, builder.NewAppointmentBuilder().Build())

		s.Require().NoError(err)
		s.False(ok)
	})
}

// =============================================================================
// TryDelete
// =============================================================================

func (s *AppointmentServiceTestSuite) TestTryDelete() {
	s.Run("success: deletes the loaded entity", func() {
		existing := builder.NewAppointmentBuilder().Build()
		s.appointments.EXPECT().GetByID(s.ctx, existing.ID).Return(existing, nil)
		s.appointments.EXPECT().Delete(s.ctx, existing).Return(nil)
		s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).Return(nil)

		ok, err := s.service.TryDelete(s.ctx, existing.ID)

		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("not found: returns false and never deletes", func() {
		id := uuid.New()
		s.appointments.EXPECT().GetByID(s.ctx, id).Return(nil, notFound())

		ok, err := s.service.TryDelete(s.ctx, id)

		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("error: lookup failure is propagated", func() {
		id := uuid.New()
		s.appointments.EXPECT().GetByID(s.ctx, id).Return(nil, infra.WrapRepoErr("failed to get appointment", errors.New("timeout")))

		ok, err := s.service.TryDelete(s.ctx, id)

		s.Require().Error(err)
		s.True(errs.Is(err, usecase.ErrDatabaseOperationFailed))
		s.False(ok)
	})
}

// =============================================================================
// Queries
// =============================================================================

func (s *AppointmentServiceTestSuite) TestGetAll() {
	s.Run("success: returns every appointment", func() {
		first := builder.NewAppointmentBuilder().Build()
		second := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCancelled).Build()
		s.appointments.EXPECT().GetAll(s.ctx).Return([]*appointment.Appointment{first, second}, nil)

		all, err := s.service.GetAll(s.ctx)

		s.Require().NoError(err)
		s.Len(all, 2)
	})

	s.Run("success: empty store yields an empty sequence", func() {
		s.appointments.EXPECT().GetAll(s.ctx).Return([]*appointment.Appointment{}, nil)

		all, err := s.service.GetAll(s.ctx)

		s.Require().NoError(err)
		s.Empty(all)
	})
}

func (s *AppointmentServiceTestSuite) TestGetByID() {
	s.Run("success: found", func() {
		a := builder.NewAppointmentBuilder().Build()
		s.appointments.EXPECT().GetByID(s.ctx, a.ID).Return(a, nil)

		got, found, err := s.service.GetByID(s.ctx, a.ID)

		s.Require().NoError(err)
		s.True(found)
		s.Equal(a.Customer, got.Customer)
	})

	s.Run("not found: absent without error", func() {
		id := uuid.New()
		s.appointments.EXPECT().GetByID(s.ctx, id).Return(nil, notFound())

		got, found, err := s.service.GetByID(s.ctx, id)

		s.Require().NoError(err)
		s.False(found)
		s.Nil(got)
	})
}
