//go:build e2e

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"appointment-agent/internal/domain/appointment"
	"appointment-agent/internal/infra"
	"appointment-agent/internal/infra/repository"
	"appointment-agent/internal/infra/uow"
	"appointment-agent/internal/usecase"
	"appointment-agent/tests/common/builder"
	"appointment-agent/tests/common/dbtest"
	"appointment-agent/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositorySuite struct {
	e2e.SharedSuite
	appointments *repository.AppointmentRepository
	customers    *repository.CustomerRepository
}

func (s *RepositorySuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.appointments = repository.NewAppointmentRepository(s.Gorm)
	s.customers = repository.NewCustomerRepository(s.Gorm)
}

func (s *RepositorySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRepositorySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) store(a *appointment.Appointment) {
	ctx := context.Background()
	require.NoError(s.T(), s.customers.Add(ctx, a.Customer))
	require.NoError(s.T(), s.appointments.Add(ctx, a))
}

func (s *RepositorySuite) TestAppointmentRepository() {
	ctx := context.Background()

	s.Run("Add then GetByID loads the customer", func() {
		t := s.T()
		a := builder.NewAppointmentBuilder().Build()
		s.store(a)

		got, err := s.appointments.GetByID(ctx, a.ID)

		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
		assert.Equal(t, a.Customer.ID, got.Customer.ID)
		assert.Equal(t, "Baldassarre", got.Customer.LastName)
		assert.True(t, a.Date.Equal(got.Date))
		assert.Equal(t, a.Status, got.Status)
	})

	s.Run("GetByID of unknown id is NOT_FOUND", func() {
		_, err := s.appointments.GetByID(ctx, uuid.New())

		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	s.Run("Add without a stored customer violates the foreign key", func() {
		a := builder.NewAppointmentBuilder().Build()

		err := s.appointments.Add(ctx, a)

		assert.True(s.T(), infra.IsKind(err, infra.KindForeignKeyViolated), "got %v", err)
	})

	s.Run("Add with a duplicate id is DUPLICATE_KEY", func() {
		a := builder.NewAppointmentBuilder().Build()
		s.store(a)

		err := s.appointments.Add(ctx, a)

		assert.True(s.T(), infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)
	})

	s.Run("GetAll orders by date", func() {
		t := s.T()
		base := time.Date(2031, 2, 1, 8, 0, 0, 0, time.UTC)
		late := builder.NewAppointmentBuilder().WithDate(base.Add(time.Hour)).Build()
		early := builder.NewAppointmentBuilder().WithCustomer("Giulia", "Rossi", "3471234567").WithDate(base).Build()
		s.store(late)
		s.store(early)

		all, err := s.appointments.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, early.ID, all[0].ID)
		assert.Equal(t, "Giulia", all[0].Customer.FirstName)
		assert.Equal(t, late.ID, all[1].ID)
	})

	s.Run("Update overwrites date and status", func() {
		t := s.T()
		a := builder.NewAppointmentBuilder().Build()
		s.store(a)

		a.Status = appointment.StatusCancelled
		a.Date = a.Date.Add(2 * time.Hour)
		require.NoError(t, s.appointments.Update(ctx, a))

		got, err := s.appointments.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusCancelled, got.Status)
		assert.True(t, a.Date.Equal(got.Date))
	})

	s.Run("Update of a missing row is NOT_FOUND", func() {
		a := builder.NewAppointmentBuilder().Build()
		require.NoError(s.T(), s.customers.Add(ctx, a.Customer))

		err := s.appointments.Update(ctx, a)

		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	s.Run("Delete removes the row once", func() {
		t := s.T()
		a := builder.NewAppointmentBuilder().Build()
		s.store(a)

		require.NoError(t, s.appointments.Delete(ctx, a))
		assert.Equal(t, 0, dbtest.CountRows(t, s.DB, "appointments"))
		assert.True(t, dbtest.CustomerExists(t, s.DB, a.Customer.ID), "customer outlives its appointments")

		err := s.appointments.Delete(ctx, a)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}

func (s *RepositorySuite) TestCustomerRepository() {
	ctx := context.Background()

	s.Run("Add is idempotent for the same identity", func() {
		t := s.T()
		c := appointment.NewCustomer("Matteo", "Baldassarre", "3333333333")

		require.NoError(t, s.customers.Add(ctx, c))
		require.NoError(t, s.customers.Add(ctx, c))

		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "customers"))
	})

	s.Run("GetByID loads appointments ordered by date", func() {
		t := s.T()
		base := time.Date(2031, 5, 5, 12, 0, 0, 0, time.UTC)
		second := builder.NewAppointmentBuilder().WithDate(base.Add(24 * time.Hour)).Build()
		first := builder.NewAppointmentBuilder().WithDate(base).Build()
		s.store(second)
		s.store(first)

		got, err := s.customers.GetByID(ctx, first.Customer.ID)

		require.NoError(t, err)
		assert.Equal(t, "3333333333", got.Phone)
		require.Len(t, got.Appointments, 2)
		assert.Equal(t, first.ID, got.Appointments[0].ID)
		assert.Equal(t, second.ID, got.Appointments[1].ID)
	})

	s.Run("GetByID of unknown id is NOT_FOUND", func() {
		_, err := s.customers.GetByID(ctx, uuid.New())

		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}

func (s *RepositorySuite) TestUnitOfWork() {
	ctx := context.Background()

	s.Run("commits both writes", func() {
		t := s.T()
		a := builder.NewAppointmentBuilder().Build()

		err := uow.NewGormUoW(s.Gorm).Within(ctx, func(ctx context.Context, tx usecase.TxRepositories) error {
			if err := tx.Customers.Add(ctx, a.Customer); err != nil {
				return err
			}
			return tx.Appointments.Add(ctx, a)
		})

		require.NoError(t, err)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "customers"))
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "appointments"))
	})

	s.Run("rolls back the customer when the appointment fails", func() {
		t := s.T()
		a := builder.NewAppointmentBuilder().Build()
		boom := errors.New("boom")

		err := uow.NewGormUoW(s.Gorm).Within(ctx, func(ctx context.Context, tx usecase.TxRepositories) error {
			if err := tx.Customers.Add(ctx, a.Customer); err != nil {
				return err
			}
			return boom
		})

		require.ErrorIs(t, err, boom)
		assert.False(t, dbtest.CustomerExists(t, s.DB, a.Customer.ID))
	})

	s.Run("returns repository errors unchanged", func() {
		id := uuid.New()

		err := uow.NewGormUoW(s.Gorm).Within(ctx, func(ctx context.Context, tx usecase.TxRepositories) error {
			_, err := tx.Appointments.GetByID(ctx, id)
			return err
		})

		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}
