package components

import (
	"appointment-agent/internal/infra/repository"
	"appointment-agent/internal/infra/uow"
	"appointment-agent/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(usecase.AppointmentRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(usecase.CustomerRepository)),
		),
		fx.Annotate(
			uow.NewGormUoW,
			fx.As(new(usecase.UnitOfWork)),
		),
	),
)
