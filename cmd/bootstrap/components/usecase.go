package components

import (
	"appointment-agent/internal/pkg/clock"
	"appointment-agent/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewSystemClock,
		usecase.NewAppointmentService,
		usecase.NewCustomerQueries,
	),
)
