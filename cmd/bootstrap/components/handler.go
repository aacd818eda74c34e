package components

import (
	"appointment-agent/internal/handler"
	"appointment-agent/internal/handler/api"
	"appointment-agent/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewCustomerHandler,
		middleware.NewAPIKeyMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
