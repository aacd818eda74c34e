package bootstrap

import (
	"appointment-agent/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the appointment API.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	components.EventsModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// TokenServerModule wires the room token server.
var TokenServerModule = fx.Options(
	TokenServerConfigModule,
	LoggerModule,
	TelemetryModule,
	TokenModule,
)
