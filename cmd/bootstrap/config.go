package bootstrap

import (
	"appointment-agent/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	APIConfigSections,
)

// APIConfigSections splits config.Config so constructors depend only on
// the section they read.
var APIConfigSections = fx.Provide(
	func(c config.Config) config.DBConfig { return c.DB },
	func(c config.Config) config.LogConfig { return c.Log },
	func(c config.Config) config.AgentConfig { return c.Agent },
	func(c config.Config) config.EventsConfig { return c.Events },
	func(c config.Config) config.TelemetryConfig { return c.Telemetry },
)

var TokenServerConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadTokenServerConfig,
	),
	TokenServerConfigSections,
)

var TokenServerConfigSections = fx.Provide(
	func(c config.TokenServerConfig) config.LogConfig { return c.Log },
	func(c config.TokenServerConfig) config.LiveKitConfig { return c.LiveKit },
	func(c config.TokenServerConfig) config.RateLimitConfig { return c.RateLimit },
	func(c config.TokenServerConfig) config.TelemetryConfig { return c.Telemetry },
)
