package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Agent     AgentConfig
	Events    EventsConfig
	Telemetry TelemetryConfig
}

type TokenServerConfig struct {
	Server    TokenServerHTTPConfig
	CORS      CORSConfig
	Log       LogConfig
	LiveKit   LiveKitConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type TokenServerHTTPConfig struct {
	Port            string        `envconfig:"TOKEN_SERVER_PORT" default:"3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host          string        `envconfig:"DB_HOST" default:"localhost"`
	Port          string        `envconfig:"DB_PORT" default:"5432"`
	User          string        `envconfig:"DB_USER" required:"true"`
	Password      string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string        `envconfig:"DB_NAME" required:"true"`
	SSLMode       string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns      int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	SlowThreshold time.Duration `envconfig:"DB_SLOW_THRESHOLD" default:"200ms"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"FRONTEND_ORIGIN_URL" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,x-agent-api-key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Empty APIKey disables the shared-secret check on appointment creation.
type AgentConfig struct {
	APIKey string `envconfig:"AGENT_API_KEY"`
}

// Empty Brokers selects the no-op publisher.
type EventsConfig struct {
	Brokers []string      `envconfig:"KAFKA_BROKERS"`
	Topic   string        `envconfig:"KAFKA_APPOINTMENT_TOPIC" default:"appointments"`
	Timeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type LiveKitConfig struct {
	APIKey          string        `envconfig:"LIVEKIT_API_KEY" required:"true"`
	APISecret       string        `envconfig:"LIVEKIT_API_SECRET" required:"true"`
	RoomName        string        `envconfig:"LIVEKIT_ROOM_NAME" default:"appointment-agent-room"`
	ParticipantName string        `envconfig:"LIVEKIT_PARTICIPANT_IDENTITY" default:"customer"`
	TokenTTL        time.Duration `envconfig:"LIVEKIT_TOKEN_TTL" default:"30m"`
}

// Empty RedisAddr disables rate limiting.
type RateLimitConfig struct {
	RedisAddr     string        `envconfig:"RATE_LIMIT_REDIS_ADDR"`
	RedisPassword string        `envconfig:"RATE_LIMIT_REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"RATE_LIMIT_REDIS_DB" default:"0"`
	Limit         int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
	Window        time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	Prefix        string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl:token"`
}

type TelemetryConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "appointment-api"
	}
	return cfg, nil
}

func LoadTokenServerConfig() (TokenServerConfig, error) {
	if err := loadDotEnv(); err != nil {
		return TokenServerConfig{}, err
	}
	var cfg TokenServerConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return TokenServerConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "token-server"
	}
	return cfg, nil
}

// .env is optional; real environment variables take precedence.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load .env file: %w", err)
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:          "localhost",
			Port:          "15433", // Test DB port
			User:          "test",
			Password:      "test",
			DBName:        "test_db",
			SSLMode:       "disable",
			TimeZone:      "UTC",
			MaxConns:      5,
			SlowThreshold: 200 * time.Millisecond,
		},
		CORS: newTestCORSConfig(),
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Agent: AgentConfig{
			APIKey: "secret-agent-api-key",
		},
		Events: EventsConfig{
			Topic:   "appointments",
			Timeout: time.Second,
		},
	}
}

func NewTestTokenServerConfig() TokenServerConfig {
	return TokenServerConfig{
		Server: TokenServerHTTPConfig{Port: "3999", ShutdownTimeout: time.Second},
		CORS:   newTestCORSConfig(),
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		LiveKit: LiveKitConfig{
			APIKey:          "devkey",
			APISecret:       "devsecret-devsecret-devsecret-devsecret",
			RoomName:        "appointment-agent-room",
			ParticipantName: "customer",
			TokenTTL:        30 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Limit:  30,
			Window: time.Minute,
			Prefix: "rl:token",
		},
	}
}

func newTestCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "x-agent-api-key"},
		ExposeHeaders: []string{"Content-Length", "Location"},
		MaxAge:        time.Hour,
	}
}
