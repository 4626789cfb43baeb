package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// authentication, the halt coordinator, the run executor, the event bus and
// graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"scanguard" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RSA keys used to verify (and, for the jwt command, sign) bearer tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key tokens are verified with
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key. Only the jwt command needs it.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// CORS configures which browser origins may call the API
	CORS struct {
		// AllowedOrigins are echoed back verbatim. Localhost origins are always allowed.
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// DefaultOrigin is returned for origins that are not allowed
		DefaultOrigin string `env:"CORS_DEFAULT_ORIGIN" env-default:"https://app.scanguard.io" yaml:"defaultOrigin"`
	} `yaml:"cors"`

	// Halt configures the halt coordinator
	Halt struct {
		// MaxAttempts bounds how often a halt is retried after losing a race with a concurrent writer
		MaxAttempts int `env:"HALT_MAX_ATTEMPTS" env-default:"2" yaml:"maxAttempts"`
	} `yaml:"halt"`

	// Executor configures the background run executor
	Executor struct {
		// MaxWorkers is the number of runs executed concurrently
		MaxWorkers int `env:"EXECUTOR_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// PausePoll is how long a paused run is snoozed before it is checked again
		PausePoll time.Duration `env:"EXECUTOR_PAUSE_POLL" env-default:"15s" yaml:"pausePoll"`
		// MaxAttempts is how often the queue retries an execution job that errored
		MaxAttempts int `env:"EXECUTOR_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// TaskTimeout bounds a single task execution
		TaskTimeout time.Duration `env:"EXECUTOR_TASK_TIMEOUT" env-default:"10m" yaml:"taskTimeout"`
	} `yaml:"executor"`

	// NATS configures the event bus halt notifications are published on
	NATS struct {
		// URL of the NATS server. Notifications are disabled when empty.
		URL string `env:"NATS_URL" yaml:"url"`
		// Subject halt events are published to
		Subject string `env:"NATS_SUBJECT" env-default:"scanguard.runs.halted" yaml:"subject"`
	} `yaml:"nats"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
