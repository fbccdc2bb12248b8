package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings,
// including the sizing of the shared connection pool.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	// MinConns is the number of connections the pool keeps open even when idle.
	MinConns int32 `mapstructure:"min_conns" validate:"gte=0"`

	// MaxConns caps the number of concurrently open connections. Requests
	// beyond this limit wait for a connection to free up.
	MaxConns int32 `mapstructure:"max_conns" validate:"required,gt=0,gtefield=MinConns"`

	// QueryTimeoutSeconds bounds both the wait for a pooled connection and
	// the execution of a single store operation.
	QueryTimeoutSeconds int `mapstructure:"query_timeout_seconds" validate:"required,gt=0"`
}
