package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is prepended (with an underscore) to every environment variable
// the application reads, e.g. TASKAPI_DATABASE_URL.
const envPrefix = "TASKAPI"

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Environment variables use the TASKAPI_ prefix
// with underscores separating nested keys (TASKAPI_SERVER_PORT,
// TASKAPI_DATABASE_MAX_CONNS, ...).
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults mirror the service's original deployment values: port 8000,
	// pool of 1..20 connections.
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.query_timeout_seconds", 5)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so bind
	// every key explicitly, including the ones without defaults.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"database.min_conns",
		"database.max_conns",
		"database.query_timeout_seconds",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
