// Package main implements the entry point for the task API server, which
// manages task records over HTTP backed by PostgreSQL.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/taskforge/task-api/internal/config"
	"github.com/taskforge/task-api/internal/platform/logger"
	"github.com/taskforge/task-api/internal/platform/postgres"
)

// main initializes configuration, logging, and the database connection pool,
// then starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run performs startup so main stays a thin exit-code wrapper.
func run() error {
	// Load a .env file when present; absence is fine in deployed
	// environments where configuration comes from the process environment.
	if err := godotenv.Load(); err != nil {
		log.Printf(".env file not found, continuing with system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logr, err := logger.Setup(cfg.Server)
	if err != nil {
		return err
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"db_min_conns", cfg.Database.MinConns,
		"db_max_conns", cfg.Database.MaxConns)

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Database, logr)
	if err != nil {
		return err
	}

	app := newApplication(cfg, logr, pool)

	return app.Run(ctx)
}
