package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskforge/task-api/internal/config"
	"github.com/taskforge/task-api/internal/platform/postgres"
	"github.com/taskforge/task-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	pool   *pgxpool.Pool

	// Stores (using interfaces for proper abstraction)
	taskStore store.TaskStore
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application initialization: configuration, logger, and the
// database connection pool.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *application {
	queryTimeout := time.Duration(cfg.Database.QueryTimeoutSeconds) * time.Second

	return &application{
		config:    cfg,
		logger:    logger,
		pool:      pool,
		taskStore: postgres.NewPostgresTaskStore(pool, queryTimeout, logger),
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
	}

	app.logger.Info("Application shutdown completed")
}
