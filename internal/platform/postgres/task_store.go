package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskforge/task-api/internal/domain"
	"github.com/taskforge/task-api/internal/platform/logger"
	"github.com/taskforge/task-api/internal/redact"
	"github.com/taskforge/task-api/internal/store"
)

// Both the pool and a transaction satisfy the store's database abstraction,
// so every query below runs against either one.
var (
	_ store.DBTX = (*pgxpool.Pool)(nil)
	_ store.DBTX = (pgx.Tx)(nil)
)

// PostgresTaskStore implements the store.TaskStore interface using a
// PostgreSQL database as the storage backend. Every write runs inside its
// own transaction on a connection acquired from the pool; the connection is
// released on every exit path, including errors and panics.
type PostgresTaskStore struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
	logger       *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. The pool must already be initialized; queryTimeout
// bounds the acquire wait plus execution of each operation (<= 0 disables
// the bound). If logger is nil, the process default is used.
func NewPostgresTaskStore(pool *pgxpool.Pool, queryTimeout time.Duration, log *slog.Logger) *PostgresTaskStore {
	if pool == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pool cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresTaskStore{
		pool:         pool,
		queryTimeout: queryTimeout,
		logger:       log.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// opContext derives the bounded context a single store operation runs under.
func (s *PostgresTaskStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// List implements store.TaskStore.List.
// It returns all tasks ordered by ID ascending. Reads run outside an
// explicit transaction; the connection is still released on every path via
// rows.Close.
func (s *PostgresTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	tasks, err := s.listTasks(ctx, s.pool)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", redact.Error(err)))
		return nil, MapError(err)
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// listTasks runs the list query against the given connection or transaction.
func (s *PostgresTaskStore) listTasks(ctx context.Context, db store.DBTX) ([]domain.Task, error) {
	query := `
		SELECT id, name, progress, assigned_to, deadline, priority
		FROM tasks
		ORDER BY id
	`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var (
			task       domain.Task
			assignedTo *string
			deadline   *time.Time
			priority   string
		)

		if err := rows.Scan(&task.ID, &task.Name, &task.Progress, &assignedTo, &deadline, &priority); err != nil {
			return nil, err
		}

		task.AssignedTo = assignedTo
		task.Priority = domain.Priority(priority)
		if deadline != nil {
			d := domain.DateOf(*deadline)
			task.Deadline = &d
		}

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Create implements store.TaskStore.Create.
// It inserts the task inside a transaction and returns the store-assigned
// ID. Validation failures are reported before any connection is acquired.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return 0, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var id int64
	err := store.RunInTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		insertedID, err := s.insertTask(ctx, tx, task)
		if err != nil {
			return err
		}
		id = insertedID
		return nil
	})

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", redact.Error(err)),
			slog.String("task_name", task.Name))
		return 0, MapError(err)
	}

	task.ID = id
	log.Info("task created successfully",
		slog.Int64("task_id", id),
		slog.String("priority", string(task.Priority)))
	return id, nil
}

// insertTask runs the insert against the given connection or transaction
// and returns the assigned ID.
func (s *PostgresTaskStore) insertTask(ctx context.Context, db store.DBTX, task *domain.Task) (int64, error) {
	query := `
		INSERT INTO tasks (name, progress, assigned_to, deadline, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := db.QueryRow(ctx, query,
		task.Name,
		task.Progress,
		task.AssignedTo,
		deadlineParam(task.Deadline),
		task.Priority,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateProgress implements store.TaskStore.UpdateProgress.
// Returns store.ErrTaskNotFound after a rollback when no row matches the ID.
func (s *PostgresTaskStore) UpdateProgress(ctx context.Context, id int64, progress int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateProgress(progress); err != nil {
		log.Warn("progress validation failed during update",
			slog.Int64("task_id", id),
			slog.Int("progress", progress))
		return err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	err := store.RunInTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.updateProgress(ctx, tx, id, progress)
	})

	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for progress update",
				slog.Int64("task_id", id))
			return err
		}
		log.Error("failed to update task progress",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	log.Info("task progress updated successfully",
		slog.Int64("task_id", id),
		slog.Int("progress", progress))
	return nil
}

// updateProgress runs the update against the given connection or
// transaction.
func (s *PostgresTaskStore) updateProgress(ctx context.Context, db store.DBTX, id int64, progress int) error {
	query := `
		UPDATE tasks
		SET progress = $1
		WHERE id = $2
	`

	tag, err := db.Exec(ctx, query, progress, id)
	if err != nil {
		return err
	}
	return CheckRowsAffected(tag, "task")
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound after a rollback when no row matches the ID.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	err := store.RunInTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return s.deleteTask(ctx, tx, id)
	})

	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found for delete",
				slog.Int64("task_id", id))
			return err
		}
		log.Error("failed to delete task",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	log.Info("task deleted successfully", slog.Int64("task_id", id))
	return nil
}

// deleteTask runs the delete against the given connection or transaction.
func (s *PostgresTaskStore) deleteTask(ctx context.Context, db store.DBTX, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return CheckRowsAffected(tag, "task")
}

// deadlineParam converts an optional domain date to the driver
// representation.
func deadlineParam(d *domain.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}
