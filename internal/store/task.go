package store

import (
	"context"

	"github.com/taskforge/task-api/internal/domain"
)

// TaskStore defines the persistence operations for tasks. Each method maps
// to exactly one atomic unit of work against the database.
type TaskStore interface {
	// List returns all tasks ordered by ID ascending. Returns an empty
	// slice, never nil, when the table is empty.
	List(ctx context.Context) ([]domain.Task, error)

	// Create inserts the task and returns the store-assigned ID.
	// The task must already satisfy domain validation.
	Create(ctx context.Context, task *domain.Task) (int64, error)

	// UpdateProgress sets the progress of the task with the given ID.
	// Returns ErrTaskNotFound if no such task exists.
	UpdateProgress(ctx context.Context, id int64, progress int) error

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if no such task exists.
	Delete(ctx context.Context, id int64) error
}
