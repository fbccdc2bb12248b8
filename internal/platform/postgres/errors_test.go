package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taskforge/task-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil passes through",
			err:  nil,
			want: nil,
		},
		{
			name: "no rows maps to not found",
			err:  pgx.ErrNoRows,
			want: store.ErrNotFound,
		},
		{
			name: "wrapped no rows maps to not found",
			err:  fmt.Errorf("query failed: %w", pgx.ErrNoRows),
			want: store.ErrNotFound,
		},
		{
			name: "unique violation maps to invalid entity",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "tasks_pkey"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "foreign key violation maps to invalid entity",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "tasks_owner_fkey"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "check violation maps to invalid entity",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "tasks_progress_check"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "not null violation maps to invalid entity",
			err:  &pgconn.PgError{Code: "23502", ColumnName: "name"},
			want: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tc.err)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}

	// Unrecognized errors pass through unchanged.
	sentinel := errors.New("connection reset")
	assert.Same(t, sentinel, MapError(sentinel))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	t.Parallel()

	checkErr := &pgconn.PgError{Code: "23514", ConstraintName: "tasks_progress_check"}
	assert.True(t, IsCheckConstraintViolation(checkErr))
	assert.True(t, IsCheckConstraintViolation(fmt.Errorf("update failed: %w", checkErr)))

	assert.False(t, IsCheckConstraintViolation(nil))
	assert.False(t, IsCheckConstraintViolation(errors.New("plain error")))
	assert.False(t, IsCheckConstraintViolation(&pgconn.PgError{Code: "23505"}))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(pgconn.NewCommandTag("UPDATE 1"), "task"))
	assert.NoError(t, CheckRowsAffected(pgconn.NewCommandTag("DELETE 3"), "task"))

	err := CheckRowsAffected(pgconn.NewCommandTag("UPDATE 0"), "task")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound, "Task not-found error should match the generic sentinel")

	err = CheckRowsAffected(pgconn.NewCommandTag("DELETE 0"), "record")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NotErrorIs(t, err, store.ErrTaskNotFound)
}
