package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskforge/task-api/internal/domain"
	"github.com/taskforge/task-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid name", domain.ErrInvalidTaskName, http.StatusBadRequest},
		{"invalid priority", domain.ErrInvalidPriority, http.StatusBadRequest},
		{"invalid deadline", domain.ErrInvalidDeadline, http.StatusBadRequest},
		{"deadline in past", domain.ErrDeadlineInPast, http.StatusBadRequest},
		{"unsafe input", domain.ErrUnsafeInput, http.StatusBadRequest},
		{"invalid progress", domain.ErrInvalidProgress, http.StatusBadRequest},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"generic not found", store.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("delete: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"transaction failure", store.ErrTransactionFailed, http.StatusInternalServerError},
		{"arbitrary error", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"invalid name", domain.ErrInvalidTaskName, "Invalid task name (3-100 alphanumeric characters)"},
		{"invalid priority", domain.ErrInvalidPriority, "Invalid priority value"},
		{"invalid deadline", domain.ErrInvalidDeadline, "Invalid deadline format. Use YYYY-MM-DD."},
		{"deadline in past", domain.ErrDeadlineInPast, "Deadline cannot be in the past"},
		{"unsafe input", domain.ErrUnsafeInput, "Invalid input detected"},
		{"invalid progress", domain.ErrInvalidProgress, "Progress must be between 0-100"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"wrapped task not found", fmt.Errorf("update: %w", store.ErrTaskNotFound), "Task not found"},
		{"internal error", errors.New("pq: relation does not exist"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := GetSafeErrorMessage(tc.err)
			assert.Equal(t, tc.want, got)
			if tc.err != nil {
				assert.NotContains(t, got, tc.err.Error(),
					"Client message must not echo the internal error")
			}
		})
	}
}
