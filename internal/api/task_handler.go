// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskforge/task-api/internal/api/shared"
	"github.com/taskforge/task-api/internal/domain"
	"github.com/taskforge/task-api/internal/platform/logger"
	"github.com/taskforge/task-api/internal/redact"
	"github.com/taskforge/task-api/internal/store"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
// It returns every task ordered by ID.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to retrieve tasks", err)
		return
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// CreateTask handles POST /tasks requests.
// The payload is validated before any store access; validation failures
// never acquire a database connection.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	data := domain.TaskData{
		Name:       req.Name,
		Priority:   req.Priority,
		AssignedTo: stringValue(req.AssignedTo),
		Deadline:   stringValue(req.Deadline),
	}
	if err := domain.ValidateTaskData(data); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	progress := 0
	if req.Progress != nil {
		progress = *req.Progress
		if err := domain.ValidateProgress(progress); err != nil {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusBadRequest, GetSafeErrorMessage(err), err)
			return
		}
	}

	var deadline *domain.Date
	if req.Deadline != nil && *req.Deadline != "" {
		// Already validated; a parse failure here would be a programming error.
		parsed, err := domain.ParseDate(*req.Deadline)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r,
				http.StatusBadRequest, GetSafeErrorMessage(domain.ErrInvalidDeadline), err)
			return
		}
		deadline = &parsed
	}

	task, err := domain.NewTask(req.Name, progress, req.AssignedTo, deadline, domain.Priority(req.Priority))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	id, err := h.taskStore.Create(r.Context(), task)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task created", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusCreated, TaskCreatedResponse{
		Message: "Task added successfully",
		ID:      id,
	})
}

// UpdateTask handles PUT /tasks/{id} requests.
// Only the progress field is mutable; it must be present and within [0,100].
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDParam(w, r, log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, "Progress is required", err)
		return
	}

	if err := domain.ValidateProgress(*req.Progress); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.taskStore.UpdateProgress(r.Context(), id, *req.Progress); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to update task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task updated",
		slog.Int64("task_id", id),
		slog.Int("progress", *req.Progress))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Task updated successfully",
	})
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := taskIDParam(w, r, log)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to delete task"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: "Task deleted successfully",
	})
}

// taskIDParam extracts and parses the {id} path parameter. On failure it
// writes a 400 response and returns ok=false; the error detail is the
// client's own input, so echoing a generic message is enough.
func taskIDParam(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		if err == nil {
			err = errors.New("negative task ID")
		}
		log.Warn("invalid task ID in URL path", slog.String("task_id", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return 0, false
	}
	return id, true
}

// stringValue dereferences an optional string, mapping nil to "".
func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
