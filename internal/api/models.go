package api

// Common request/response structures

// CreateTaskRequest defines the payload for the task creation endpoint.
// Progress, AssignedTo, and Deadline are optional; pointer fields
// distinguish "absent" from a zero value.
type CreateTaskRequest struct {
	Name       string  `json:"name"`
	Progress   *int    `json:"progress"`
	AssignedTo *string `json:"assigned_to"`
	Deadline   *string `json:"deadline"`
	Priority   string  `json:"priority"`
}

// UpdateTaskRequest defines the payload for the progress update endpoint.
type UpdateTaskRequest struct {
	Progress *int `json:"progress" validate:"required"`
}

// TaskCreatedResponse defines the successful response for task creation.
type TaskCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
