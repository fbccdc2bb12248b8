package domain

// Priority is the urgency level of a task.
type Priority string

// Possible priority values.
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Task represents a unit of work tracked by the service. The ID is assigned
// by the store on creation; only Progress is ever mutated afterwards.
type Task struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Progress   int      `json:"progress"`
	AssignedTo *string  `json:"assigned_to"`
	Deadline   *Date    `json:"deadline"`
	Priority   Priority `json:"priority"`
}

// NewTask creates a Task with the given fields, leaving the ID zero until
// the store assigns one. Returns an error if validation fails.
func NewTask(name string, progress int, assignedTo *string, deadline *Date, priority Priority) (*Task, error) {
	task := &Task{
		Name:       name,
		Progress:   progress,
		AssignedTo: assignedTo,
		Deadline:   deadline,
		Priority:   priority,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
//
// A deadline in the past is deliberately not an error here: a stored task's
// deadline becomes past simply by time passing. The recency check applies
// only at intake, in ValidateTaskData.
func (t *Task) Validate() error {
	if !taskNameRegex.MatchString(t.Name) {
		return ErrInvalidTaskName
	}

	if !isValidPriority(t.Priority) {
		return ErrInvalidPriority
	}

	return ValidateProgress(t.Progress)
}

// isValidPriority checks if the given priority is a valid Priority.
func isValidPriority(priority Priority) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
