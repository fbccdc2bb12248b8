package domain

import (
	"regexp"
	"strings"
)

// taskNameRegex accepts 3-100 characters drawn from word characters,
// whitespace, hyphen, and parentheses.
var taskNameRegex = regexp.MustCompile(`^[\w\s\-()]{3,100}$`)

// denylistTokens are literal substrings associated with SQL injection
// attempts. The scan is case-insensitive and deliberately coarse: a token
// matching anywhere in a value rejects the whole payload, including inside
// a longer word ("Selection" contains "select"). Parameterized queries in
// the store remain the actual defense; this is an extra gate at the edge
// that accepts false positives on legitimate text.
var denylistTokens = []string{";", "--", "union", "select", "insert", "update", "delete", "drop"}

// TaskData is a raw task payload as received from a client, before any
// parsing. Deadline is the unparsed string so a format failure can be
// reported distinctly from a past date.
type TaskData struct {
	Name       string
	Priority   string
	AssignedTo string
	Deadline   string
}

// ValidateTaskData applies the intake checks in order and returns the first
// failure: name shape, priority closure, deadline format and recency
// (against today's UTC date), then the injection denylist over every string
// field. A nil return means the payload is safe to hand to the store.
func ValidateTaskData(data TaskData) error {
	if !taskNameRegex.MatchString(data.Name) {
		return ErrInvalidTaskName
	}

	if !isValidPriority(Priority(data.Priority)) {
		return ErrInvalidPriority
	}

	if data.Deadline != "" {
		deadline, err := ParseDate(data.Deadline)
		if err != nil {
			return ErrInvalidDeadline
		}
		if deadline.Before(Today()) {
			return ErrDeadlineInPast
		}
	}

	for _, value := range []string{data.Name, data.Priority, data.AssignedTo, data.Deadline} {
		if ContainsUnsafeInput(value) {
			return ErrUnsafeInput
		}
	}

	return nil
}

// ContainsUnsafeInput reports whether the value matches the injection
// denylist.
func ContainsUnsafeInput(value string) bool {
	lowered := strings.ToLower(value)
	for _, token := range denylistTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

// ValidateProgress checks that a progress value lies within [0,100].
func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return ErrInvalidProgress
	}
	return nil
}
