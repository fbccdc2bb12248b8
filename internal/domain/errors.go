package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the root of every intake validation failure.
	// Specific failures below wrap it so callers can match the whole
	// class with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTaskName is returned when a task name is missing, too
	// short, too long, or contains characters outside the allowed set.
	ErrInvalidTaskName = fmt.Errorf("%w: invalid task name", ErrValidation)

	// ErrInvalidPriority is returned when a priority is not one of the
	// three enumerated values.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority value", ErrValidation)

	// ErrInvalidDeadline is returned when a deadline does not parse as a
	// YYYY-MM-DD calendar date.
	ErrInvalidDeadline = fmt.Errorf("%w: invalid deadline format", ErrValidation)

	// ErrDeadlineInPast is returned when a deadline falls strictly before
	// today's UTC date.
	ErrDeadlineInPast = fmt.Errorf("%w: deadline in the past", ErrValidation)

	// ErrUnsafeInput is returned when any string field matches the
	// injection denylist.
	ErrUnsafeInput = fmt.Errorf("%w: unsafe input detected", ErrValidation)

	// ErrInvalidProgress is returned when a progress value is outside [0,100].
	ErrInvalidProgress = fmt.Errorf("%w: progress out of range", ErrValidation)

	// ErrInvalidDate is returned when a string cannot be parsed as a
	// calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
