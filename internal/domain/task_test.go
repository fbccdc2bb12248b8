package domain

import (
	"errors"
	"testing"
)

func TestNewTask(t *testing.T) {
	t.Parallel()
	assignee := "alex"
	deadline := NewDate(2099, 1, 1)

	task, err := NewTask("Write the report", 25, &assignee, &deadline, PriorityHigh)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID != 0 {
		t.Errorf("Expected zero ID before store assignment, got %d", task.ID)
	}

	if task.Name != "Write the report" {
		t.Errorf("Expected name %q, got %q", "Write the report", task.Name)
	}

	if task.Progress != 25 {
		t.Errorf("Expected progress 25, got %d", task.Progress)
	}

	if task.AssignedTo == nil || *task.AssignedTo != assignee {
		t.Errorf("Expected assignee %q, got %v", assignee, task.AssignedTo)
	}

	if task.Deadline == nil || task.Deadline.String() != "2099-01-01" {
		t.Errorf("Expected deadline 2099-01-01, got %v", task.Deadline)
	}

	if task.Priority != PriorityHigh {
		t.Errorf("Expected priority %s, got %s", PriorityHigh, task.Priority)
	}

	// Optional fields may be absent
	task, err = NewTask("Plan sprint (Q3)", 0, nil, nil, PriorityLow)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.AssignedTo != nil || task.Deadline != nil {
		t.Error("Expected nil assignee and deadline")
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()
	validTask := Task{
		Name:     "Ship release",
		Progress: 50,
		Priority: PriorityMedium,
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.Name = "ab"
	if err := invalidTask.Validate(); !errors.Is(err, ErrInvalidTaskName) {
		t.Errorf("Expected error %v, got %v", ErrInvalidTaskName, err)
	}

	invalidTask = validTask
	invalidTask.Priority = "Urgent"
	if err := invalidTask.Validate(); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("Expected error %v, got %v", ErrInvalidPriority, err)
	}

	invalidTask = validTask
	invalidTask.Progress = 101
	if err := invalidTask.Validate(); !errors.Is(err, ErrInvalidProgress) {
		t.Errorf("Expected error %v, got %v", ErrInvalidProgress, err)
	}

	invalidTask = validTask
	invalidTask.Progress = -1
	if err := invalidTask.Validate(); !errors.Is(err, ErrInvalidProgress) {
		t.Errorf("Expected error %v, got %v", ErrInvalidProgress, err)
	}
}
