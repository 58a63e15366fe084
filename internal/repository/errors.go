package repository

import "errors"

// Common repository errors
var (
	// ErrTrialNotFound is returned when a trial is not found
	ErrTrialNotFound = errors.New("trial not found")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")
)
