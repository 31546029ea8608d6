package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidStatus = errors.New("invalid status (must be todo, inProgress or done)")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)

// IsValidationError reports whether err is one of the request validation errors
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrInvalidTaskID) ||
		errors.Is(err, ErrInvalidStatus)
}
