package app

import (
	"errors"

	labelservice "github.com/thenoetrevino/tasklane/internal/services/label"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

// Op names a facade operation
type Op string

// Facade operations
const (
	OpLoad         Op = "load"
	OpCreateTask   Op = "create_task"
	OpUpdateTask   Op = "update_task"
	OpDeleteTask   Op = "delete_task"
	OpChangeStatus Op = "change_status"
	OpReorderTasks Op = "reorder_tasks"
	OpCreateLabel  Op = "create_label"
	OpUpdateLabel  Op = "update_label"
	OpDeleteLabel  Op = "delete_label"
	OpSaveTheme    Op = "save_theme"
)

// Message returns the fixed user-facing message for a failed operation
func (op Op) Message() string {
	switch op {
	case OpLoad:
		return "failed to load data"
	case OpCreateTask:
		return "failed to create task"
	case OpUpdateTask:
		return "failed to update task"
	case OpDeleteTask:
		return "failed to delete task"
	case OpChangeStatus:
		return "failed to change status"
	case OpReorderTasks:
		return "failed to reorder tasks"
	case OpCreateLabel:
		return "failed to create label"
	case OpUpdateLabel:
		return "failed to update label"
	case OpDeleteLabel:
		return "failed to delete label"
	case OpSaveTheme:
		return "failed to save theme"
	}
	return "operation failed"
}

// OperationError is returned by every failed facade operation.
// Error() is the fixed per-operation message; the cause stays reachable through Unwrap.
type OperationError struct {
	Op  Op
	Err error
}

func (e *OperationError) Error() string {
	return e.Op.Message()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err was caused by invalid input
func IsValidation(err error) bool {
	return taskservice.IsValidationError(err) || labelservice.IsValidationError(err)
}

// IsNotFound reports whether err was caused by a missing task or label
func IsNotFound(err error) bool {
	return errors.Is(err, taskservice.ErrTaskNotFound) || errors.Is(err, labelservice.ErrLabelNotFound)
}
