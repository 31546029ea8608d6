package cli

import (
	"errors"

	"github.com/thenoetrevino/tasklane/internal/app"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, missing arguments, ambiguous ids.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, label not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable stdin or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid status, invalid colors,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// UsageError reports a command invoked with wrong arguments
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// NotFoundError reports an id or name that matched nothing
type NotFoundError struct {
	Kind string
	Ref  string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found: " + e.Ref
}

// ExitCode maps an error returned by a command onto an exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usage *UsageError
	var notFound *NotFoundError
	switch {
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &notFound), app.IsNotFound(err):
		return ExitNotFound
	case app.IsValidation(err):
		return ExitValidation
	case errors.Is(err, ErrDataRead):
		return ExitDataErr
	}
	return ExitError
}

// ErrorCode returns the machine-readable code printed for err
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	}
	return "ERROR"
}
