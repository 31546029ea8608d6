package label

import "errors"

// Label-related errors
var (
	// Validation errors
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 50 characters")
	ErrInvalidColor   = errors.New("invalid color format (must be hex color like #FFFFFF)")
	ErrInvalidLabelID = errors.New("invalid label ID")

	// Business logic errors
	ErrLabelNotFound = errors.New("label not found")
)

// IsValidationError reports whether err is one of the request validation errors
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrNameTooLong) ||
		errors.Is(err, ErrInvalidColor) ||
		errors.Is(err, ErrInvalidLabelID)
}
