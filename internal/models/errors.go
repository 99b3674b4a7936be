package models

// ValidationError is an error type for malformed or out-of-range search
// input. It is raised before any upstream call is made.
type ValidationError struct {
	message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) ValidationError {
	return ValidationError{message: message}
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return e.message
}
