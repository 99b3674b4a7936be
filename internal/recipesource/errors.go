package recipesource

import "fmt"

// CollaboratorError is any failure returned by the upstream recipe API:
// network errors, non-2xx responses, or malformed payloads. The pipeline
// surfaces it without interpreting the status code.
type CollaboratorError struct {
	StatusCode int
	Message    string
}

// Error returns the error message.
func (e *CollaboratorError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("recipe source: %s (status %d)", e.Message, e.StatusCode)
	}
	return "recipe source: " + e.Message
}

// AuthorizationError is the CollaboratorError raised when a write
// operation is rejected for a missing or invalid credential. No local
// credential check exists; the upstream's verdict is surfaced as-is.
type AuthorizationError struct {
	CollaboratorError
}

// Unwrap exposes the embedded CollaboratorError to errors.As.
func (e *AuthorizationError) Unwrap() error {
	return &e.CollaboratorError
}
