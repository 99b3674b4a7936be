package handlers

import (
	"errors"
	"net/http"

	"github.com/firstbites/agent-api/internal/models"
	"github.com/firstbites/agent-api/internal/recipesource"
)

// statusForError maps the service error taxonomy onto HTTP status codes.
// Malformed input is the caller's fault; a rejected credential is passed
// through; anything else from the upstream is a bad gateway.
func statusForError(err error) int {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var authErr *recipesource.AuthorizationError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}
	var collabErr *recipesource.CollaboratorError
	if errors.As(err, &collabErr) {
		if collabErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
