package v1

import (
	"errors"
	"net/http"

	"github.com/traininghub/backend/internal/auth"
	"github.com/traininghub/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral), errors.Is(err, auth.ErrNotConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrTokenInvalid), errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrCapacity):
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
