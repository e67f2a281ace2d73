package auth

import "errors"

var (
	ErrUnauthenticated  = errors.New("authentication is required for this endpoint")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidRole      = errors.New("invalid role, must be one of admin, trainer, student")
	ErrTokenInvalid     = errors.New("the access token is invalid or expired")
	ErrNotConfigured    = errors.New("token signing is not configured")
	ErrUnknownUser      = errors.New("the user does not exist")

	errLookupFailed = errors.New("an error occurred on the server during your request")
)
