package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the login name or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid name or password")
	// ErrUserNotFound is returned when no user row matches the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrNameTaken is returned when creating a user whose name already exists.
	ErrNameTaken = errors.New("name already taken")
	// ErrEmptyUpdate is returned when an update carries neither a name nor a password.
	ErrEmptyUpdate = errors.New("at least one of 'name' or 'password' must be provided")
)

// ErrorResponse is the JSON body every failed request answers with.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse builds the standard error payload.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}

// StatusFor maps domain errors onto HTTP status codes. Anything outside
// the known taxonomy is a store or internal failure and maps to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmptyUpdate):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
