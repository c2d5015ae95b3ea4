// Package errors defines API-level errors carrying the HTTP status code to
// report at the transport boundary.
package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// APIError is an error with an associated HTTP status code.
type APIError struct {
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrMissingAuthorizationToken reports a request without a token.
func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "access denied"}
}

// NewErrInvalidAuthorizationToken reports a malformed or unverifiable token.
func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{HTTPCode: http.StatusBadRequest, Message: "invalid token"}
}

// NewErrUserNotFound reports a login attempt with an unknown email.
func NewErrUserNotFound(email string) *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: fmt.Sprintf("user %s not found", email)}
}

// NewErrInvalidPassword reports a login attempt with a wrong password.
func NewErrInvalidPassword() *APIError {
	return &APIError{HTTPCode: http.StatusUnauthorized, Message: "invalid password"}
}

// NewErrNoticeNotFound reports a notice that is missing or not owned by the
// caller. The two cases are deliberately indistinguishable.
func NewErrNoticeNotFound(id uuid.UUID) *APIError {
	return &APIError{HTTPCode: http.StatusNotFound, Message: fmt.Sprintf("notice %s not found", id)}
}
