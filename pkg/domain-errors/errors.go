// Package domainerrors defines coded errors that cross the service boundary.
// Handlers translate them into HTTP statuses via pkg/platform/httputil;
// services construct them where an infrastructure fact or validation failure
// becomes a caller-visible condition.
package domainerrors

import "fmt"

// Code identifies the class of a domain error.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeValidation   Code = "validation_error"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeUnauthorized Code = "unauthorized"
	CodeInternal     Code = "internal_error"
)

// Error carries a stable code alongside a human-readable description.
type Error struct {
	Code        Code
	Description string
	wrapped     error
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *Error) Unwrap() error { return e.wrapped }

// New constructs a coded error with a description.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// Newf constructs a coded error with a formatted description.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Description: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause so errors.Is/As keep working through the boundary.
func Wrap(code Code, description string, cause error) *Error {
	return &Error{Code: code, Description: description, wrapped: cause}
}
