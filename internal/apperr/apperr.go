package apperr

import (
	"errors"
	"net/http"
)

// Error is a policy decision carried as an error: a status code plus the
// message that ends up in the {"message": ...} envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func Authentication(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func Authorization(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: msg}
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// *Error.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
