package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel conditions for the access-control and file-lifecycle model.
// Handlers and tests match on these with errors.Is.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrAccessDenied    = errors.New("access denied")
	ErrNotFound        = errors.New("not found")
	ErrUnsupportedType = errors.New("unsupported file type")
)

type AppError struct {
	HTTPCode int
	Message  string
	Data     interface{}
	Err      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newAppError(httpCode int, message string, err error) *AppError {
	return &AppError{HTTPCode: httpCode, Message: message, Err: err}
}

func errUnauthenticated(message string) *AppError {
	return newAppError(http.StatusUnauthorized, message, ErrUnauthenticated)
}

func errAccessDenied(message string) *AppError {
	return newAppError(http.StatusForbidden, message, ErrAccessDenied)
}

func errNotFound(message string) *AppError {
	return newAppError(http.StatusNotFound, message, ErrNotFound)
}

func errUnsupportedType(message string) *AppError {
	return newAppError(http.StatusBadRequest, message, ErrUnsupportedType)
}
