package common

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

type ErrorCode int

const (
	CodeInternal ErrorCode = iota
	CodeValidation
	CodeUnauthorized
	CodeForbidden
	CodeNotFound
	CodeConflict
)

// AppError is the single error shape domain code returns. Handlers never map
// statuses themselves; WriteError does the translation in one place.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error

	// Fields carries per-field validation messages for CodeValidation.
	Fields map[string]string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation, CodeConflict:
		// duplicate email/username surfaces as a 400 like every other bad request
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewError(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func WrapError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func ValidationError(message string, fields map[string]string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Fields: fields}
}

func ErrUnauthorized(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func ErrForbidden(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func ErrNotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func ErrConflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// AsAppError normalizes any error into an AppError. Unrecognized errors come
// back as internal so callers never leak driver messages to clients.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound("Not found")
	}
	return WrapError(CodeInternal, "Internal server error", err)
}
