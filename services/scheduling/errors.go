package scheduling

import (
	"errors"
	"fmt"
)

// Service error codes.
const (
	CodeNotFound      = "notFound"
	CodeForbidden     = "forbidden"
	CodeValidation    = "validationFailure"
	CodeConfiguration = "configurationError"
	CodeConflict      = "conflict"
)

// ServiceError is a structured domain error carrying a stable code.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &ServiceError{Code: CodeForbidden, Message: msg}
}

func NewValidationError(msg string) error {
	return &ServiceError{Code: CodeValidation, Message: msg}
}

func NewConfigurationError(msg string) error {
	return &ServiceError{Code: CodeConfiguration, Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

// ErrorCode extracts the service error code, or "" for untyped errors.
func ErrorCode(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
