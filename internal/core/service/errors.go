package service

import (
	"errors"
	"net/http"
)

// ServiceError carries the HTTP status a service failure maps to along with a
// caller-facing message.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code int, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// NewValidationError reports a malformed or missing required field (400).
func NewValidationError(message string) *ServiceError {
	return NewServiceError(http.StatusBadRequest, message)
}

// NewUnauthorizedError reports an absent or bad credential (401).
func NewUnauthorizedError(message string) *ServiceError {
	return NewServiceError(http.StatusUnauthorized, message)
}

// NewForbiddenError reports an authenticated but not permitted request (403).
func NewForbiddenError(message string) *ServiceError {
	return NewServiceError(http.StatusForbidden, message)
}

// NewNotFoundError reports a missing entity (404).
func NewNotFoundError(message string) *ServiceError {
	return NewServiceError(http.StatusNotFound, message)
}

// AsServiceError unwraps err into a *ServiceError if it carries one.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
