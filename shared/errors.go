package shared

import (
	"errors"
	"net/http"
)

// AppError is the workflow layer's error vocabulary. Repository and provider
// failures are always wrapped into one of these before crossing a service
// boundary, so handlers map StatusCode to the response 1:1 without
// re-inspecting causes.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, err error, message string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Err: err}
}

// NewBadRequestError marks client-supplied data that failed validation.
func NewBadRequestError(err error, message string) *AppError {
	return NewAppError(http.StatusBadRequest, err, message)
}

func NewNotFoundError(err error, message string) *AppError {
	return NewAppError(http.StatusNotFound, err, message)
}

func NewConflictError(err error, message string) *AppError {
	return NewAppError(http.StatusConflict, err, message)
}

// NewTooManyRequestsError carries retry data (cooldown state) for the caller.
func NewTooManyRequestsError(err error, message string, data interface{}) *AppError {
	appErr := NewAppError(http.StatusTooManyRequests, err, message)
	appErr.Data = data
	return appErr
}

func NewServiceUnavailableError(err error, message string) *AppError {
	return NewAppError(http.StatusServiceUnavailable, err, message)
}

// NewBadGatewayError marks an upstream (GD servers) failure.
func NewBadGatewayError(err error, message string) *AppError {
	return NewAppError(http.StatusBadGateway, err, message)
}

func NewUnauthorizedError(err error, message string) *AppError {
	return NewAppError(http.StatusUnauthorized, err, message)
}

func NewInternalError(err error, message string) *AppError {
	return NewAppError(http.StatusInternalServerError, err, message)
}

// GetAppError unwraps err to the nearest AppError, if any.
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
