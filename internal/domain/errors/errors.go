package errors

import (
	"net/http"

	"pushclient/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors.Is
// works against the predefined values after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Negotiation returned a non-enabling state. A terminal value, not a crash.
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"notification permission denied",
		"",
	)

	ErrTokenAcquisitionFailed = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_ACQUISITION_FAILED",
		"failed to acquire device token",
		"",
	)

	ErrTokenNotAvailable = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_AVAILABLE",
		"device token not yet available",
		"",
	)

	ErrTelemetryFailed = NewBaseError(
		http.StatusBadGateway,
		"TELEMETRY_FAILED",
		"failed to transmit telemetry event",
		"",
	)

	ErrRenderFailed = NewBaseError(
		http.StatusInternalServerError,
		"RENDER_FAILED",
		"failed to render local notification",
		"",
	)

	ErrChannelNotRegistered = NewBaseError(
		http.StatusConflict,
		"CHANNEL_NOT_REGISTERED",
		"notification channel is not registered",
		"",
	)

	ErrInvalidMessage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MESSAGE",
		"invalid inbound message",
		"",
	)

	ErrInvalidLifecycleState = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LIFECYCLE_STATE",
		"invalid lifecycle state",
		"",
	)

	ErrPushSendFailed = NewBaseError(
		http.StatusBadGateway,
		"PUSH_SEND_FAILED",
		"failed to send push notification",
		"",
	)

	ErrPushSenderNotConfigured = NewBaseError(
		http.StatusServiceUnavailable,
		"PUSH_SENDER_NOT_CONFIGURED",
		"firebase credentials are not configured",
		"",
	)
)
