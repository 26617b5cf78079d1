package llm

import (
	"errors"
	"fmt"
)

// Error represents a classified bridge error.
type Error struct {
	Type        ErrorType
	Message     string
	Key         string // Offending option key for decode errors
	Retryable   bool
	StatusCode  int
	ProviderErr error // Original provider-specific error
}

// ErrorType represents the category of error.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeDecode       ErrorType = "decode"
	ErrorTypeRequestBuild ErrorType = "request_build"
	ErrorTypeTransport    ErrorType = "transport"
	ErrorTypeEmptyResult  ErrorType = "empty_result"
	ErrorTypeTimeout      ErrorType = "timeout"
	// ErrorTypeLock is reserved for handle contention failures. Nothing
	// produces it today: sync.Mutex acquisition cannot fail.
	ErrorTypeLock    ErrorType = "lock"
	ErrorTypeUnknown ErrorType = "unknown"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ProviderErr != nil {
		return e.Message + ": " + e.ProviderErr.Error()
	}
	return e.Message
}

// Unwrap returns the underlying provider error.
func (e *Error) Unwrap() error {
	return e.ProviderErr
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return isErrorType(err, ErrorTypeValidation)
}

// IsDecodeError checks if an error is an option decode error.
func IsDecodeError(err error) bool {
	return isErrorType(err, ErrorTypeDecode)
}

// IsRequestBuildError checks if an error is a request build error.
func IsRequestBuildError(err error) bool {
	return isErrorType(err, ErrorTypeRequestBuild)
}

// IsTransportError checks if an error is a network/provider transport error.
func IsTransportError(err error) bool {
	return isErrorType(err, ErrorTypeTransport)
}

// IsEmptyResultError checks if an error signals a completion with no choices.
func IsEmptyResultError(err error) bool {
	return isErrorType(err, ErrorTypeEmptyResult)
}

// IsRetryableError checks if an error is retryable.
func IsRetryableError(err error) bool {
	var bridgeErr *Error
	if errors.As(err, &bridgeErr) {
		return bridgeErr.Retryable
	}
	return false
}

// DecodeErrorKey extracts the offending option key from a decode error.
// Returns the empty string for any other error.
func DecodeErrorKey(err error) string {
	var bridgeErr *Error
	if errors.As(err, &bridgeErr) && bridgeErr.Type == ErrorTypeDecode {
		return bridgeErr.Key
	}
	return ""
}

func isErrorType(err error, t ErrorType) bool {
	var bridgeErr *Error
	if errors.As(err, &bridgeErr) {
		return bridgeErr.Type == t
	}
	return false
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) *Error {
	return &Error{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewDecodeError creates a new decode error for the given option key.
func NewDecodeError(key, message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeDecode,
		Message:     fmt.Sprintf("failed to decode option %q: %s", key, message),
		Key:         key,
		ProviderErr: providerErr,
	}
}

// NewRequestBuildError creates a new request build error.
func NewRequestBuildError(message string, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeRequestBuild,
		Message:     message,
		ProviderErr: providerErr,
	}
}

// NewTransportError creates a new transport error carrying the provider's
// message verbatim. Server-side failures are marked retryable by the caller.
func NewTransportError(message string, statusCode int, retryable bool, providerErr error) *Error {
	return &Error{
		Type:        ErrorTypeTransport,
		Message:     message,
		Retryable:   retryable,
		StatusCode:  statusCode,
		ProviderErr: providerErr,
	}
}

// NewEmptyResultError creates the error returned when a chat completion
// yields zero choices.
func NewEmptyResultError() *Error {
	return &Error{
		Type:    ErrorTypeEmptyResult,
		Message: "no completion choices returned",
	}
}
