package llm

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsValidationError(t *testing.T) {
	err := NewValidationError("audio too small")
	if !IsValidationError(err) {
		t.Error("Expected IsValidationError to return true for validation error")
	}

	regularErr := NewEmptyResultError()
	if IsValidationError(regularErr) {
		t.Error("Expected IsValidationError to return false for non-validation error")
	}
}

func TestIsEmptyResultError(t *testing.T) {
	err := NewEmptyResultError()
	if !IsEmptyResultError(err) {
		t.Error("Expected IsEmptyResultError to return true for empty result error")
	}

	wrapped := fmt.Errorf("chat failed: %w", err)
	if !IsEmptyResultError(wrapped) {
		t.Error("Expected IsEmptyResultError to see through fmt.Errorf wrapping")
	}
}

func TestIsRetryableError(t *testing.T) {
	retryableErr := NewTransportError("server error", 503, true, nil)
	if !IsRetryableError(retryableErr) {
		t.Error("Expected IsRetryableError to return true for retryable transport error")
	}

	nonRetryableErr := NewTransportError("bad request", 400, false, nil)
	if IsRetryableError(nonRetryableErr) {
		t.Error("Expected IsRetryableError to return false for non-retryable error")
	}

	if IsRetryableError(errors.New("plain error")) {
		t.Error("Expected IsRetryableError to return false for unclassified error")
	}
}

func TestDecodeErrorKey(t *testing.T) {
	err := NewDecodeError("temperature", "cannot interpret bool as float", nil)
	if got := DecodeErrorKey(err); got != "temperature" {
		t.Errorf("Expected key 'temperature', got %q", got)
	}
	if !IsDecodeError(err) {
		t.Error("Expected IsDecodeError to return true for decode error")
	}

	if got := DecodeErrorKey(NewValidationError("nope")); got != "" {
		t.Errorf("Expected empty key for non-decode error, got %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	originalErr := errors.New("original error")
	wrappedErr := NewRequestBuildError("wrapped", originalErr)
	if !errors.Is(wrappedErr, originalErr) {
		t.Error("Expected error to unwrap to original error")
	}
}

func TestErrorMessageIncludesProvider(t *testing.T) {
	providerErr := errors.New("connection refused")
	err := NewTransportError("chat completion request failed", 0, false, providerErr)
	want := "chat completion request failed: connection refused"
	if err.Error() != want {
		t.Errorf("Expected error string %q, got %q", want, err.Error())
	}
}
