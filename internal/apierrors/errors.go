// Package apierrors provides shared error types for the Huefy client.
// Both transports report failures through these types; the root package
// converts them to public errors at the facade boundary.
package apierrors

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrTemplateNotFound is returned when the template key is unknown.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTemplateData is returned when template data fails server validation.
	ErrInvalidTemplateData = errors.New("invalid template data")

	// ErrInvalidRecipient is returned when the server rejects the recipient address.
	ErrInvalidRecipient = errors.New("invalid recipient")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrProviderError is returned when the upstream email provider fails.
	ErrProviderError = errors.New("email provider error")
)

// codeRegistry maps server error codes to sentinel errors. Codes absent
// from the table degrade to a generic APIError carrying code and message.
var codeRegistry = map[string]error{
	"TEMPLATE_NOT_FOUND":    ErrTemplateNotFound,
	"INVALID_TEMPLATE_DATA": ErrInvalidTemplateData,
	"INVALID_RECIPIENT":     ErrInvalidRecipient,
	"AUTHENTICATION_FAILED": ErrUnauthorized,
	"INVALID_API_KEY":       ErrUnauthorized,
	"RATE_LIMIT_EXCEEDED":   ErrRateLimited,
	"PROVIDER_ERROR":        ErrProviderError,
}

// APIError represents an error reported by the Huefy API, over either
// transport.
type APIError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error // underlying cause, e.g. a JSON decode failure

	sentinel error
}

// FromCode builds an APIError for a server-reported code. Known codes
// match their sentinel via errors.Is; unknown codes keep the original
// code and message with no sentinel.
func FromCode(code, message string, httpStatus int) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		sentinel:   codeRegistry[code],
	}
}

func (e *APIError) Error() string {
	if e.Code != "" {
		if e.HTTPStatus > 0 {
			return fmt.Sprintf("API error %d [%s]: %s", e.HTTPStatus, e.Code, e.Message)
		}
		return fmt.Sprintf("API error [%s]: %s", e.Code, e.Message)
	}
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("API error %d: %s", e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return e.sentinel != nil && target == e.sentinel
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NetworkError represents a connectivity, transport or subprocess failure.
type NetworkError struct {
	Err      error
	Attempts int
	ExitCode int // kernel transport only; 0 otherwise
	Stderr   string
}

func (e *NetworkError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("network error (exit code %d): %v: %s", e.ExitCode, e.Err, e.Stderr)
	}
	if e.Attempts > 1 {
		return fmt.Sprintf("network error after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutError represents an operation that exceeded its deadline.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %v", e.Operation, e.Timeout)
}
