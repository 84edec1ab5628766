package huefy

import (
	"errors"
	"fmt"
	"time"

	"github.com/huefy/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

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

// sentinelByCode maps API error codes to public sentinel errors.
var sentinelByCode = map[string]error{
	"TEMPLATE_NOT_FOUND":    ErrTemplateNotFound,
	"INVALID_TEMPLATE_DATA": ErrInvalidTemplateData,
	"INVALID_RECIPIENT":     ErrInvalidRecipient,
	"AUTHENTICATION_FAILED": ErrUnauthorized,
	"INVALID_API_KEY":       ErrUnauthorized,
	"RATE_LIMIT_EXCEEDED":   ErrRateLimited,
	"PROVIDER_ERROR":        ErrProviderError,
}

// HuefyError is implemented by all SDK errors.
type HuefyError interface {
	error
	HuefyError() // marker method
}

// Error represents a failure reported by the Huefy API or a protocol
// violation such as a malformed response. Code carries the server error
// code when one was reported.
type Error struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *Error) Error() string {
	if e.Code != "" {
		if e.HTTPStatus > 0 {
			return fmt.Sprintf("huefy: API error %d [%s]: %s", e.HTTPStatus, e.Code, e.Message)
		}
		return fmt.Sprintf("huefy: API error [%s]: %s", e.Code, e.Message)
	}
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("huefy: API error %d: %s", e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("huefy: API error: %s", e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	sentinel, ok := sentinelByCode[e.Code]
	return ok && target == sentinel
}

// HuefyError implements the HuefyError interface.
func (e *Error) HuefyError() {}

// ValidationError indicates invalid input. Validation failures surface
// before any I/O is attempted and are never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("huefy: validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("huefy: validation failed: %s", e.Message)
}

// HuefyError implements the HuefyError interface.
func (e *ValidationError) HuefyError() {}

// NetworkError represents a connectivity, transport or subprocess failure.
type NetworkError struct {
	Err      error
	Attempts int
	ExitCode int // kernel transport only; 0 otherwise
	Stderr   string
}

func (e *NetworkError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("huefy: network error (exit code %d): %v: %s", e.ExitCode, e.Err, e.Stderr)
	}
	if e.Attempts > 1 {
		return fmt.Sprintf("huefy: network error after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("huefy: network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HuefyError implements the HuefyError interface.
func (e *NetworkError) HuefyError() {}

// TimeoutError represents an operation that exceeded its deadline.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("huefy: %s timed out after %v", e.Operation, e.Timeout)
}

// HuefyError implements the HuefyError interface.
func (e *TimeoutError) HuefyError() {}

// wrapError converts internal transport errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors
// and that callers never see internal types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &Error{
			Code:       apiErr.Code,
			Message:    apiErr.Message,
			HTTPStatus: apiErr.HTTPStatus,
			Err:        apiErr.Err,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		wrapped := &NetworkError{
			Err:      netErr.Err,
			Attempts: netErr.Attempts,
			ExitCode: netErr.ExitCode,
			Stderr:   netErr.Stderr,
		}
		var toErr *apierrors.TimeoutError
		if errors.As(netErr.Err, &toErr) {
			wrapped.Err = &TimeoutError{Operation: toErr.Operation, Timeout: toErr.Timeout}
		}
		return wrapped
	}

	var toErr *apierrors.TimeoutError
	if errors.As(err, &toErr) {
		return &TimeoutError{Operation: toErr.Operation, Timeout: toErr.Timeout}
	}

	return err
}
