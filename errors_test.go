package huefy

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/huefy/client-go/internal/apierrors"
)

func TestError_SentinelMatching(t *testing.T) {
	tests := []struct {
		code     string
		sentinel error
	}{
		{"TEMPLATE_NOT_FOUND", ErrTemplateNotFound},
		{"INVALID_TEMPLATE_DATA", ErrInvalidTemplateData},
		{"INVALID_RECIPIENT", ErrInvalidRecipient},
		{"AUTHENTICATION_FAILED", ErrUnauthorized},
		{"INVALID_API_KEY", ErrUnauthorized},
		{"RATE_LIMIT_EXCEEDED", ErrRateLimited},
		{"PROVIDER_ERROR", ErrProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &Error{Code: tt.code, Message: "m"}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%s, sentinel) = false, want true", tt.code)
			}
		})
	}
}

func TestError_UnknownCodeKeepsInformation(t *testing.T) {
	err := &Error{Code: "SOMETHING_NEW", Message: "what is this", HTTPStatus: 422}

	if errors.Is(err, ErrTemplateNotFound) {
		t.Error("unknown code matched an unrelated sentinel")
	}
	for _, want := range []string{"SOMETHING_NEW", "what is this", "422"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error() = %q, missing %q", err.Error(), want)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "recipient", Message: "invalid email address"}
	if !strings.Contains(err.Error(), "recipient") {
		t.Errorf("Error() = %q, missing field name", err.Error())
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Err: cause, Attempts: 4}

	if !errors.Is(err, cause) {
		t.Error("NetworkError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "4 attempts") {
		t.Errorf("Error() = %q, missing attempt count", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if wrapError(nil) != nil {
			t.Error("wrapError(nil) != nil")
		}
	})

	t.Run("api error", func(t *testing.T) {
		wrapped := wrapError(apierrors.FromCode("RATE_LIMIT_EXCEEDED", "slow down", 429))
		var apiErr *Error
		if !errors.As(wrapped, &apiErr) {
			t.Fatalf("wrapError() type = %T, want *Error", wrapped)
		}
		if apiErr.Code != "RATE_LIMIT_EXCEEDED" || apiErr.HTTPStatus != 429 {
			t.Errorf("got code=%q status=%d", apiErr.Code, apiErr.HTTPStatus)
		}
		if !errors.Is(wrapped, ErrRateLimited) {
			t.Error("wrapped error does not match public sentinel")
		}
	})

	t.Run("network error", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		wrapped := wrapError(&apierrors.NetworkError{Err: cause, Attempts: 3})
		var netErr *NetworkError
		if !errors.As(wrapped, &netErr) {
			t.Fatalf("wrapError() type = %T, want *NetworkError", wrapped)
		}
		if netErr.Attempts != 3 {
			t.Errorf("Attempts = %d, want 3", netErr.Attempts)
		}
	})

	t.Run("kernel process failure", func(t *testing.T) {
		wrapped := wrapError(&apierrors.NetworkError{
			Err:      errors.New("kernel process failed"),
			ExitCode: 1,
			Stderr:   "panic: boom",
		})
		var netErr *NetworkError
		if !errors.As(wrapped, &netErr) {
			t.Fatalf("wrapError() type = %T, want *NetworkError", wrapped)
		}
		if netErr.ExitCode != 1 || netErr.Stderr != "panic: boom" {
			t.Errorf("got exit=%d stderr=%q", netErr.ExitCode, netErr.Stderr)
		}
	})

	t.Run("timeout inside network error", func(t *testing.T) {
		wrapped := wrapError(&apierrors.NetworkError{
			Err:      &apierrors.TimeoutError{Operation: "HTTP request", Timeout: time.Second},
			Attempts: 2,
		})
		var toErr *TimeoutError
		if !errors.As(wrapped, &toErr) {
			t.Fatalf("wrapError() = %v, want to contain *TimeoutError", wrapped)
		}
		if toErr.Timeout != time.Second {
			t.Errorf("Timeout = %v, want 1s", toErr.Timeout)
		}
	})

	t.Run("bare timeout", func(t *testing.T) {
		wrapped := wrapError(&apierrors.TimeoutError{Operation: "kernel invocation", Timeout: time.Second})
		var toErr *TimeoutError
		if !errors.As(wrapped, &toErr) {
			t.Fatalf("wrapError() type = %T, want *TimeoutError", wrapped)
		}
	})

	t.Run("unknown error passes through", func(t *testing.T) {
		cause := errors.New("some other failure")
		if wrapError(cause) != cause {
			t.Error("unrelated error was modified")
		}
	})
}

func TestHuefyErrorMarker(t *testing.T) {
	// All public error types implement the marker interface.
	for _, err := range []HuefyError{
		&Error{},
		&ValidationError{},
		&NetworkError{},
		&TimeoutError{},
	} {
		if err == nil {
			t.Error("nil marker implementation")
		}
	}
}
