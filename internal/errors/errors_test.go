// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--threads"),
			expected: "invalid value 42 for flag --threads",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestSearchError(t *testing.T) {
	t.Parallel()
	cause := errors.New("invalid work partition")
	err := SearchError{Scheme: "range", Cause: cause}

	if got, want := err.Error(), "range search: invalid work partition"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the original cause")
	}
	if !errors.Is(SearchError{Scheme: "divisibility", Cause: context.Canceled}, context.Canceled) {
		t.Error("errors.Is should find context.Canceled in the chain")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         ValidationError
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns formatted message",
			err:      ValidationError{Field: "threads", Message: "must be greater than zero"},
			expected: `validation error for "threads": must be greater than zero`,
		},
		{
			name:     "Error with different field",
			err:      ValidationError{Field: "exponent", Message: "must be between 1 and 30"},
			expected: `validation error for "exponent": must be between 1 and 30`,
		},
		{
			name:        "errors.As works with ValidationError",
			err:         ValidationError{Field: "scheme", Message: "unknown scheme"},
			expected:    `validation error for "scheme": unknown scheme`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if tt.checkTypeAs {
				var validationErr ValidationError
				if !errors.As(err, &validationErr) {
					t.Error("expected error to be ValidationError type")
				}
				if validationErr.Field != tt.err.Field {
					t.Errorf("expected Field %q, got %q", tt.err.Field, validationErr.Field)
				}
			}
		})
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	err := MismatchError{Reference: "range", Other: "divisibility", Index: 3}
	want := `prime sets of "range" and "divisibility" differ at index 3`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	var mm MismatchError
	if !errors.As(WrapError(err, "comparison"), &mm) {
		t.Error("errors.As should find MismatchError through WrapError")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load config",
			expectedMsg: "failed to load config: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "operation timed out",
			expectedMsg: "operation timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("permission denied"),
			format:      "failed to write %s (%d primes)",
			args:        []any{"primes.txt", 10},
			expectedMsg: "failed to write primes.txt (10 primes): permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := IsContextError(tt.err)
			if result != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "threads", Message: "must be positive"}, ExitErrorConfig},
		{"wrapped validation", WrapError(ValidationError{Field: "x", Message: "y"}, "load"), ExitErrorConfig},
		{"mismatch", MismatchError{Reference: "range", Other: "divisibility"}, ExitErrorMismatch},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleSearchError(t *testing.T) {
	t.Parallel()

	t.Run("nil error writes nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if code := HandleSearchError(nil, &buf); code != ExitSuccess {
			t.Errorf("expected ExitSuccess, got %d", code)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("config error is labeled", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		code := HandleSearchError(NewConfigError("threads must be > 0"), &buf)
		if code != ExitErrorConfig {
			t.Errorf("expected ExitErrorConfig, got %d", code)
		}
		if !strings.Contains(buf.String(), "Configuration error: threads must be > 0") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("mismatch is labeled", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		code := HandleSearchError(MismatchError{Reference: "a", Other: "b"}, &buf)
		if code != ExitErrorMismatch {
			t.Errorf("expected ExitErrorMismatch, got %d", code)
		}
		if !strings.HasPrefix(buf.String(), "Result mismatch:") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorMismatch": ExitErrorMismatch,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if other, ok := seen[code]; ok {
			t.Errorf("exit code %d used by both %s and %s", code, name, other)
		}
		seen[code] = name
	}
}
