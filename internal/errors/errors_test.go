package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeUnknown,
		CodeValidation,
		CodeConfiguration,
		CodeTimeout,
		CodeCanceled,
		CodePermission,
		CodeUnsupportedPlatform,
		CodeCommandFailed,
		CodeOutputDecode,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("Error code %v should not be empty", code)
		}
	}
}

func TestScanError(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewScanError(CodeCommandFailed, "command failed")
		if err.Code != CodeCommandFailed {
			t.Errorf("Expected code %s, got %s", CodeCommandFailed, err.Code)
		}
		if err.Message != "command failed" {
			t.Errorf("Expected message 'command failed', got '%s'", err.Message)
		}
		if err.Context == nil {
			t.Error("Context should be initialized")
		}
	})

	t.Run("error with platform", func(t *testing.T) {
		err := NewScanErrorWithPlatform(CodeUnsupportedPlatform, "no variant", "plan9")
		if err.Platform != "plan9" {
			t.Errorf("Expected platform 'plan9', got '%s'", err.Platform)
		}
		expected := "[UNSUPPORTED_PLATFORM] no variant (platform: plan9)"
		if err.Error() != expected {
			t.Errorf("Expected '%s', got '%s'", expected, err.Error())
		}
	})

	t.Run("error without platform", func(t *testing.T) {
		err := NewScanError(CodeCommandFailed, "command failed")
		expected := "[COMMAND_FAILED] command failed"
		if err.Error() != expected {
			t.Errorf("Expected '%s', got '%s'", expected, err.Error())
		}
	})

	t.Run("wrapped error unwraps", func(t *testing.T) {
		cause := fmt.Errorf("exit status 1")
		err := WrapScanError(CodeCommandFailed, "command failed", cause)
		if !errors.Is(err, cause) {
			t.Error("Wrapped error should unwrap to its cause")
		}
	})

	t.Run("with context", func(t *testing.T) {
		err := NewScanError(CodeCommandFailed, "failed").WithContext("timeout", true)
		if err.Context["timeout"] != true {
			t.Error("Context value should be stored")
		}
	})

	t.Run("with command", func(t *testing.T) {
		err := NewScanError(CodeCommandFailed, "failed").WithCommand("airport -s")
		if err.Command != "airport -s" {
			t.Errorf("Expected command 'airport -s', got '%s'", err.Command)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewConfigFieldError(CodeValidation, "invalid value", "scan.timeout", -1)
		expected := "[VALIDATION] invalid value (field: scan.timeout)"
		if err.Error() != expected {
			t.Errorf("Expected '%s', got '%s'", expected, err.Error())
		}
	})

	t.Run("without field", func(t *testing.T) {
		err := NewConfigError(CodeConfiguration, "bad config")
		expected := "[CONFIGURATION] bad config"
		if err.Error() != expected {
			t.Errorf("Expected '%s', got '%s'", expected, err.Error())
		}
	})
}

func TestIsCode(t *testing.T) {
	scanErr := NewScanError(CodeCommandFailed, "failed")
	if !IsCode(scanErr, CodeCommandFailed) {
		t.Error("IsCode should match the scan error's code")
	}
	if IsCode(scanErr, CodeTimeout) {
		t.Error("IsCode should not match a different code")
	}

	configErr := NewConfigError(CodeValidation, "bad")
	if !IsCode(configErr, CodeValidation) {
		t.Error("IsCode should match the config error's code")
	}

	plain := errors.New("plain")
	if IsCode(plain, CodeCommandFailed) {
		t.Error("IsCode should not match plain errors")
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(NewScanError(CodeCommandFailed, "x")); code != CodeCommandFailed {
		t.Errorf("Expected %s, got %s", CodeCommandFailed, code)
	}
	if code := GetCode(errors.New("plain")); code != CodeUnknown {
		t.Errorf("Expected %s for plain error, got %s", CodeUnknown, code)
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		fatal bool
	}{
		{"unsupported platform", ErrUnsupportedPlatform("plan9"), true},
		{"command failed", ErrCommandFailed("airport -s", fmt.Errorf("exit 1")), true},
		{"insufficient privilege", ErrInsufficientPrivilege("darwin"), true},
		{"validation", ErrConfigInvalid("scan.timeout", -1), false},
		{"plain error", errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsFatal(tt.err) != tt.fatal {
				t.Errorf("IsFatal(%v) = %v, want %v", tt.err, !tt.fatal, tt.fatal)
			}
		})
	}
}

func TestErrCommandTimeout(t *testing.T) {
	cause := fmt.Errorf("context deadline exceeded")
	err := ErrCommandTimeout("airport -s", cause)

	if err.Code != CodeCommandFailed {
		t.Errorf("Timeout aborts the scan as a command failure, got code %s", err.Code)
	}
	if err.Command != "airport -s" {
		t.Errorf("Expected command recorded, got '%s'", err.Command)
	}
	if err.Context["timeout"] != true {
		t.Error("Timeout context marker should be set")
	}
	if !errors.Is(err, cause) {
		t.Error("Timeout error should unwrap to its cause")
	}
}
