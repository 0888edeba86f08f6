// Package errors provides structured error handling for airscout operations.
// It defines error codes, error types, and utilities for creating and
// inspecting errors with platform and command context.
package errors

import (
	"fmt"
)

// ErrorCode represents different types of errors that can occur.
type ErrorCode string

const (
	// General errors.
	CodeUnknown       ErrorCode = "UNKNOWN"
	CodeValidation    ErrorCode = "VALIDATION"
	CodeConfiguration ErrorCode = "CONFIGURATION"
	CodeTimeout       ErrorCode = "TIMEOUT"
	CodeCanceled      ErrorCode = "CANCELED"
	CodePermission    ErrorCode = "PERMISSION"

	// Scan pipeline errors.
	CodeUnsupportedPlatform ErrorCode = "UNSUPPORTED_PLATFORM"
	CodeCommandFailed       ErrorCode = "COMMAND_FAILED"
	CodeOutputDecode        ErrorCode = "OUTPUT_DECODE"
)

// ScanError represents an error that occurred during a wireless scan.
type ScanError struct {
	Code     ErrorCode
	Message  string
	Platform string
	Command  string
	Cause    error
	Context  map[string]interface{}
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Platform != "" {
		return fmt.Sprintf("[%s] %s (platform: %s)", e.Code, e.Message, e.Platform)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *ScanError) WithContext(key string, value interface{}) *ScanError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithCommand records the command template that was being executed.
func (e *ScanError) WithCommand(command string) *ScanError {
	e.Command = command
	return e
}

// NewScanError creates a new scan error with the specified code and message.
func NewScanError(code ErrorCode, message string) *ScanError {
	return &ScanError{
		Code:    code,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// NewScanErrorWithPlatform creates a scan error for a specific platform.
func NewScanErrorWithPlatform(code ErrorCode, message, platform string) *ScanError {
	return &ScanError{
		Code:     code,
		Message:  message,
		Platform: platform,
		Context:  make(map[string]interface{}),
	}
}

// WrapScanError wraps an existing error as a scan error.
func WrapScanError(code ErrorCode, message string, err error) *ScanError {
	return &ScanError{
		Code:    code,
		Message: message,
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// WrapScanErrorWithPlatform wraps an error with platform information.
func WrapScanErrorWithPlatform(code ErrorCode, message, platform string, err error) *ScanError {
	return &ScanError{
		Code:     code,
		Message:  message,
		Platform: platform,
		Cause:    err,
		Context:  make(map[string]interface{}),
	}
}

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Code    ErrorCode
	Message string
	Field   string
	Value   interface{}
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new configuration error.
func NewConfigError(code ErrorCode, message string) *ConfigError {
	return &ConfigError{
		Code:    code,
		Message: message,
	}
}

// NewConfigFieldError creates a configuration error for a specific field.
func NewConfigFieldError(code ErrorCode, message, field string, value interface{}) *ConfigError {
	return &ConfigError{
		Code:    code,
		Message: message,
		Field:   field,
		Value:   value,
	}
}

// Utility functions for common error operations

// IsCode checks if an error has a specific error code.
func IsCode(err error, code ErrorCode) bool {
	switch e := err.(type) {
	case *ScanError:
		return e.Code == code
	case *ConfigError:
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error if it has one.
func GetCode(err error) ErrorCode {
	switch e := err.(type) {
	case *ScanError:
		return e.Code
	case *ConfigError:
		return e.Code
	}
	return CodeUnknown
}

// IsFatal determines if an error indicates a condition that aborts the scan.
// Only command- and platform-level failures are fatal; malformed output
// lines are absorbed by the parser and never surface as errors.
func IsFatal(err error) bool {
	code := GetCode(err)
	switch code {
	case CodeUnsupportedPlatform, CodeCommandFailed, CodePermission, CodeConfiguration:
		return true
	default:
		return false
	}
}

// Common error creation functions

// ErrUnsupportedPlatform creates an error for hosts with no registered
// scanner variant.
func ErrUnsupportedPlatform(platform string) *ScanError {
	return NewScanErrorWithPlatform(CodeUnsupportedPlatform, "No scanner variant registered for platform", platform)
}

// ErrCommandFailed creates an error for scan utility invocation failures.
func ErrCommandFailed(command string, err error) *ScanError {
	return WrapScanError(CodeCommandFailed, "Scan command failed", err).WithCommand(command)
}

// ErrCommandTimeout creates an error for scan utility invocations that
// exceeded the configured timeout.
func ErrCommandTimeout(command string, err error) *ScanError {
	return WrapScanError(CodeCommandFailed, "Scan command timed out", err).
		WithCommand(command).
		WithContext("timeout", true)
}

// ErrInsufficientPrivilege creates an error for scans that require elevated
// privileges the current process does not hold.
func ErrInsufficientPrivilege(platform string) *ScanError {
	return NewScanErrorWithPlatform(CodePermission, "Scan command requires elevated privileges", platform)
}

// ErrConfigInvalid creates an error for invalid configuration.
func ErrConfigInvalid(field string, value interface{}) *ConfigError {
	return NewConfigFieldError(CodeValidation, "Invalid configuration value", field, value)
}
