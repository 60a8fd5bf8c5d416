package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Reconciliation errors. Both are fatal for the whole run.
	ErrIO            ErrorCode = "IO_ERROR"
	ErrScriptFailure ErrorCode = "SCRIPT_FAILURE"
)

// Detail keys shared by error producers and renderers
const (
	DetailPath     = "path"
	DetailExitCode = "exit_code"
	DetailOp       = "op"
)

// DotlinkError represents a structured error with code and details
type DotlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotlinkError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DotlinkError carrying the same code
func (e *DotlinkError) Is(target error) bool {
	var targetErr *DotlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotlinkError with the given code and message
func New(code ErrorCode, message string) *DotlinkError {
	return &DotlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotlinkError {
	return &DotlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotlinkError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *DotlinkError {
	if err == nil {
		return nil
	}
	return &DotlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotlinkError {
	if err == nil {
		return nil
	}
	return &DotlinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// IOError wraps a filesystem failure on path. The message names the path so
// the diagnostic printed by the CLI points at the offending entry.
func IOError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	return Wrapf(err, ErrIO, "%s %s", op, path).
		WithDetail(DetailOp, op).
		WithDetail(DetailPath, path)
}

// ScriptFailure reports an install script that exited non-zero.
func ScriptFailure(err error, displayPath string, exitCode int) error {
	e := Newf(ErrScriptFailure, "install script %s exited with code %d", displayPath, exitCode)
	e.Wrapped = err
	return e.WithDetail(DetailPath, displayPath).
		WithDetail(DetailExitCode, exitCode)
}

// WithDetail adds a detail to the error
func (e *DotlinkError) WithDetail(key string, value interface{}) *DotlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DotlinkError) WithDetails(details map[string]interface{}) *DotlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dlErr *DotlinkError
	if errors.As(err, &dlErr) {
		return dlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotlinkError
func GetErrorCode(err error) ErrorCode {
	var dlErr *DotlinkError
	if errors.As(err, &dlErr) {
		return dlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotlinkError
func GetErrorDetails(err error) map[string]interface{} {
	var dlErr *DotlinkError
	if errors.As(err, &dlErr) {
		return dlErr.Details
	}
	return nil
}
