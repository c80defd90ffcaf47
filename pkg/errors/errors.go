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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Registration errors
	ErrBadPackageID  ErrorCode = "BAD_PACKAGE_ID"
	ErrBadDescriptor ErrorCode = "BAD_DESCRIPTOR"

	// Installation log errors
	ErrLogRead   ErrorCode = "LOG_READ"
	ErrLogWrite  ErrorCode = "LOG_WRITE"
	ErrLogCreate ErrorCode = "LOG_CREATE"

	// Installer execution errors
	ErrInstallerFailed ErrorCode = "INSTALLER_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// FirstrunError represents a structured error with code and details
type FirstrunError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FirstrunError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FirstrunError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FirstrunError) Is(target error) bool {
	var targetErr *FirstrunError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FirstrunError with the given code and message
func New(code ErrorCode, message string) *FirstrunError {
	return &FirstrunError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FirstrunError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FirstrunError {
	return &FirstrunError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FirstrunError
func Wrap(err error, code ErrorCode, message string) *FirstrunError {
	if err == nil {
		return nil
	}
	return &FirstrunError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FirstrunError {
	if err == nil {
		return nil
	}
	return &FirstrunError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FirstrunError) WithDetail(key string, value interface{}) *FirstrunError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var frErr *FirstrunError
	if errors.As(err, &frErr) {
		return frErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FirstrunError
func GetErrorCode(err error) ErrorCode {
	var frErr *FirstrunError
	if errors.As(err, &frErr) {
		return frErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FirstrunError
func GetErrorDetails(err error) map[string]interface{} {
	var frErr *FirstrunError
	if errors.As(err, &frErr) {
		return frErr.Details
	}
	return nil
}
