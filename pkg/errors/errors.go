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
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Component errors
	ErrComponentNotFound ErrorCode = "COMPONENT_NOT_FOUND"
	ErrComponentInvalid  ErrorCode = "COMPONENT_INVALID"
	ErrSourceMissing     ErrorCode = "SOURCE_MISSING"

	// Detection errors
	ErrDetection ErrorCode = "DETECTION"

	// Reconciliation errors
	ErrConflict      ErrorCode = "CONFLICT"
	ErrNoCapability  ErrorCode = "NO_SYMLINK_CAPABILITY"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrSymlinkDelete ErrorCode = "SYMLINK_DELETE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// LinkdotError represents a structured error with code and details
type LinkdotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkdotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkdotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LinkdotError) Is(target error) bool {
	var targetErr *LinkdotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkdotError with the given code and message
func New(code ErrorCode, message string) *LinkdotError {
	return &LinkdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkdotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkdotError {
	return &LinkdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinkdotError
func Wrap(err error, code ErrorCode, message string) *LinkdotError {
	if err == nil {
		return nil
	}
	return &LinkdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkdotError {
	if err == nil {
		return nil
	}
	return &LinkdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkdotError) WithDetail(key string, value interface{}) *LinkdotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsCode checks whether err carries the given error code
func IsCode(err error, code ErrorCode) bool {
	var le *LinkdotError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}
