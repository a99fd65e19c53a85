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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Relocation rule errors
	ErrRuleInvalid    ErrorCode = "RULE_INVALID"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"
	ErrGlobInvalid    ErrorCode = "GLOB_INVALID"

	// Archive errors
	ErrArchiveOpen  ErrorCode = "ARCHIVE_OPEN"
	ErrArchiveRead  ErrorCode = "ARCHIVE_READ"
	ErrArchiveWrite ErrorCode = "ARCHIVE_WRITE"
)

// ShadeError represents a structured error with code and details
type ShadeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShadeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShadeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShadeError) Is(target error) bool {
	var targetErr *ShadeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShadeError with the given code and message
func New(code ErrorCode, message string) *ShadeError {
	return &ShadeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShadeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShadeError {
	return &ShadeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShadeError
func Wrap(err error, code ErrorCode, message string) *ShadeError {
	if err == nil {
		return nil
	}
	return &ShadeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShadeError {
	if err == nil {
		return nil
	}
	return &ShadeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShadeError) WithDetail(key string, value interface{}) *ShadeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shadeErr *ShadeError
	if errors.As(err, &shadeErr) {
		return shadeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ShadeError
func GetErrorCode(err error) ErrorCode {
	var shadeErr *ShadeError
	if errors.As(err, &shadeErr) {
		return shadeErr.Code
	}
	return ErrUnknown
}
