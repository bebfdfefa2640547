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
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrConfNotFound ErrorCode = "CONF_NOT_FOUND"

	// I/O errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrInputRead  ErrorCode = "INPUT_READ"

	// Command errors
	ErrExport  ErrorCode = "EXPORT"
	ErrInstall ErrorCode = "INSTALL"
)

// CgrcError represents a structured error with code and details
type CgrcError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CgrcError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CgrcError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CgrcError) Is(target error) bool {
	var targetErr *CgrcError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CgrcError with the given code and message
func New(code ErrorCode, message string) *CgrcError {
	return &CgrcError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CgrcError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CgrcError {
	return &CgrcError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CgrcError
func Wrap(err error, code ErrorCode, message string) *CgrcError {
	if err == nil {
		return nil
	}
	return &CgrcError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CgrcError {
	if err == nil {
		return nil
	}
	return &CgrcError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CgrcError) WithDetail(key string, value interface{}) *CgrcError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cgrcErr *CgrcError
	if errors.As(err, &cgrcErr) {
		return cgrcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CgrcError
func GetErrorCode(err error) ErrorCode {
	var cgrcErr *CgrcError
	if errors.As(err, &cgrcErr) {
		return cgrcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CgrcError
func GetErrorDetails(err error) map[string]interface{} {
	var cgrcErr *CgrcError
	if errors.As(err, &cgrcErr) {
		return cgrcErr.Details
	}
	return nil
}
