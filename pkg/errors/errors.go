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

	// Shortcut errors
	ErrNoShortcuts ErrorCode = "NO_SHORTCUTS"
	ErrLinkResolve ErrorCode = "LINK_RESOLVE"

	// Collection errors
	ErrNoFiles    ErrorCode = "NO_FILES"
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Archive errors
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrArchiveCreate ErrorCode = "ARCHIVE_CREATE"
	ErrArchiveWrite  ErrorCode = "ARCHIVE_WRITE"
	ErrArchiveClose  ErrorCode = "ARCHIVE_CLOSE"

	// Upload errors
	ErrUploadConfig ErrorCode = "UPLOAD_CONFIG"
	ErrUploadFailed ErrorCode = "UPLOAD_FAILED"
)

// LinkzipError represents a structured error with code and details
type LinkzipError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkzipError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkzipError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LinkzipError) Is(target error) bool {
	var targetErr *LinkzipError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkzipError with the given code and message
func New(code ErrorCode, message string) *LinkzipError {
	return &LinkzipError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkzipError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkzipError {
	return &LinkzipError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinkzipError
func Wrap(err error, code ErrorCode, message string) *LinkzipError {
	if err == nil {
		return nil
	}
	return &LinkzipError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkzipError {
	if err == nil {
		return nil
	}
	return &LinkzipError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkzipError) WithDetail(key string, value interface{}) *LinkzipError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var zipErr *LinkzipError
	if errors.As(err, &zipErr) {
		return zipErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkzipError
func GetErrorCode(err error) ErrorCode {
	var zipErr *LinkzipError
	if errors.As(err, &zipErr) {
		return zipErr.Code
	}
	return ErrUnknown
}
