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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrSealed        ErrorCode = "SEALED"

	// Configuration errors. Any of these halts a registry build.
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Pack errors
	ErrPackNotFound ErrorCode = "PACK_NOT_FOUND"
	ErrPackInvalid  ErrorCode = "PACK_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrOutput     ErrorCode = "OUTPUT"
)

// PacksError represents a structured error with code and details
type PacksError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PacksError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PacksError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PacksError) Is(target error) bool {
	var targetErr *PacksError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PacksError with the given code and message
func New(code ErrorCode, message string) *PacksError {
	return &PacksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PacksError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PacksError {
	return &PacksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PacksError.
// Returns nil when err is nil; callers must not return the result as an
// error interface without checking err first.
func Wrap(err error, code ErrorCode, message string) *PacksError {
	if err == nil {
		return nil
	}
	return &PacksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PacksError {
	if err == nil {
		return nil
	}
	return &PacksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PacksError) WithDetail(key string, value interface{}) *PacksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PacksError) WithDetails(details map[string]interface{}) *PacksError {
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
	var packsErr *PacksError
	if errors.As(err, &packsErr) {
		return packsErr.Code == code
	}
	return false
}

// IsConfigurationError reports whether err belongs to the configuration
// family: the declarative file could not be read, parsed or validated, or a
// programmatic pattern was rejected.
func IsConfigurationError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigValid:
		return true
	default:
		return false
	}
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PacksError
func GetErrorCode(err error) ErrorCode {
	var packsErr *PacksError
	if errors.As(err, &packsErr) {
		return packsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PacksError
func GetErrorDetails(err error) map[string]interface{} {
	var packsErr *PacksError
	if errors.As(err, &packsErr) {
		return packsErr.Details
	}
	return nil
}
