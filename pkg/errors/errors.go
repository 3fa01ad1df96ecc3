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

	// Registry errors
	ErrRegistryUnavailable ErrorCode = "REGISTRY_UNAVAILABLE"
	ErrEmptyRegistry       ErrorCode = "EMPTY_REGISTRY"
	ErrVaultNotFound       ErrorCode = "VAULT_NOT_FOUND"
	ErrSourceVaultNotFound ErrorCode = "SOURCE_VAULT_NOT_FOUND"

	// Apply-time errors
	ErrActionFailed ErrorCode = "ACTION_FAILED"
	ErrBackupRemove ErrorCode = "BACKUP_REMOVE"

	// Command boundary errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// OsmError represents a structured error with code and details
type OsmError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OsmError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OsmError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OsmError) Is(target error) bool {
	var targetErr *OsmError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OsmError with the given code and message
func New(code ErrorCode, message string) *OsmError {
	return &OsmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OsmError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OsmError {
	return &OsmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OsmError
func Wrap(err error, code ErrorCode, message string) *OsmError {
	if err == nil {
		return nil
	}
	return &OsmError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OsmError {
	if err == nil {
		return nil
	}
	return &OsmError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OsmError) WithDetail(key string, value interface{}) *OsmError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var osmErr *OsmError
	if errors.As(err, &osmErr) {
		return osmErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OsmError
func GetErrorCode(err error) ErrorCode {
	var osmErr *OsmError
	if errors.As(err, &osmErr) {
		return osmErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OsmError
func GetErrorDetails(err error) map[string]interface{} {
	var osmErr *OsmError
	if errors.As(err, &osmErr) {
		return osmErr.Details
	}
	return nil
}
