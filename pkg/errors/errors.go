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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrNoHome   ErrorCode = "NO_HOME"

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigRead     ErrorCode = "CONFIG_READ"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"

	// Dotfiles list errors
	ErrDotfilesNoneFound ErrorCode = "DOTFILES_NONE_FOUND"
	ErrDotfilesRead      ErrorCode = "DOTFILES_READ"
	ErrDotfilesParseJSON ErrorCode = "DOTFILES_PARSE_JSON"
	ErrDotfilesParseYAML ErrorCode = "DOTFILES_PARSE_YAML"
	ErrDotfilesParseTOML ErrorCode = "DOTFILES_PARSE_TOML"
	ErrNixNotFound       ErrorCode = "NIX_NOT_FOUND"
	ErrNixEvalFailed     ErrorCode = "NIX_EVAL_FAILED"

	// Install errors
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrRemoveFailed  ErrorCode = "REMOVE_FAILED"
)

// ManagerError represents a structured error with code and details
type ManagerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ManagerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ManagerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ManagerError) Is(target error) bool {
	var targetErr *ManagerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ManagerError with the given code and message
func New(code ErrorCode, message string) *ManagerError {
	return &ManagerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ManagerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ManagerError {
	return &ManagerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ManagerError
func Wrap(err error, code ErrorCode, message string) *ManagerError {
	if err == nil {
		return nil
	}
	return &ManagerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ManagerError {
	if err == nil {
		return nil
	}
	return &ManagerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ManagerError) WithDetail(key string, value interface{}) *ManagerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mgrErr *ManagerError
	if errors.As(err, &mgrErr) {
		return mgrErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ManagerError
func GetErrorCode(err error) ErrorCode {
	var mgrErr *ManagerError
	if errors.As(err, &mgrErr) {
		return mgrErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ManagerError
func GetErrorDetails(err error) map[string]interface{} {
	var mgrErr *ManagerError
	if errors.As(err, &mgrErr) {
		return mgrErr.Details
	}
	return nil
}
