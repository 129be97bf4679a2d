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

	// Setup errors, all fatal before any file is touched
	ErrGitMissing      ErrorCode = "GIT_MISSING"
	ErrSourceNotFound  ErrorCode = "SOURCE_NOT_FOUND"
	ErrNoAgentFiles    ErrorCode = "NO_AGENT_FILES"
	ErrDestNotWritable ErrorCode = "DEST_NOT_WRITABLE"
	ErrDirCreate       ErrorCode = "DIR_CREATE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Per-file transfer errors, recovered locally by the run loop
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrBackupFailed ErrorCode = "BACKUP_FAILED"

	// Interactive prompt errors
	ErrPromptFailed ErrorCode = "PROMPT_FAILED"
)

// AgentupError represents a structured error with code and details
type AgentupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AgentupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AgentupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AgentupError) Is(target error) bool {
	var targetErr *AgentupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AgentupError with the given code and message
func New(code ErrorCode, message string) *AgentupError {
	return &AgentupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AgentupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AgentupError {
	return &AgentupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AgentupError
func Wrap(err error, code ErrorCode, message string) *AgentupError {
	if err == nil {
		return nil
	}
	return &AgentupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AgentupError {
	if err == nil {
		return nil
	}
	return &AgentupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AgentupError) WithDetail(key string, value interface{}) *AgentupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var agentupErr *AgentupError
	if errors.As(err, &agentupErr) {
		return agentupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AgentupError
func GetErrorCode(err error) ErrorCode {
	var agentupErr *AgentupError
	if errors.As(err, &agentupErr) {
		return agentupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AgentupError
func GetErrorDetails(err error) map[string]interface{} {
	var agentupErr *AgentupError
	if errors.As(err, &agentupErr) {
		return agentupErr.Details
	}
	return nil
}
