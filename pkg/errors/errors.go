// Package errors provides structured error types for the ipath client.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The taxonomy mirrors the stages of the mapping pipeline:
//   - INVALID_INPUT: malformed or empty value sequences, unknown columns
//   - DEGENERATE_RANGE: a source or output range with zero (or negative) span
//   - INVALID_OPTION: an option outside its enumerated set (export type, colormap)
//   - TYPE_MISMATCH: input that is not a well-formed table
//   - REMOTE_SERVICE: the iPath service answered with a non-success status
//   - NETWORK_ERROR: the request never produced a response
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOption, "unknown colormap %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidOption) {
//	    // Handle option error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "post %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeDegenerateRange Code = "DEGENERATE_RANGE"
	ErrCodeInvalidOption   Code = "INVALID_OPTION"
	ErrCodeTypeMismatch    Code = "TYPE_MISMATCH"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Remote errors
	ErrCodeRemoteService Code = "REMOTE_SERVICE"
	ErrCodeNetwork       Code = "NETWORK_ERROR"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coder is implemented by error types that carry a code without being an *Error.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error (or any error exposing
// a Code method, such as [RemoteServiceError]) with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// RemoteServiceError is returned when the iPath service answers with a
// non-success HTTP status. Body holds the raw response text, which usually
// contains the service's own explanation of what was wrong with the request.
type RemoteServiceError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RemoteServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("ipath service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("ipath service returned status %d: %s", e.StatusCode, e.Body)
}

// Code returns the error code for this error type.
func (e *RemoteServiceError) Code() Code {
	return ErrCodeRemoteService
}
