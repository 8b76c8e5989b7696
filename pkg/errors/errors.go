// Package errors provides structured error types for the fen2svg
// application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI commands
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes mirror the failure policy of the rendering pipeline:
// usage and template errors are fatal before any diagram is produced,
// input-file and malformed-FEN errors skip the affected file or
// position, and output-file errors abort the run.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeTemplate, "template first line is not %q", "<svg")
//	if errors.Is(err, errors.ErrCodeTemplate) {
//	    // Handle template error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutputFile, origErr, "cannot open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure kinds of the rendering pipeline.
const (
	// ErrCodeUsage marks bad or missing command-line arguments.
	// Fatal before any processing.
	ErrCodeUsage Code = "USAGE_ERROR"

	// ErrCodeTemplate marks a missing or malformed definitions file.
	// Fatal before any diagram is produced.
	ErrCodeTemplate Code = "TEMPLATE_ERROR"

	// ErrCodeInputFile marks an input file that cannot be read. The
	// file's contribution is skipped; the run continues.
	ErrCodeInputFile Code = "INPUT_FILE_ERROR"

	// ErrCodeMalformedFEN marks a single position whose placement
	// field could not be parsed. The position is skipped; the run
	// continues.
	ErrCodeMalformedFEN Code = "MALFORMED_FEN"

	// ErrCodeOutputFile marks a destination that cannot be written.
	// Fatal for the whole run.
	ErrCodeOutputFile Code = "OUTPUT_FILE_ERROR"

	// ErrCodeInternal marks unexpected internal errors.
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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
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
