// Package errors provides structured error types for polytile.
//
// Every failure that reaches a user carries a machine-readable [Code] so the
// CLI can tell configuration mistakes apart from tiling strings that simply
// do not fit the board.
//
// # Error Codes
//
//   - INVALID_*: the input, shape, encoding or configuration is malformed
//   - ILLEGAL_PLACEMENT / OVERFULL_INPUT: the tiling string does not describe
//     a tiling of the board
//   - FILE_NOT_FOUND: a referenced file is missing
//   - INTERNAL_*, UNSUPPORTED: unexpected failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidShape, "top row of %s is empty", name)
//	if errors.Is(err, errors.ErrCodeInvalidShape) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidShape    Code = "INVALID_SHAPE"
	ErrCodeInvalidEncoding Code = "INVALID_ENCODING"
	ErrCodeInvalidSymbol   Code = "INVALID_SYMBOL"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Tiling errors
	ErrCodeIllegalPlacement Code = "ILLEGAL_PLACEMENT"
	ErrCodeOverfullInput    Code = "OVERFULL_INPUT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsTilingFailure reports whether err means the tiling string does not
// describe a tiling of the board, as opposed to a malformed configuration.
func IsTilingFailure(err error) bool {
	switch GetCode(err) {
	case ErrCodeIllegalPlacement, ErrCodeOverfullInput:
		return true
	}
	return false
}
