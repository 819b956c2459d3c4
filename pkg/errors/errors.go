// Package errors provides structured error types for cardsheet.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and pipeline
//   - Machine-readable error codes for programmatic handling
//   - A clean split between fatal errors (abort before output) and
//     recoverable ones (log and continue)
//
// # Error Codes
//
// Fatal codes abort the whole run before any output file is touched:
// INVALID_LIST_FORMAT, LIST_NOT_FOUND, NO_KNOWN_CARDS, INVALID_SHEET_SIZE,
// INVALID_SCALE, INVALID_SOURCE_DIR, PDF_WRITE.
//
// Recoverable codes mark entries or groups that are skipped while the run
// continues: UNKNOWN_CARD, LAYOUT_INFEASIBLE, MULTI_PAGE_SOURCE, PDF_READ.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidScale, "scale must be positive, got %s", s)
//	if errors.Is(err, errors.ErrCodeInvalidScale) {
//	    // handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodePDFRead, origErr, "reading %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Card-list errors
	ErrCodeInvalidListFormat Code = "INVALID_LIST_FORMAT"
	ErrCodeListNotFound      Code = "LIST_NOT_FOUND"

	// Catalog errors
	ErrCodeNoKnownCards    Code = "NO_KNOWN_CARDS"
	ErrCodeUnknownCard     Code = "UNKNOWN_CARD"
	ErrCodeMultiPageSource Code = "MULTI_PAGE_SOURCE"
	ErrCodeInvalidSrcDir   Code = "INVALID_SOURCE_DIR"

	// Layout errors
	ErrCodeLayoutInfeasible Code = "LAYOUT_INFEASIBLE"
	ErrCodeInvalidSheetSize Code = "INVALID_SHEET_SIZE"
	ErrCodeInvalidScale     Code = "INVALID_SCALE"

	// Document I/O errors
	ErrCodePDFRead  Code = "PDF_READ"
	ErrCodePDFWrite Code = "PDF_WRITE"

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
