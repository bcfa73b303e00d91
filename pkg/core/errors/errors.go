// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     errors
// Description: Structured errors with codes for the Simpson tooling
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

// Package errors provides coded errors for numerical operations. Callers
// branch on the Code, never on the message text.
package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// Code classifies an error
type Code string

const (
	CodeUnknown         Code = "UNKNOWN"
	CodeInternal        Code = "INTERNAL"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidConfig   Code = "INVALID_CONFIG"
	CodeMissingConfig   Code = "MISSING_CONFIG"
	CodeIO              Code = "IO"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Error is a structured error with code, operation and details
type Error struct {
	message   string
	cause     error
	code      Code
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		message: message,
		code:    code,
		details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a message and code. Wrap(nil, ...) returns nil.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.cause = err
	return e
}

// InvalidArgument is shorthand for New(CodeInvalidArgument, ...)
func InvalidArgument(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.operation != "" {
		b.WriteString(e.operation)
		b.WriteString(": ")
	}
	b.WriteString(e.message)
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.details[k])
		}
		b.WriteString(")")
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.cause
}

// WithOperation records the operation that failed
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail adds a key/value detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// HasCode reports whether any error in err's chain carries code
func HasCode(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !stderrors.As(err, &e) {
			return false
		}
		if e.code == code {
			return true
		}
		err = e.cause
	}
	return false
}

// GetCode returns the code of the outermost Error in err's chain, or
// CodeUnknown
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code()
	}
	return CodeUnknown
}
