// Package errors provides structured error handling for esal.
// It implements coded errors with context and stack traces so callers
// can distinguish field-access failures programmatically.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Code identifies an error class for programmatic handling.
type Code string

const (
	// Field access errors (1xx)
	CodeIndexOutOfRange Code = "E101"
	CodeUnknownField    Code = "E102"
	CodeBadKey          Code = "E103"
	CodeBadRange        Code = "E104"

	// Ingest errors (2xx)
	CodeFileNotFound     Code = "E201"
	CodeInvalidFormat    Code = "E202"
	CodeMissingColumn    Code = "E203"
	CodeInvalidTimestamp Code = "E204"
	CodeParseFailed      Code = "E205"

	// System errors (4xx)
	CodeContextCanceled Code = "E401"

	// Unknown
	CodeUnknown Code = "E999"
)

// EsalError is the base error type for all esal errors.
type EsalError struct {
	Code       Code
	Message    string
	Cause      error
	Context    map[string]interface{}
	StackTrace []Frame
}

// Frame represents a stack frame.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface.
func (e *EsalError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if len(e.Context) > 0 {
		sb.WriteString(" (")
		first := true
		for k, v := range e.Context {
			if !first {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%s=%v", k, v))
			first = false
		}
		sb.WriteString(")")
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *EsalError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches a target error by code.
func (e *EsalError) Is(target error) bool {
	if t, ok := target.(*EsalError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context to the error.
func (e *EsalError) WithContext(key string, value interface{}) *EsalError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new EsalError.
func New(code Code, message string) *EsalError {
	return &EsalError{
		Code:       code,
		Message:    message,
		StackTrace: captureStack(2),
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(err error, code Code, message string) *EsalError {
	if err == nil {
		return nil
	}

	return &EsalError{
		Code:       code,
		Message:    message,
		Cause:      err,
		StackTrace: captureStack(2),
	}
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, code Code, format string, args ...interface{}) *EsalError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// captureStack captures the current stack trace.
func captureStack(skip int) []Frame {
	var frames []Frame
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	pcs = pcs[:n]

	cf := runtime.CallersFrames(pcs)
	for {
		frame, more := cf.Next()
		frames = append(frames, Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more || len(frames) >= 10 {
			break
		}
	}
	return frames
}

// FormatStack returns a formatted stack trace.
func (e *EsalError) FormatStack() string {
	var sb strings.Builder
	for _, f := range e.StackTrace {
		sb.WriteString(fmt.Sprintf("  at %s\n    %s:%d\n", f.Function, f.File, f.Line))
	}
	return sb.String()
}

// --- Convenience constructors ---

// IndexOutOfRange creates a field index range error.
func IndexOutOfRange(index, length int) *EsalError {
	return New(CodeIndexOutOfRange, "field index out of range").
		WithContext("index", index).
		WithContext("length", length)
}

// UnknownField creates an unknown field name error.
func UnknownField(name string) *EsalError {
	return New(CodeUnknownField, "unknown field name").
		WithContext("name", name)
}

// BadKey creates an unsupported key error.
func BadKey(key interface{}) *EsalError {
	return New(CodeBadKey, "unsupported field key").
		WithContext("key", key)
}

// BadRange creates an invalid slice bounds error.
func BadRange(lo, hi, length int) *EsalError {
	return New(CodeBadRange, "slice bounds out of range").
		WithContext("lo", lo).
		WithContext("hi", hi).
		WithContext("length", length)
}

// FileNotFound creates a file not found error.
func FileNotFound(path string) *EsalError {
	return New(CodeFileNotFound, "file not found").WithContext("path", path)
}

// MissingColumn creates a missing column error.
func MissingColumn(column string, available []string) *EsalError {
	return New(CodeMissingColumn, "required column not found").
		WithContext("column", column).
		WithContext("available", available)
}

// InvalidTimestamp creates a timestamp parsing error.
func InvalidTimestamp(value string, row int) *EsalError {
	return New(CodeInvalidTimestamp, "failed to parse timestamp").
		WithContext("value", value).
		WithContext("row", row)
}

// ParseError creates a parsing error with location.
func ParseError(format string, row int, err error) *EsalError {
	return Wrap(err, CodeParseFailed, "parse error").
		WithContext("format", format).
		WithContext("row", row)
}

// ContextCanceled creates a cancellation error.
func ContextCanceled(operation string) *EsalError {
	return New(CodeContextCanceled, "operation canceled").
		WithContext("operation", operation)
}

// --- Error checking utilities ---

// IsCode checks if an error has a specific code.
func IsCode(err error, code Code) bool {
	var esalErr *EsalError
	if errors.As(err, &esalErr) {
		return esalErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, or CodeUnknown.
func GetCode(err error) Code {
	var esalErr *EsalError
	if errors.As(err, &esalErr) {
		return esalErr.Code
	}
	return CodeUnknown
}
