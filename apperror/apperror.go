// Package apperror provides structured application errors that carry the
// location they were created at and any underlying causes. Errors created
// here are intended to be returned up the call stack as-is; wrapping an
// error that is already an *Error keeps its original caller information.
package apperror

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Error is a structured application error with caller information and
// optional underlying causes.
type Error struct {
	Message string
	Caller  string
	Errors  []error
}

// NewError creates a new Error with the given message and records the
// callers file and line.
func NewError(message string) *Error {
	return &Error{
		Message: message,
		Caller:  caller(2),
	}
}

// NewErrorf creates a new Error with a formatted message and records the
// callers file and line.
func NewErrorf(format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Caller:  caller(2),
	}
}

// Wrap converts any error into an *Error. A nil error stays nil and an
// existing *Error is returned unchanged so the original caller information
// is preserved.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	return &Error{
		Message: err.Error(),
		Caller:  caller(2),
		Errors:  []error{err},
	}
}

// AddError attaches an underlying cause to the error and returns it for
// chaining.
func (e *Error) AddError(err error) *Error {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}

	causes := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		causes = append(causes, err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(causes, "; "))
}

// Unwrap returns the underlying causes for errors.Is and errors.As
func (e *Error) Unwrap() []error {
	return e.Errors
}

// caller returns "file:line" of the frame skip levels up the stack
func caller(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
