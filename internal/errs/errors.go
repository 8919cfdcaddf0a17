// Package errs provides the coded error type shared by the engine and its
// outer layers. Codes classify errors for API mapping; sentinel errors allow
// errors.Is comparisons without inspecting codes.
package errs

import (
	"errors"
	"fmt"
)

// Code classifies an error.
type Code string

const (
	// CodeInvalidArgument marks caller errors: ill-formed teams, illegal
	// actions, unknown IDs. The operation had no effect and may be retried.
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound marks lookups that failed (battle ID, dex key).
	CodeNotFound Code = "not_found"

	// CodeConflict marks duplicate registrations (dex keys, battle IDs).
	CodeConflict Code = "conflict"

	// CodeFailedPrecondition marks operations issued in the wrong state,
	// e.g. submitting turn actions while forced switches are pending.
	CodeFailedPrecondition Code = "failed_precondition"

	// CodeInternal marks everything that should never happen.
	CodeInternal Code = "internal"
)

// Error carries a code, a human message, optional metadata, and an optional
// wrapped cause.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]any
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches two coded errors by code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// New creates a coded error.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, Cause: cause}
}

// WithMeta returns a copy of e carrying the given metadata entry.
func (e *Error) WithMeta(key string, value any) *Error {
	out := *e
	out.Metadata = make(map[string]any, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		out.Metadata[k] = v
	}
	out.Metadata[key] = value
	return &out
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
