package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the HTTP boundary can decide how to answer.
type Kind string

const (
	// KindValidation marks bad input shape, length, or mismatch. Recoverable.
	KindValidation Kind = "validation"
	// KindConflict marks a duplicate registration attempt. Recoverable.
	KindConflict Kind = "conflict"
	// KindAuth marks rejected credentials. Recoverable.
	KindAuth Kind = "auth"
	// KindUpstream marks an identity or completion API failure. The underlying
	// cause is logged but never shown to the user.
	KindUpstream Kind = "upstream"
	// KindConfig marks a missing required secret. Fatal at startup.
	KindConfig Kind = "config"
)

// Error carries a classification plus a user-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation creates a validation error with a user-facing message
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Validationf creates a validation error with a formatted message
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a conflict error with a user-facing message
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Auth creates an authentication error with a user-facing message
func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// Upstream wraps an external service failure behind a user-facing message
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// Config creates a fatal configuration error
func Config(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// KindOf returns the classification of err, or empty string for plain errors
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Is reports whether err carries the given kind anywhere in its chain
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// UserMessage returns the user-facing message of err, or a generic fallback
// for unclassified errors so internals never leak
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong"
}
