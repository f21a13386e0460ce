// Package errors provides structured error handling for the relay's delivery
// and rendering paths, with a small type taxonomy used for logging and metrics.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorType categorizes an error for metrics labels and log levels.
type ErrorType string

const (
	// TypeConnectionNotOpen indicates the chat transport is not ready.
	TypeConnectionNotOpen ErrorType = "connection_not_open"
	// TypeChannelNotFound indicates a live connection with no matching destination.
	TypeChannelNotFound ErrorType = "channel_not_found"
	// TypeTransport indicates the underlying platform rejected or failed a send.
	TypeTransport ErrorType = "transport"
	// TypeUnrenderable indicates an event with no display mapping (skipped, not fatal).
	TypeUnrenderable ErrorType = "unrenderable"
	// TypeInternal indicates a programming or wiring error.
	TypeInternal ErrorType = "internal"
)

// Error is a structured error with type, message, and context fields.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// LogLevel maps the error type to the slog level operator logs use for it.
// Delivery failures are expected operational noise, not alerts.
func (e *Error) LogLevel() slog.Level {
	switch e.Type {
	case TypeConnectionNotOpen, TypeChannelNotFound, TypeTransport:
		return slog.LevelWarn
	case TypeUnrenderable:
		return slog.LevelDebug
	default:
		return slog.LevelError
	}
}

// ConnectionNotOpen creates a transport-not-ready error.
func ConnectionNotOpen(message string) *Error {
	return &Error{
		Type:    TypeConnectionNotOpen,
		Message: message,
		Context: make(map[string]any),
	}
}

// ChannelNotFound creates a destination-missing error.
func ChannelNotFound(message string) *Error {
	return &Error{
		Type:    TypeChannelNotFound,
		Message: message,
		Context: make(map[string]any),
	}
}

// Transport creates an error for a send the platform rejected or failed.
func Transport(message string, cause error) *Error {
	return &Error{
		Type:    TypeTransport,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// Unrenderable creates an error for an event with no display mapping.
func Unrenderable(message string) *Error {
	return &Error{
		Type:    TypeUnrenderable,
		Message: message,
		Context: make(map[string]any),
	}
}

// Internal creates an error for a programming or wiring mistake.
func Internal(message string, cause error) *Error {
	return &Error{
		Type:    TypeInternal,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds a context field to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error, returns it unchanged.
// Otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return Internal("internal error", err)
}

// IsType reports whether err is a structured error of the given type.
func IsType(err error, t ErrorType) bool {
	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr.Type == t
	}
	return false
}
