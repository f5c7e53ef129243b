package entity

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed invocation.
type ErrorKind string

const (
	// KindConfiguration: unknown operation or network. Raised before any I/O.
	KindConfiguration ErrorKind = "configuration_error"
	// KindPrecondition: a required execution-context value is missing or empty. Raised before any I/O.
	KindPrecondition ErrorKind = "precondition_error"
	// KindTransport: DNS/connection failure, non-2xx status, empty or malformed body.
	KindTransport ErrorKind = "transport_error"
)

// Sentinels for errors.Is matching against an *ActionError kind.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrPrecondition  = errors.New("precondition error")
	ErrTransport     = errors.New("transport error")
)

// ActionError is the single error type surfaced to the host for a failed invocation.
type ActionError struct {
	Kind      ErrorKind
	Operation string
	Network   NetworkID
	// Message is the human-readable description shown to the host.
	Message string
	// StatusCode is the upstream HTTP status, if a response was received.
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	msg := e.Message
	if e.Operation != "" {
		msg = fmt.Sprintf("%s: %s", e.Operation, msg)
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s [HTTP %d]", msg, e.StatusCode)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ActionError) Unwrap() error {
	return e.Cause
}

// Is matches the kind sentinels.
func (e *ActionError) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrPrecondition:
		return e.Kind == KindPrecondition
	case ErrTransport:
		return e.Kind == KindTransport
	}
	return false
}

// ConfigurationError reports an unrecognized operation or network.
func ConfigurationError(format string, args ...any) *ActionError {
	return &ActionError{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// PreconditionError reports a missing or empty execution-context value.
func PreconditionError(format string, args ...any) *ActionError {
	return &ActionError{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

// MissingFieldError reports a required input field that is absent or empty.
func MissingFieldError(field FieldName) *ActionError {
	return PreconditionError("required field %q is missing or empty", field)
}

// TransportError is raised by the HTTP executor. Message carries the upstream
// error text when a response body was available.
type TransportError struct {
	URL        string
	StatusCode int
	// UpstreamMessage is the message extracted from the response body, if any.
	UpstreamMessage string
	Cause           error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	switch {
	case e.UpstreamMessage != "" && e.Cause != nil:
		return fmt.Sprintf("%v: %s", e.Cause, e.UpstreamMessage)
	case e.UpstreamMessage != "":
		return e.UpstreamMessage
	case e.Cause != nil:
		return e.Cause.Error()
	case e.StatusCode > 0:
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return "request failed"
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Cause
}
