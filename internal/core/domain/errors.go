package domain

import (
	"errors"
	"fmt"
)

// ClientError is a client-side error with a structured code. None of
// these are fatal: the command loop reports them and keeps running.
type ClientError struct {
	Code    string // Error code (e.g., "SM-CMD-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support; two ClientErrors match on Code.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetails returns a copy of the error with additional details.
func (e *ClientError) WithDetails(details string) *ClientError {
	return &ClientError{Code: e.Code, Message: e.Message, Details: details, Cause: e.Cause}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *ClientError) WithCause(cause error) *ClientError {
	return &ClientError{Code: e.Code, Message: e.Message, Details: e.Details, Cause: cause}
}

// Client error taxonomy.
var (
	// ErrUnrecognizedCommand is a malformed or unknown input line.
	ErrUnrecognizedCommand = &ClientError{Code: "SM-CMD-4000", Message: "unrecognized command"}

	// ErrUnrecognizedSubcommand is a valid command shape with an invalid
	// operation-distinguishing literal (e.g. "send channel x").
	ErrUnrecognizedSubcommand = &ClientError{Code: "SM-CMD-4001", Message: "unrecognized subcommand"}

	// ErrServiceRejected is a response with a status other than 202.
	ErrServiceRejected = &ClientError{Code: "SM-SVC-4002", Message: "service rejected request"}

	// ErrTransportFailure is a connection, DNS or TLS failure.
	ErrTransportFailure = &ClientError{Code: "SM-NET-5000", Message: "transport failure"}

	// ErrBadConnectionString is a connection string that cannot be parsed.
	ErrBadConnectionString = &ClientError{Code: "SM-CFG-4000", Message: "invalid connection string"}
)

// CodeOf extracts the error code from an error if it is a ClientError.
func CodeOf(err error) string {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
