// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure of a lookup carries one of four machine-readable kinds so the CLI
// can decide what to print and how to exit without inspecting message text.
//
// The package supports wrapping underlying errors while maintaining error kind
// information; errors.Is and errors.As from the standard library keep working
// through E because it implements Unwrap.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Usage indicates missing or invalid command-line input. Raised before any network call.
	Usage Kind = "usage"
	// Transport indicates the QRZ service could not be reached or answered with a bad HTTP status.
	Transport Kind = "transport"
	// Protocol indicates a response body that does not match the expected envelope shape.
	Protocol Kind = "protocol"
	// Server indicates a well-formed envelope carrying a server-reported error.
	Server Kind = "server"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the first E in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// MessageOf returns the human-friendly message of the first E in err's chain,
// falling back to err.Error() for foreign errors.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *E
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
