// Package errors defines the coded error type that crosses layer boundaries.
// Domain and application code return these; the transport edge translates the
// code into an HTTP status without inspecting messages.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code tags an error with a machine-readable failure kind.
type Code string

const (
	// CodeMalformedIdentity marks an identity token that does not conform to
	// the abbr-datetime-sequence format.
	CodeMalformedIdentity Code = "malformed_identity"
	// CodeInvalidOrder marks an aggregate invariant violation at creation.
	CodeInvalidOrder Code = "invalid_order"
	// CodeInvalidInput marks a request shape problem caught before the domain.
	CodeInvalidInput Code = "invalid_input"
	// CodeNotFound marks a lookup for an aggregate that does not exist.
	CodeNotFound Code = "not_found"
	// CodePersistence marks a storage adapter failure during save or load.
	CodePersistence Code = "persistence"
	// CodePublish marks an event sink failure after a successful save.
	CodePublish Code = "publish"
	// CodeInternal is the fallback for untagged failures.
	CodeInternal Code = "internal"
)

// AggregateError is the single error category reported upward from the order
// core. Sub-kinds are distinguished by Code.
type AggregateError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AggregateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AggregateError) Unwrap() error {
	return e.Err
}

// New builds a coded error with no underlying cause.
func New(code Code, message string) *AggregateError {
	return &AggregateError{Code: code, Message: message}
}

// Newf builds a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *AggregateError {
	return &AggregateError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code Code, message string, err error) *AggregateError {
	return &AggregateError{Code: code, Message: message, Err: err}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var ae *AggregateError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// CodeOf extracts the code from an error chain, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var ae *AggregateError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to the status the transport layer responds with.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeMalformedIdentity, CodeInvalidOrder, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodePersistence, CodePublish:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
