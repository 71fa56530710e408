package dberr

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies the kind of failure. The kernel uses a closed set of
// codes so callers can branch on the taxonomy without string matching.
type Code string

const (
	// CodeSchema covers unresolvable attribute names, unrecognized domain
	// names and empty primary keys.
	CodeSchema Code = "SCHEMA_ERROR"

	// CodeCompatibility is reported when union or minus is invoked on
	// tables that differ in arity or positional domain.
	CodeCompatibility Code = "COMPATIBILITY_ERROR"

	// CodeDomain is reported when an inserted tuple fails the arity or
	// per-column type check.
	CodeDomain Code = "DOMAIN_ERROR"

	// CodeConfiguration covers malformed construction arguments, e.g. a
	// zero-length composite key.
	CodeConfiguration Code = "CONFIGURATION_ERROR"

	// CodeNotFound is reported when a persistence load names a snapshot
	// that does not exist.
	CodeNotFound Code = "NOT_FOUND"
)

// Error is a structured kernel error. It records which operation and
// component produced the failure alongside the taxonomy code, and chains
// the underlying cause for errors.Is / errors.As traversal.
type Error struct {
	Code      Code
	Message   string
	Detail    string
	Operation string
	Component string
	Cause     error
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches kernel context to an existing error. If err is already an
// *Error, a copy enriched with operation and component context (only
// where not already set) is returned, leaving the original untouched;
// otherwise a new Error is created with err as its cause.
func Wrap(err error, code Code, operation, component string) *Error {
	if err == nil {
		return nil
	}

	var kerr *Error
	if errors.As(err, &kerr) {
		enriched := *kerr
		if enriched.Operation == "" {
			enriched.Operation = operation
		}
		if enriched.Component == "" {
			enriched.Component = component
		}
		return &enriched
	}

	return &Error{
		Code:      code,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
	}
}

// WithDetail returns e with instance-specific detail attached.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithOperation records the operation that was running when the error
// occurred, e.g. "Union" or "Insert".
func (e *Error) WithOperation(op string) *Error {
	e.Operation = op
	return e
}

// Error implements the error interface.
//
// Format: [CODE] message: detail (operation: Op) caused by: cause
func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)

	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}

	if e.Operation != "" {
		fmt.Fprintf(&b, " (operation: %s", e.Operation)
		if e.Component != "" {
			fmt.Fprintf(&b, ", component: %s", e.Component)
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, " caused by: %v", e.Cause)
	}

	return b.String()
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As
// chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HasCode reports whether err carries the given taxonomy code anywhere in
// its chain.
func HasCode(err error, code Code) bool {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Code == code
	}
	return false
}

// IsSchema reports whether err is a schema error.
func IsSchema(err error) bool { return HasCode(err, CodeSchema) }

// IsCompatibility reports whether err is a compatibility error.
func IsCompatibility(err error) bool { return HasCode(err, CodeCompatibility) }

// IsDomain reports whether err is a domain error.
func IsDomain(err error) bool { return HasCode(err, CodeDomain) }

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return HasCode(err, CodeConfiguration) }

// IsNotFound reports whether err is a missing-snapshot error.
func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }
