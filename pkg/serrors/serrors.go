// Package serrors carries the semantic category of an error from the services
// to the edges of the application. The HTTP layer turns a Kind into a status
// code and the job runner turns it into a retry decision.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel naming an error category. Only values made by NewKind
// implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a category. The name is what API clients see as the error
// code, so it is written in upper snake case.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound means the entity does not exist or is hidden from the caller.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized means the bearer token is missing or invalid.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden means the caller is known but may not do this, e.g. a
	// blocked user or a non-owner editing a listing.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest means the input is invalid.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict means the entity is in the wrong state for the operation.
	ErrConflict = NewKind("CONFLICT")
	ErrInternal = NewKind("INTERNAL")
	ErrTimeout  = NewKind("TIMEOUT")
	// ErrUnavailable means a dependency such as the AI assistant is down.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited means the AI assistant quota is used up for now.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

var defaultKinds = []Kind{ //nolint: gochecknoglobals
	ErrNotFound, ErrUnauthorized, ErrForbidden, ErrBadRequest, ErrConflict,
	ErrInternal, ErrTimeout, ErrUnavailable, ErrRateLimited,
}

// Error is an error with a Kind, an optional message meant for the API client
// and an optional cause. errors.Is and errors.As match both the kind and the
// cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a client facing message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap is With plus a cause. The cause is never shown to API clients.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns an error of kind k without message or cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.msg != "" && e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	if e.msg != "" {
		return e.msg
	}
	if e.err != nil {
		return e.err.Error()
	}
	if e.kind != nil {
		return e.kind.Error()
	}

	return "unknown error"
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

// Kind may be nil for a zero Error.
func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Message() string { return e.msg }

func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the outermost semantic error in the chain, or
// of a bare Kind sentinel. Errors that only match a default kind through
// their own Is method report that kind. It returns nil for plain errors.
func KindOf(err error) Kind {
	var semantic *Error
	if errors.As(err, &semantic) && semantic.kind != nil {
		return semantic.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	for _, k := range defaultKinds {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}

// MessageOf returns the client facing message of the outermost semantic
// error in the chain, or an empty string.
func MessageOf(err error) string {
	var semantic *Error
	if errors.As(err, &semantic) {
		return semantic.msg
	}

	return ""
}
