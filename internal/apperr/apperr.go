// Package apperr defines the error taxonomy shared by every component:
// a small set of kinds that the HTTP layer maps onto status codes.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	InvalidArgument
	NotFound
	Unauthorized
	Forbidden
	StoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case NotFound:
		return "not found"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case StoreUnavailable:
		return "store unavailable"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap keeps the underlying store error reachable for logging while the
// caller-facing message stays clean.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind carried by err, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }
