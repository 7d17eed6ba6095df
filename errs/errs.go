// Package errs defines NEPAK's error taxonomy: a small set of enumerated
// failure kinds surfaced uniformly across the builder, reader, and
// operations, the Go rendition of the original implementation's
// thiserror-derived PakError enum.
package errs

import (
	"errors"
	"fmt"
)

// Kind enumerates the ways a NEPAK operation can fail (spec §7).
type Kind int

const (
	// Io indicates an underlying filesystem or I/O failure.
	Io Kind = iota
	// Invalid indicates a structural violation of the archive format.
	Invalid
	// Outside indicates a scanned path could not be made relative to the
	// declared input root.
	Outside
	// NoZstd indicates compression was requested but this build lacks
	// zstd support.
	NoZstd
)

func (k Kind) String() string {
	switch k {
	case Io:
		return "io"
	case Invalid:
		return "invalid"
	case Outside:
		return "outside"
	case NoZstd:
		return "no_zstd"
	default:
		return "unknown"
	}
}

// Error is the concrete error type every NEPAK operation returns. It
// carries the failure Kind plus a human-readable message and, for Io
// errors, the wrapped underlying error.
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

// Unwrap exposes the wrapped error, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target has the same Kind as e, so callers can compare
// against the package's sentinel errors with errors.Is.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// New builds an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Io *Error around an underlying error, or returns nil if
// err is nil. It is the usual way to surface a failed filesystem call.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Io, Message: fmt.Sprintf(format, args...), Err: err}
}

// Sentinel errors for errors.Is comparisons against a Kind without needing
// a specific message.
var (
	ErrInvalid = &Error{Kind: Invalid}
	ErrOutside = &Error{Kind: Outside}
	ErrNoZstd  = &Error{Kind: NoZstd, Message: "compression requested but nepak was built without zstd support"}
)
