// Package errors provides structured error handling for the carousel toolkit.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a rejected carousel configuration.
	KindConfig
	// KindParsing indicates a config file parsing failure.
	KindParsing
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the carousel toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "carousel.NewController").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs an Error from an operation, kind, and underlying error.
func E(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Config constructs a KindConfig error with a formatted message.
func Config(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindConfig, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
