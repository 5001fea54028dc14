package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseContainer Phase = "container" // container header and chunk table
	PhaseSignature Phase = "signature" // signature chunk decoding
	PhaseResources Phase = "resources" // resource definition decoding
	PhaseStats     Phase = "stats"     // statistics chunk decoding
	PhaseQuery     Phase = "query"     // reflection queries
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidContainer Kind = "invalid_container"
	KindOutOfBounds      Kind = "out_of_bounds"
	KindNotFound         Kind = "not_found"
	KindTruncated        Kind = "truncated"
	KindInvalidData      Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// InvalidContainer creates a fatal container validation error
func InvalidContainer(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseContainer,
		Kind:   KindInvalidContainer,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error for positional queries
func OutOfBounds(path []string, index, length int) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
	}
}

// NotFound creates a not-found error for name-based lookups
func NotFound(what, name string) *Error {
	return &Error{
		Phase:  PhaseQuery,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Truncated creates a truncated-data error
func Truncated(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
