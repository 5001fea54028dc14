// Package errors provides structured error types for the dxbc library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type carries an optional field path,
// human-readable detail, and a cause chain.
//
// Convenience constructors cover the common patterns:
//
//	err := errors.InvalidContainer("buffer too small: %d bytes", n)
//	err := errors.OutOfBounds([]string{"input"}, 10, 5)
//	err := errors.NotFound("resource binding", "gSampler")
//
// All errors implement the standard error interface and support
// errors.Is/As; Is matches on Phase and Kind.
package errors
