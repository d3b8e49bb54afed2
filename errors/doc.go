// Package errors provides structured error types for the celeste-go library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: element path, expected/found kinds, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindValueMismatch).
//		Path("level", "width").
//		Expected("integer").
//		Found("string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ValueMismatch("integer", "string")
//	err := errors.AttributeMissing("texture")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
