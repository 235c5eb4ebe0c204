// Package errors provides structured error types for resolver and collection
// failures, so callers can tell defects apart programmatically.
//
// Absent platform data is never an error in this project. A StructuredError
// always signals a defect: a source that failed in a way it could not express
// as missing data, or a collection that was wired incorrectly.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeResolver,
//	    "failed to collect processor data",
//	    cause,
//	    map[string]any{
//	        "resolver": "processor",
//	    },
//	)
package errors
