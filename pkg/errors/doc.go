// Package errors provides structured error types for better observability
// and programmatic error handling across the packaging lifecycle.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeBuildFailed,
//	    "underlying compile step failed",
//	    cause,
//	    map[string]any{
//	        "step": "build",
//	        "run_id": runID,
//	    },
//	)
package errors
