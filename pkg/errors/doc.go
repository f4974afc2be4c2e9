// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to read probe",
//	    ctx.Err(),
//	    map[string]any{
//	        "device": deviceID,
//	        "path":   path,
//	    },
//	)
package errors
