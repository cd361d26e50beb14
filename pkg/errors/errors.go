// Copyright (c) 2026, the sockpp project authors.  All rights reserved.
//
// Licensed under the BSD 3-Clause License. See the LICENSE file in the
// repository root for the full license text.

package errors

import "fmt"

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeInvalidOption indicates an option set containing an unrecognized
	// key or value. This is a local validation failure; the underlying build
	// tool is never invoked.
	ErrCodeInvalidOption ErrorCode = "INVALID_OPTION"
	// ErrCodeConfigurationFailed indicates the underlying build system's
	// configure step reported a non-zero outcome.
	ErrCodeConfigurationFailed ErrorCode = "CONFIGURATION_FAILED"
	// ErrCodeBuildFailed indicates the underlying build system's compile step
	// reported a non-zero outcome.
	ErrCodeBuildFailed ErrorCode = "BUILD_FAILED"
	// ErrCodePackageFailed indicates the underlying build system's install
	// step reported a non-zero outcome.
	ErrCodePackageFailed ErrorCode = "PACKAGE_FAILED"
	// ErrCodeUnsupportedPlatform indicates a target operating system outside
	// the set the package metadata publisher recognizes.
	ErrCodeUnsupportedPlatform ErrorCode = "UNSUPPORTED_PLATFORM"
	// ErrCodeInternal indicates an internal error not attributable to user
	// input or the underlying build tool.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the error code carried by err, walking the wrap chain.
// Returns ErrCodeInternal for nil and for errors without a structured code.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if se, ok := err.(*StructuredError); ok {
			return se.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrCodeInternal
}
