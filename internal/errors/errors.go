package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	// Core error types
	UnknownErrorCode ErrorCode = iota

	// Document errors
	DocumentReadErrorCode
	DocumentParseErrorCode

	// Resolution errors
	InterfaceNotFoundErrorCode
	MemberNotFoundErrorCode
	ArgumentNotFoundErrorCode
	NoOutputArgumentErrorCode

	// Directive errors
	DirectiveSyntaxErrorCode
	DirectiveValidationErrorCode

	// Generation error types
	GenerationErrorCode
	TemplateErrorCode
	FileSystemErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case DocumentReadErrorCode:
		return "DocumentReadError"
	case DocumentParseErrorCode:
		return "DocumentParseError"
	case InterfaceNotFoundErrorCode:
		return "InterfaceNotFound"
	case MemberNotFoundErrorCode:
		return "MemberNotFound"
	case ArgumentNotFoundErrorCode:
		return "ArgumentNotFound"
	case NoOutputArgumentErrorCode:
		return "NoOutputArgument"
	case DirectiveSyntaxErrorCode:
		return "DirectiveSyntaxError"
	case DirectiveValidationErrorCode:
		return "DirectiveValidationError"
	case GenerationErrorCode:
		return "GenerationError"
	case TemplateErrorCode:
		return "TemplateError"
	case FileSystemErrorCode:
		return "FileSystemError"
	default:
		return "UnknownError"
	}
}

// BaseError provides the common implementation for all sigmatch errors
type BaseError struct {
	Code    ErrorCode // type of error
	Message string    // error message
	Cause   error     // underlying error cause
	Hints   []string  // helpful details for diagnosing the failure
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.Message
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

// Suggestions returns helpful details for diagnosing the failure
func (e *BaseError) Suggestions() []string {
	return e.Hints
}

// Unwrap returns the underlying error cause for error chain inspection
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithCause adds an underlying error cause
func (e *BaseError) WithCause(cause error) *BaseError {
	e.Cause = cause
	return e
}

// WithHint adds a diagnostic hint to the error
func (e *BaseError) WithHint(format string, args ...interface{}) *BaseError {
	e.Hints = append(e.Hints, fmt.Sprintf(format, args...))
	return e
}

// New creates a new BaseError with the specified code and message
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new BaseError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a new error that wraps another error
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf creates a new error that wraps another error with formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *BaseError {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// CodeOf returns the error code carried by err, or UnknownErrorCode if err
// does not carry one anywhere in its chain
func CodeOf(err error) ErrorCode {
	var base *BaseError
	if stderrors.As(err, &base) {
		return base.Code
	}
	return UnknownErrorCode
}

// HasCode reports whether err carries the given error code in its chain
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
