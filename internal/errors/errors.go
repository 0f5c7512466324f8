package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can react without string matching
type Code string

const (
	// CodeUnknown is used for wrapped errors that carry no code of their own
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed something unusable
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested record or pack does not exist
	CodeNotFound Code = "not_found"

	// CodeInternal indicates a storage or decoding failure
	CodeInternal Code = "internal"

	// CodeValidation indicates configuration data breaks an invariant
	CodeValidation Code = "validation"

	// CodeUnknownArea indicates an area name or die face missing from a hit table
	CodeUnknownArea Code = "unknown_area"

	// CodePathNotFound indicates a dotted path could not be walked
	CodePathNotFound Code = "path_not_found"
)

// Error is an application error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a metadata value and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err, keeping its code when it is already an *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and forces the code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// UnknownArea reports an area name that is not part of the active hit table
func UnknownArea(area string) *Error {
	return Newf(CodeUnknownArea, "unknown hit location %q", area).
		WithMeta("area", area)
}

// UnknownFace reports a rolled face that the area lookup has no entry for
func UnknownFace(face int) *Error {
	return Newf(CodeUnknownArea, "no hit location for roll %d", face).
		WithMeta("face", face)
}

// PathNotFound reports a dotted path that stops at segment
func PathNotFound(path, segment string) *Error {
	return Newf(CodePathNotFound, "path %q not found at %q", path, segment).
		WithMeta("path", path).
		WithMeta("segment", segment)
}

// Is checks if the error carries the given code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks for CodeNotFound
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks for CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsValidation checks for CodeValidation
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsUnknownArea checks for CodeUnknownArea
func IsUnknownArea(err error) bool {
	return Is(err, CodeUnknownArea)
}

// IsPathNotFound checks for CodePathNotFound
func IsPathNotFound(err error) bool {
	return Is(err, CodePathNotFound)
}

// GetCode returns the code of the outermost *Error, or CodeUnknown
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost *Error
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
