// Package converr classifies conversion failures so callers can branch on
// the failure kind without string matching. Every failure the engine can
// produce carries exactly one Code.
package converr

import (
	"errors"
	"fmt"
)

// Code identifies the kind of conversion failure.
type Code int

const (
	// CodeNone is the zero value; a ConversionError never carries it.
	CodeNone Code = iota

	// EmptyInput: the trimmed input has zero length.
	EmptyInput

	// InvalidTimestamp: non-numeric input, or a value outside the
	// supported epoch range, where a timestamp kind was declared.
	InvalidTimestamp

	// InvalidDateFormat: the input does not match the ISO-8601 or
	// RFC-2822 grammar it was declared as.
	InvalidDateFormat

	// CustomFormatInvalid: the custom pattern is empty or structurally
	// invalid, or the input does not match it.
	CustomFormatInvalid

	// TimezoneDataUnavailable: a named zone could not be resolved, or its
	// computed offset falls outside the plausible [-12h, +14h] band.
	TimezoneDataUnavailable

	// TimezoneConversionFailed: both zones are individually available but
	// incompatible for the specific instant being converted.
	TimezoneConversionFailed

	// OutputGenerationFailed: the formatting step failed for a reason not
	// otherwise categorized. Should not occur for valid instants.
	OutputGenerationFailed
)

// String returns a stable, human-readable name for the code.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case EmptyInput:
		return "EmptyInput"
	case InvalidTimestamp:
		return "InvalidTimestamp"
	case InvalidDateFormat:
		return "InvalidDateFormat"
	case CustomFormatInvalid:
		return "CustomFormatInvalid"
	case TimezoneDataUnavailable:
		return "TimezoneDataUnavailable"
	case TimezoneConversionFailed:
		return "TimezoneConversionFailed"
	case OutputGenerationFailed:
		return "OutputGenerationFailed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ConversionError couples a failure code with a user-displayable reason.
type ConversionError struct {
	Code       Code
	Reason     string
	Underlying error // nil unless a lower layer produced a useful cause
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Reason, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Reason)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ConversionError) Unwrap() error { return e.Underlying }

// New builds a ConversionError from a code and a formatted reason.
func New(code Code, format string, args ...any) *ConversionError {
	return &ConversionError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// Wrap is New with an underlying cause attached.
func Wrap(code Code, cause error, format string, args ...any) *ConversionError {
	return &ConversionError{Code: code, Reason: fmt.Sprintf(format, args...), Underlying: cause}
}

// CodeOf extracts the failure code from err. It reports CodeNone, false
// when err is nil or carries no ConversionError in its chain.
func CodeOf(err error) (Code, bool) {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return CodeNone, false
}
