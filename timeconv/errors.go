package timeconv

import "github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"

// FailureCode classifies a conversion failure. Re-exported here so
// callers compare against a single set of symbols.
type FailureCode = converr.Code

const (
	// FailureNone is the code carried by successful outcomes.
	FailureNone = converr.CodeNone

	// FailureEmptyInput: the trimmed input has zero length.
	FailureEmptyInput = converr.EmptyInput

	// FailureInvalidTimestamp: non-numeric or out-of-range epoch value.
	FailureInvalidTimestamp = converr.InvalidTimestamp

	// FailureInvalidDateFormat: ISO-8601/RFC-2822 grammar mismatch.
	FailureInvalidDateFormat = converr.InvalidDateFormat

	// FailureCustomFormatInvalid: empty or invalid custom pattern, or a
	// value that does not match it.
	FailureCustomFormatInvalid = converr.CustomFormatInvalid

	// FailureTimezoneDataUnavailable: unresolvable zone or implausible
	// offset data.
	FailureTimezoneDataUnavailable = converr.TimezoneDataUnavailable

	// FailureTimezoneConversionFailed: zones incompatible for the
	// specific instant.
	FailureTimezoneConversionFailed = converr.TimezoneConversionFailed

	// FailureOutputGenerationFailed: defensive catch-all for the
	// formatting step.
	FailureOutputGenerationFailed = converr.OutputGenerationFailed
)

// FailureCodeOf extracts the failure code from an error returned by an
// engine operation such as ZoneInfo. It reports FailureNone, false when
// the error carries no code.
func FailureCodeOf(err error) (FailureCode, bool) {
	return converr.CodeOf(err)
}
