package timeconv

import (
	"errors"
	"time"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
)

// Outcome is the result of one conversion. Every engine operation returns
// Outcome values; no error or panic crosses the API boundary.
type Outcome struct {
	// OK distinguishes success from failure.
	OK bool `json:"ok"`

	// Formatted is the rendered output text. Empty on failure.
	Formatted string `json:"formatted,omitempty"`

	// EpochSeconds is the parsed instant as seconds since the Unix epoch.
	EpochSeconds int64 `json:"epochSeconds,omitempty"`

	// Instant is the parsed absolute instant. Zero on failure.
	Instant time.Time `json:"instant,omitzero"`

	// Code classifies the failure. FailureNone on success.
	Code FailureCode `json:"-"`

	// CodeName is the stable textual name of Code, for wire formats.
	CodeName string `json:"code,omitempty"`

	// Message is a user-displayable description of the failure.
	Message string `json:"message,omitempty"`
}

// success wraps a rendered instant into an Outcome.
func success(formatted string, instant time.Time) Outcome {
	return Outcome{
		OK:           true,
		Formatted:    formatted,
		EpochSeconds: instant.Unix(),
		Instant:      instant,
	}
}

// failure converts a classified error into an Outcome. Unclassified
// errors fall into the OutputGenerationFailed catch-all; they indicate a
// bug in a lower layer, not a user mistake.
func failure(err error) Outcome {
	code, ok := converr.CodeOf(err)
	if !ok {
		code = converr.OutputGenerationFailed
	}
	msg := err.Error()
	var ce *converr.ConversionError
	if errors.As(err, &ce) {
		msg = ce.Reason
	}
	return Outcome{Code: code, CodeName: code.String(), Message: msg}
}
