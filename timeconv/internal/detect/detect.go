// Package detect is the pure predicate layer in front of the parser: it
// normalizes raw input, recognizes which representation a string uses, and
// validates input against a declared representation without parsing it
// into a result.
package detect

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/parse"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/render"
)

// Sanitize maps Unicode space variants (no-break space, thin space, ...)
// to plain ASCII spaces and trims the result. Inputs pasted from rich-text
// sources routinely carry these.
func Sanitize(raw string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, raw)
	return strings.TrimSpace(mapped)
}

// IsTimestamp reports whether raw lexes as a numeric epoch value. Range is
// not checked here; that is the validator's job.
func IsTimestamp(raw string) bool {
	if raw == "" {
		return false
	}
	_, err := strconv.ParseFloat(raw, 64)
	return err == nil
}

// IsISO8601 reports whether raw matches the ISO-8601 grammar.
func IsISO8601(raw string) bool {
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
	} {
		if _, err := time.Parse(layout, raw); err == nil {
			return true
		}
	}
	return false
}

// IsRFC2822 reports whether raw matches the RFC-2822 grammar.
func IsRFC2822(raw string) bool {
	_, err := parse.RFC2822(raw, time.UTC)
	return err == nil
}

// ValidateTimestamp checks numeric-ness and the epoch range without
// producing an instant.
func ValidateTimestamp(raw string) error {
	_, err := parse.Timestamp(raw)
	return err
}

// ValidateISO8601 checks raw against the ISO-8601 grammar.
func ValidateISO8601(raw string) error {
	if IsISO8601(raw) {
		return nil
	}
	return converr.New(converr.InvalidDateFormat,
		"%q is not a valid ISO-8601 date (expected a form like 2023-11-14T22:13:20Z)", raw)
}

// ValidateRFC2822 checks raw against the RFC-2822 grammar.
func ValidateRFC2822(raw string) error {
	if IsRFC2822(raw) {
		return nil
	}
	return converr.New(converr.InvalidDateFormat,
		"%q is not a valid RFC-2822 date (expected a form like Tue, 14 Nov 2023 22:13:20 +0000)", raw)
}

// ValidateCustomPattern checks the pattern itself, not the value: an empty
// pattern is its own error, distinct from a value that fails to match.
func ValidateCustomPattern(pattern string) error {
	_, err := render.CompilePattern(pattern)
	return err
}
