// Package parse converts raw textual time representations into absolute
// instants. Each function returns a classified error on grammar mismatch;
// nothing here panics or lets a raw strconv/time error escape.
package parse

import (
	"math"
	"strconv"
	"time"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/render"
)

const (
	// MillisThreshold disambiguates seconds from milliseconds: values at
	// or above it are milliseconds. Fixed design constant (10^12).
	MillisThreshold = 1_000_000_000_000

	// MaxEpochSeconds bounds valid timestamps to 2100-01-01T00:00:00Z.
	MaxEpochSeconds = 4_102_444_800
)

// Timestamp parses a numeric epoch value, seconds or milliseconds
// disambiguated by magnitude. Timezone independent.
func Timestamp(raw string) (time.Time, error) {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return timestampFromInt(v, raw)
	}
	// Fractional values like "1700000000.5" are accepted too.
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, converr.New(converr.InvalidTimestamp,
			"%q is not a number; expected seconds or milliseconds since the Unix epoch (for example 1700000000)", raw)
	}
	if f >= MillisThreshold {
		f /= 1000
	}
	sec, frac := math.Modf(f)
	if err := checkEpochRange(int64(sec), raw); err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
}

func timestampFromInt(v int64, raw string) (time.Time, error) {
	var sec, msec int64
	if v >= MillisThreshold {
		sec, msec = v/1000, v%1000
	} else {
		sec = v
	}
	if err := checkEpochRange(sec, raw); err != nil {
		return time.Time{}, err
	}
	return time.Unix(sec, msec*int64(time.Millisecond)).UTC(), nil
}

func checkEpochRange(sec int64, raw string) error {
	if sec < 0 || sec > MaxEpochSeconds {
		return converr.New(converr.InvalidTimestamp,
			"timestamp %s is outside the supported range [0, %d] seconds (epoch through 2100-01-01T00:00:00Z)",
			raw, int64(MaxEpochSeconds))
	}
	return nil
}

// iso8601Layouts covers the fractional and whole-second grammar variants;
// the zoneless form is interpreted in the declared source zone.
var iso8601Layouts = []string{
	time.RFC3339Nano, // fractional and whole seconds with zone designator
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ISO8601 parses an ISO-8601 string, interpreting zoneless input in loc.
func ISO8601(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range iso8601Layouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, converr.New(converr.InvalidDateFormat,
		"%q is not a valid ISO-8601 date (expected a form like 2023-11-14T22:13:20Z)", raw)
}

// rfc2822Layouts covers numeric-offset, zone-abbreviation, and zoneless
// variants, with and without padded day numbers and weekday prefixes.
var rfc2822Layouts = []string{
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
}

// Zoneless variants fall back to the declared source zone.
var rfc2822ZonelessLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05",
	"Mon, 2 Jan 2006 15:04:05",
	"02 Jan 2006 15:04:05",
}

// rfc2822ZoneOffsets maps the obsolete zone abbreviations of RFC 2822
// §4.3 to their fixed UTC offsets in seconds. Abbreviations outside this
// table carry no reliable offset and are read as +0000, which is what
// the RFC prescribes for unknown zones.
var rfc2822ZoneOffsets = map[string]int{
	"UT":  0,
	"GMT": 0,
	"EST": -5 * 3600, "EDT": -4 * 3600,
	"CST": -6 * 3600, "CDT": -5 * 3600,
	"MST": -7 * 3600, "MDT": -6 * 3600,
	"PST": -8 * 3600, "PDT": -7 * 3600,
}

// applyZoneAbbreviation pins t to the RFC-mandated offset of its zone
// abbreviation. time.Parse resolves an abbreviation it cannot match in
// the local zone to a fabricated location at offset zero, so the wall
// clock fields are rebound to the fixed offset from the table.
func applyZoneAbbreviation(t time.Time) time.Time {
	name, offset := t.Zone()
	want, ok := rfc2822ZoneOffsets[name]
	if !ok || offset == want {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond(), time.FixedZone(name, want))
}

// RFC2822 parses an RFC-2822 string. A zone found in the string wins;
// zoneless input is interpreted in loc.
func RFC2822(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range rfc2822Layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return applyZoneAbbreviation(t), nil
		}
	}
	for _, layout := range rfc2822ZonelessLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, converr.New(converr.InvalidDateFormat,
		"%q is not a valid RFC-2822 date (expected a form like Tue, 14 Nov 2023 22:13:20 +0000)", raw)
}

// Custom parses raw with a cached formatter bound to (pattern, loc),
// running the formatter in reverse.
func Custom(raw, pattern string, loc *time.Location, cache *render.Cache) (time.Time, error) {
	f, err := cache.Lookup(pattern, loc)
	if err != nil {
		return time.Time{}, err
	}
	return f.Parse(raw)
}
