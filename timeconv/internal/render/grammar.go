package render

import (
	"fmt"
	"strconv"
	"time"
)

// Fixed layouts for the built-in representations.
const (
	LayoutISO8601           = "2006-01-02T15:04:05Z07:00"
	LayoutISO8601Fractional = "2006-01-02T15:04:05.000Z07:00"
	LayoutRFC2822           = "Mon, 02 Jan 2006 15:04:05 -0700"
)

// ISO8601 renders the instant in loc using the ISO-8601 grammar, with
// millisecond precision when fractional is set.
func ISO8601(t time.Time, loc *time.Location, fractional bool) string {
	layout := LayoutISO8601
	if fractional {
		layout = LayoutISO8601Fractional
	}
	return t.In(loc).Format(layout)
}

// RFC2822 renders the instant in loc using the RFC-2822 grammar.
func RFC2822(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(LayoutRFC2822)
}

// Timestamp renders the epoch value as an integer, or as a fixed-point
// decimal with millisecond precision when fractional is set. Timezone
// independent.
func Timestamp(t time.Time, fractional bool) string {
	if fractional {
		return fmt.Sprintf("%d.%03d", t.Unix(), t.Nanosecond()/int(time.Millisecond))
	}
	return strconv.FormatInt(t.Unix(), 10)
}
