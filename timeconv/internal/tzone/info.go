package tzone

import (
	"fmt"
	"time"
)

// Info is a point-in-time description of a zone, derived on demand and
// never mutated after creation.
type Info struct {
	Identifier    string // IANA identifier, e.g. "Asia/Tokyo"
	Abbreviation  string // zone abbreviation at the instant, e.g. "JST"
	Offset        string // ±HH:MM rendering of the offset
	OffsetSeconds int    // offset from UTC in seconds
	DST           bool   // daylight-saving active at the instant
}

// InfoAt describes the zone named identifier at the given instant.
func InfoAt(identifier string, loc *time.Location, at time.Time) Info {
	local := at.In(loc)
	abbrev, off := local.Zone()
	return Info{
		Identifier:    identifier,
		Abbreviation:  abbrev,
		Offset:        formatOffset(off),
		OffsetSeconds: off,
		DST:           local.IsDST(),
	}
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
