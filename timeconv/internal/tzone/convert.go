package tzone

import (
	"time"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
)

// Offsets outside this band indicate corrupted or unsupported zone data.
// Real zones range from UTC-12 (Baker Island) to UTC+14 (Line Islands).
const (
	MinOffsetSeconds = -12 * 60 * 60
	MaxOffsetSeconds = 14 * 60 * 60
)

// OffsetAt reports the zone's UTC offset in seconds at the given instant.
func OffsetAt(loc *time.Location, at time.Time) int {
	_, off := at.In(loc).Zone()
	return off
}

// Available reports whether the zone produces a plausible UTC offset at
// the given instant.
func Available(loc *time.Location, at time.Time) bool {
	off := OffsetAt(loc, at)
	return off >= MinOffsetSeconds && off <= MaxOffsetSeconds
}

// Convert maps an instant from the source zone's wall-clock interpretation
// to the target zone's: the result reads the same on a wall clock in `to`
// as the input does in `from`. Both zones must be available at the input
// instant, and again at the shifted instant; the second tier catches
// instants near daylight-saving transitions where the zones disagree.
func Convert(t time.Time, from, to *time.Location) (time.Time, error) {
	if !Available(from, t) {
		return time.Time{}, converr.New(converr.TimezoneDataUnavailable,
			"timezone %q reports an implausible UTC offset for this instant", from.String())
	}
	if !Available(to, t) {
		return time.Time{}, converr.New(converr.TimezoneDataUnavailable,
			"timezone %q reports an implausible UTC offset for this instant", to.String())
	}

	shift := OffsetAt(from, t) - OffsetAt(to, t)
	shifted := t.Add(time.Duration(shift) * time.Second)

	// Known approximation: this does not detect local times that vanish or
	// repeat during a transition, only offsets that leave the valid band.
	if !Available(from, shifted) || !Available(to, shifted) {
		return time.Time{}, converr.New(converr.TimezoneConversionFailed,
			"conversion between %q and %q is ambiguous for this instant (daylight-saving boundary)",
			from.String(), to.String())
	}
	return shifted, nil
}
