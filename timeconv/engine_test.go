package timeconv

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := New(opts...)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestConvertTimestampToISO(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	out := e.Convert(context.Background(), "1700000000", Options{
		SourceKind: KindTimestamp,
		TargetKind: KindISO8601,
		SourceZone: "UTC",
		TargetZone: "UTC",
	})
	if !out.OK {
		t.Fatalf("failure: %s", out.Message)
	}
	if out.Formatted != "2023-11-14T22:13:20Z" {
		t.Errorf("Formatted = %q, want 2023-11-14T22:13:20Z", out.Formatted)
	}
	if out.EpochSeconds != 1700000000 {
		t.Errorf("EpochSeconds = %d", out.EpochSeconds)
	}
	if out.Instant.Unix() != 1700000000 {
		t.Errorf("Instant = %v", out.Instant)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	for _, raw := range []string{"", "   ", " \t"} {
		out := e.Convert(context.Background(), raw, Options{})
		if out.OK {
			t.Fatalf("%q should fail", raw)
		}
		if out.Code != FailureEmptyInput {
			t.Errorf("%q: code = %v, want FailureEmptyInput", raw, out.Code)
		}
	}
}

func TestConvertNonNumericTimestampValidated(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	out := e.Convert(context.Background(), "not-a-number", Options{
		SourceKind:    KindTimestamp,
		TargetKind:    KindISO8601,
		ValidateInput: true,
	})
	if out.OK {
		t.Fatal("expected failure")
	}
	if out.Code != FailureInvalidTimestamp {
		t.Errorf("code = %v, want FailureInvalidTimestamp", out.Code)
	}
	if !strings.Contains(out.Message, "1700000000") {
		t.Errorf("message should carry an example, got %q", out.Message)
	}
}

func TestConvertTimestampRangeBoundaries(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)
	opts := Options{SourceKind: KindTimestamp, TargetKind: KindTimestamp}

	if out := e.Convert(context.Background(), "4102444800", opts); !out.OK {
		t.Errorf("4102444800 should convert: %s", out.Message)
	}
	out := e.Convert(context.Background(), "4102444801", opts)
	if out.OK || out.Code != FailureInvalidTimestamp {
		t.Errorf("4102444801: OK=%v code=%v", out.OK, out.Code)
	}
}

func TestConvertMillisecondThreshold(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)
	opts := Options{SourceKind: KindTimestamp, TargetKind: KindTimestamp}

	out := e.Convert(context.Background(), "1000000000000", opts)
	if !out.OK || out.EpochSeconds != 1000000000 {
		t.Errorf("10^12: OK=%v epoch=%d, want milliseconds interpretation", out.OK, out.EpochSeconds)
	}
	out = e.Convert(context.Background(), "999999999999", opts)
	if out.OK || out.Code != FailureInvalidTimestamp {
		t.Errorf("999999999999: OK=%v code=%v, want seconds interpretation rejected by range", out.OK, out.Code)
	}
}

func TestConvertAutoDetect(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	cases := []struct {
		raw  string
		want string
	}{
		{"1700000000", "1700000000"},
		{"2023-11-14T22:13:20Z", "1700000000"},
		{"Tue, 14 Nov 2023 22:13:20 +0000", "1700000000"},
	}
	for _, tc := range cases {
		out := e.Convert(context.Background(), tc.raw, Options{
			// Declared kind is deliberately wrong; detection must win.
			SourceKind:       KindCustom,
			Pattern:          "yyyy",
			TargetKind:       KindTimestamp,
			AutoDetectFormat: true,
		})
		if !out.OK {
			t.Errorf("%q: %s", tc.raw, out.Message)
			continue
		}
		if out.Formatted != tc.want {
			t.Errorf("%q -> %q, want %q", tc.raw, out.Formatted, tc.want)
		}
	}
}

func TestConvertAutoDetectFallsBackToDeclaredKind(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	out := e.Convert(context.Background(), "2023|11|14", Options{
		SourceKind:       KindCustom,
		Pattern:          "yyyy|MM|dd",
		TargetKind:       KindISO8601,
		AutoDetectFormat: true,
	})
	if !out.OK {
		t.Fatalf("fallback to declared custom kind failed: %s", out.Message)
	}
	if out.Formatted != "2023-11-14T00:00:00Z" {
		t.Errorf("Formatted = %q", out.Formatted)
	}
}

func TestConvertCustomPattern(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	out := e.Convert(context.Background(), "2023-11-14 22:13:20", Options{
		SourceKind: KindCustom,
		TargetKind: KindTimestamp,
		Pattern:    "yyyy-MM-dd HH:mm:ss",
	})
	if !out.OK {
		t.Fatalf("failure: %s", out.Message)
	}
	if out.Formatted != "1700000000" {
		t.Errorf("Formatted = %q", out.Formatted)
	}
}

func TestConvertCustomPatternErrors(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	// Empty pattern is its own failure.
	out := e.Convert(context.Background(), "2023-11-14", Options{
		SourceKind: KindCustom,
		TargetKind: KindISO8601,
	})
	if out.OK || out.Code != FailureCustomFormatInvalid {
		t.Errorf("empty pattern: OK=%v code=%v", out.OK, out.Code)
	}

	// Mismatching value names the pattern and gives an example.
	out = e.Convert(context.Background(), "garbage", Options{
		SourceKind: KindCustom,
		TargetKind: KindISO8601,
		Pattern:    "yyyy-MM-dd",
	})
	if out.OK || out.Code != FailureCustomFormatInvalid {
		t.Fatalf("mismatch: OK=%v code=%v", out.OK, out.Code)
	}
	if !strings.Contains(out.Message, "yyyy-MM-dd") || !strings.Contains(out.Message, "2023-11-14") {
		t.Errorf("message should name pattern and example, got %q", out.Message)
	}
}

func TestConvertUnknownTimezone(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	out := e.Convert(context.Background(), "1700000000", Options{
		SourceKind: KindTimestamp,
		TargetKind: KindISO8601,
		TargetZone: "Atlantis/Lost_City",
	})
	if out.OK || out.Code != FailureTimezoneDataUnavailable {
		t.Errorf("OK=%v code=%v", out.OK, out.Code)
	}
	if !strings.Contains(out.Message, "Atlantis/Lost_City") {
		t.Errorf("message should name the zone, got %q", out.Message)
	}
}

// Conversion between zones preserves the wall clock: the output reads in
// the target zone what the input read in the source zone.
func TestConvertAcrossZonesPreservesWallClock(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	out := e.Convert(context.Background(), "1700000000", Options{
		SourceKind: KindTimestamp,
		TargetKind: KindISO8601,
		SourceZone: "UTC",
		TargetZone: "Asia/Tokyo",
	})
	if !out.OK {
		t.Fatalf("failure: %s", out.Message)
	}
	if out.Formatted != "2023-11-14T22:13:20+09:00" {
		t.Errorf("Formatted = %q, want 2023-11-14T22:13:20+09:00", out.Formatted)
	}
	// The instant shifted back nine hours to keep the wall clock.
	if out.EpochSeconds != 1700000000-9*3600 {
		t.Errorf("EpochSeconds = %d", out.EpochSeconds)
	}
}

func TestConvertDefaultZonesAreUTC(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	out := e.Convert(context.Background(), "1700000000", Options{
		SourceKind: KindTimestamp,
		TargetKind: KindISO8601,
	})
	if !out.OK || out.Formatted != "2023-11-14T22:13:20Z" {
		t.Errorf("OK=%v Formatted=%q", out.OK, out.Formatted)
	}
}

func TestConvertFractionalOutput(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	out := e.Convert(context.Background(), "1700000000250", Options{
		SourceKind:               KindTimestamp,
		TargetKind:               KindTimestamp,
		IncludeFractionalSeconds: true,
	})
	if !out.OK || out.Formatted != "1700000000.250" {
		t.Errorf("OK=%v Formatted=%q", out.OK, out.Formatted)
	}

	out = e.Convert(context.Background(), "1700000000250", Options{
		SourceKind:               KindTimestamp,
		TargetKind:               KindISO8601,
		IncludeFractionalSeconds: true,
	})
	if !out.OK || out.Formatted != "2023-11-14T22:13:20.250Z" {
		t.Errorf("OK=%v Formatted=%q", out.OK, out.Formatted)
	}
}

func TestConvertNowSamplesClock(t *testing.T) {
	t.Parallel()
	fixed := time.Unix(1700000000, 0).UTC()
	e := newTestEngine(t, WithClock(func() time.Time { return fixed }))

	for _, raw := range []string{"now", "NOW", "current", "  now  "} {
		out := e.Convert(context.Background(), raw, Options{TargetKind: KindISO8601})
		if !out.OK {
			t.Errorf("%q: %s", raw, out.Message)
			continue
		}
		if out.Formatted != "2023-11-14T22:13:20Z" {
			t.Errorf("%q -> %q", raw, out.Formatted)
		}
	}
}

// A clock-sampled input crosses zones the same way a parsed one does.
func TestConvertNowAcrossZones(t *testing.T) {
	t.Parallel()
	fixed := time.Unix(1700000000, 0).UTC()
	e := newTestEngine(t, WithClock(func() time.Time { return fixed }))

	out := e.Convert(context.Background(), "now", Options{
		TargetKind: KindISO8601,
		SourceZone: "UTC",
		TargetZone: "Asia/Tokyo",
	})
	if !out.OK {
		t.Fatalf("failed: %s", out.Message)
	}
	if out.Formatted != "2023-11-14T22:13:20+09:00" {
		t.Errorf("Formatted = %q", out.Formatted)
	}
	if out.EpochSeconds != fixed.Add(-9*time.Hour).Unix() {
		t.Errorf("EpochSeconds = %d", out.EpochSeconds)
	}
}

// Repeated identical requests produce identical output.
func TestConvertIsPure(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)
	opts := Options{
		SourceKind: KindTimestamp,
		TargetKind: KindCustom,
		Pattern:    "EEE, dd MMM yyyy HH:mm:ss",
		TargetZone: "Asia/Tokyo",
	}
	first := e.Convert(context.Background(), "1700000000", opts)
	if !first.OK {
		t.Fatalf("failure: %s", first.Message)
	}
	for i := 0; i < 50; i++ {
		got := e.Convert(context.Background(), "1700000000", opts)
		if got.Formatted != first.Formatted || got.EpochSeconds != first.EpochSeconds {
			t.Fatalf("call %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestRoundTripTimestamps(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	for _, sec := range []int64{0, 86400, 946684800, 1700000000, 4102444800} {
		toISO := e.Convert(context.Background(), strconv.FormatInt(sec, 10), Options{
			SourceKind: KindTimestamp,
			TargetKind: KindISO8601,
		})
		if !toISO.OK {
			t.Fatalf("%d -> ISO: %s", sec, toISO.Message)
		}
		back := e.Convert(context.Background(), toISO.Formatted, Options{
			SourceKind: KindISO8601,
			TargetKind: KindTimestamp,
		})
		if !back.OK {
			t.Fatalf("%q -> timestamp: %s", toISO.Formatted, back.Message)
		}
		if back.EpochSeconds != sec {
			t.Errorf("round trip %d -> %q -> %d", sec, toISO.Formatted, back.EpochSeconds)
		}
	}
}

func TestZoneInfo(t *testing.T) {
	t.Parallel()
	fixed := time.Unix(1700000000, 0).UTC()
	e := newTestEngine(t, WithClock(func() time.Time { return fixed }))

	info, err := e.ZoneInfo("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	if info.Offset != "+09:00" || info.OffsetSeconds != 9*3600 || info.DST {
		t.Errorf("info = %+v", info)
	}

	if _, err := e.ZoneInfo("Nowhere/Void"); err == nil {
		t.Error("expected error for unknown zone")
	}
}

func TestClearCaches(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)
	if out := e.Convert(context.Background(), "1700000000", Options{
		SourceKind: KindTimestamp, TargetKind: KindISO8601, TargetZone: "Asia/Tokyo",
	}); !out.OK {
		t.Fatalf("%s", out.Message)
	}
	e.ClearCaches()
	// Conversions still work; caches repopulate on demand.
	if out := e.Convert(context.Background(), "1700000000", Options{
		SourceKind: KindTimestamp, TargetKind: KindISO8601, TargetZone: "Asia/Tokyo",
	}); !out.OK {
		t.Fatalf("after clear: %s", out.Message)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	e := New()
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
}
