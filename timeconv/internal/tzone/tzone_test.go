package tzone

import (
	"sync"
	"testing"
	"time"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
)

func TestResolveKnownZone(t *testing.T) {
	t.Parallel()
	c := NewCache()
	loc, err := c.Resolve("Asia/Tokyo")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if loc.String() != "Asia/Tokyo" {
		t.Errorf("got %q", loc.String())
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestResolveUnknownZone(t *testing.T) {
	t.Parallel()
	c := NewCache()
	_, err := c.Resolve("Atlantis/Lost_City")
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	if code, ok := converr.CodeOf(err); !ok || code != converr.TimezoneDataUnavailable {
		t.Errorf("code = %v, want TimezoneDataUnavailable", code)
	}
	if c.Len() != 0 {
		t.Errorf("failed lookups must not populate the cache, Len = %d", c.Len())
	}
}

func TestResolveMemoizes(t *testing.T) {
	t.Parallel()
	c := NewCache()
	first, err := c.Resolve("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Resolve("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second lookup should return the memoized *time.Location")
	}
}

// Concurrent misses on the same key must converge to a single cache entry
// without corrupting the map.
func TestResolveConcurrentSameKey(t *testing.T) {
	t.Parallel()
	c := NewCache()
	const workers = 32
	locs := make([]*time.Location, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loc, err := c.Resolve("America/New_York")
			if err != nil {
				t.Errorf("worker %d: %v", i, err)
				return
			}
			locs[i] = loc
		}(i)
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	// All workers must observe an equivalent zone.
	for i, loc := range locs {
		if loc == nil || loc.String() != "America/New_York" {
			t.Errorf("worker %d got %v", i, loc)
		}
	}
}

func TestResolveConcurrentDistinctKeys(t *testing.T) {
	t.Parallel()
	c := NewCache()
	ids := []string{"UTC", "Asia/Tokyo", "Europe/London", "America/Chicago", "Australia/Sydney"}

	var wg sync.WaitGroup
	for _, id := range ids {
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				if _, err := c.Resolve(id); err != nil {
					t.Errorf("%s: %v", id, err)
				}
			}(id)
		}
	}
	wg.Wait()

	if c.Len() != len(ids) {
		t.Errorf("Len = %d, want %d", c.Len(), len(ids))
	}
}

func TestClear(t *testing.T) {
	t.Parallel()
	c := NewCache()
	if _, err := c.Resolve("UTC"); err != nil {
		t.Fatal(err)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
}

func TestConvertSameWallClock(t *testing.T) {
	t.Parallel()
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	utc := time.UTC

	at := time.Unix(1700000000, 0).UTC()
	got, err := Convert(at, tokyo, utc)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	// The result in UTC must read the same as the input did in Tokyo.
	if want := at.In(tokyo).Format("15:04:05"); got.In(utc).Format("15:04:05") != want {
		t.Errorf("wall clock %s, want %s", got.In(utc).Format("15:04:05"), want)
	}
	// Tokyo is UTC+9, so the instant shifts forward nine hours.
	if diff := got.Sub(at); diff != 9*time.Hour {
		t.Errorf("shift = %v, want 9h", diff)
	}
}

func TestConvertIdenticalZonesIsIdentity(t *testing.T) {
	t.Parallel()
	at := time.Unix(1700000000, 0).UTC()
	got, err := Convert(at, time.UTC, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(at) {
		t.Errorf("got %v, want %v", got, at)
	}
}

func TestOffsetBounds(t *testing.T) {
	t.Parallel()
	at := time.Unix(1700000000, 0).UTC()
	for _, id := range []string{"Pacific/Kiritimati", "Etc/GMT+12", "UTC"} {
		loc, err := time.LoadLocation(id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if !Available(loc, at) {
			t.Errorf("%s should be within [-12h, +14h]", id)
		}
	}
}

func TestInfoAt(t *testing.T) {
	t.Parallel()
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	info := InfoAt("Asia/Tokyo", tokyo, time.Unix(1700000000, 0))
	if info.Identifier != "Asia/Tokyo" {
		t.Errorf("Identifier = %q", info.Identifier)
	}
	if info.Offset != "+09:00" || info.OffsetSeconds != 9*3600 {
		t.Errorf("Offset = %q (%d)", info.Offset, info.OffsetSeconds)
	}
	if info.DST {
		t.Error("Japan does not observe DST")
	}
}

func TestFormatOffsetNegative(t *testing.T) {
	t.Parallel()
	if got := formatOffset(-5*3600 - 30*60); got != "-05:30" {
		t.Errorf("formatOffset = %q, want -05:30", got)
	}
}
