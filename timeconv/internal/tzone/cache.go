// Package tzone resolves IANA timezone identifiers through a memoized,
// thread-safe cache and converts instants between zones.
package tzone

import (
	"sync"
	"time"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
)

// Cache memoizes identifier → *time.Location lookups. Reads never block
// each other; a miss takes the write lock only long enough to insert.
// Concurrent misses on the same identifier may both resolve, but resolved
// values for a key are equivalent, so either write may win.
type Cache struct {
	mu    sync.RWMutex
	zones map[string]*time.Location
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{zones: make(map[string]*time.Location)}
}

// Resolve returns the location for identifier, consulting the host zone
// database on a miss. Unknown identifiers yield TimezoneDataUnavailable.
func (c *Cache) Resolve(identifier string) (*time.Location, error) {
	c.mu.RLock()
	loc, ok := c.zones[identifier]
	c.mu.RUnlock()
	if ok {
		zoneCacheHits.Inc()
		return loc, nil
	}
	zoneCacheMisses.Inc()

	loc, err := time.LoadLocation(identifier)
	if err != nil {
		return nil, converr.Wrap(converr.TimezoneDataUnavailable, err,
			"unknown timezone %q (expected an IANA identifier like America/New_York)", identifier)
	}

	c.mu.Lock()
	// Another caller may have raced us here; keep the first insert so the
	// cache never holds two values for one key.
	if prior, ok := c.zones[identifier]; ok {
		loc = prior
	} else {
		c.zones[identifier] = loc
	}
	c.mu.Unlock()
	return loc, nil
}

// Len reports the number of memoized zones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.zones)
}

// Clear drops every memoized zone.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.zones = make(map[string]*time.Location)
	c.mu.Unlock()
}
