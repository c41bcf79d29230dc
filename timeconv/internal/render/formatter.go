// Package render turns instants into text. It owns the fixed grammars for
// the built-in representations and a memoized cache of formatters compiled
// from user-supplied patterns.
package render

import (
	"sync"
	"time"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
)

// exampleInstant is a fixed reference used to show callers what a pattern
// produces (2023-11-14T22:13:20Z).
var exampleInstant = time.Unix(1700000000, 0).UTC()

// Formatter is a compiled pattern bound to a timezone. It is immutable and
// safe for concurrent use; Format and Parse are pure functions of their
// arguments.
type Formatter struct {
	pattern string
	layout  string
	loc     *time.Location
}

// Pattern returns the original user-supplied pattern.
func (f *Formatter) Pattern() string { return f.pattern }

// Format renders the instant in the formatter's zone.
func (f *Formatter) Format(t time.Time) string {
	return t.In(f.loc).Format(f.layout)
}

// Parse runs the formatter in reverse, interpreting raw in the bound zone.
func (f *Formatter) Parse(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(f.layout, raw, f.loc)
	if err != nil {
		return time.Time{}, converr.Wrap(converr.CustomFormatInvalid, err,
			"input does not match pattern %q (for example %q)", f.pattern, f.Example())
	}
	return t, nil
}

// Example renders a fixed reference instant through the pattern, giving
// users a concrete sample of the expected input.
func (f *Formatter) Example() string { return f.Format(exampleInstant) }

type fmtKey struct {
	pattern string
	zone    string
}

// Cache memoizes (pattern, zone) → *Formatter. Same locking discipline as
// the timezone cache: concurrent reads never block, same-key population is
// idempotent.
type Cache struct {
	mu         sync.RWMutex
	formatters map[fmtKey]*Formatter
}

// NewCache returns an empty formatter cache.
func NewCache() *Cache {
	return &Cache{formatters: make(map[fmtKey]*Formatter)}
}

// Lookup returns a formatter for the pattern bound to loc, compiling and
// inserting one on a miss. Invalid patterns yield CustomFormatInvalid and
// are never cached.
func (c *Cache) Lookup(pattern string, loc *time.Location) (*Formatter, error) {
	key := fmtKey{pattern: pattern, zone: loc.String()}

	c.mu.RLock()
	f, ok := c.formatters[key]
	c.mu.RUnlock()
	if ok {
		formatterCacheHits.Inc()
		return f, nil
	}
	formatterCacheMisses.Inc()

	layout, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	f = &Formatter{pattern: pattern, layout: layout, loc: loc}

	c.mu.Lock()
	if prior, ok := c.formatters[key]; ok {
		f = prior
	} else {
		c.formatters[key] = f
	}
	c.mu.Unlock()
	return f, nil
}

// Len reports the number of memoized formatters.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.formatters)
}

// Clear drops every memoized formatter.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.formatters = make(map[fmtKey]*Formatter)
	c.mu.Unlock()
}
