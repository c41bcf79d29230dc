// Package history records past conversions for callers that want a
// scrollback. The engine core never persists anything itself; it hands
// outcomes to a Recorder when a request asks for history.
package history

import (
	"context"
	"sync"
	"time"
)

// Record is one remembered conversion, successful or not.
type Record struct {
	ID           string    // unique record ID
	Input        string    // sanitized input text
	Formatted    string    // rendered output, empty on failure
	EpochSeconds int64     // parsed instant, 0 on failure
	OK           bool      // whether the conversion succeeded
	Code         string    // failure code name, empty on success
	Message      string    // failure message, empty on success
	SourceZone   string
	TargetZone   string
	CreatedAt    time.Time
}

// Recorder receives records. Implementations must be safe for concurrent
// use; a failed Record is reported but never fails the conversion.
type Recorder interface {
	Record(ctx context.Context, rec Record) error
}

// Ring is a fixed-capacity in-memory Recorder that drops the oldest
// record once full.
type Ring struct {
	mu   sync.Mutex
	cap  int
	recs []Record
}

// NewRing returns a ring holding at most capacity records.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 100
	}
	return &Ring{cap: capacity}
}

// Record implements Recorder.
func (r *Ring) Record(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	if len(r.recs) > r.cap {
		r.recs = r.recs[len(r.recs)-r.cap:]
	}
	return nil
}

// Recent returns up to n records, newest first. n <= 0 means all.
func (r *Ring) Recent(n int) []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n <= 0 || n > len(r.recs) {
		n = len(r.recs)
	}
	out := make([]Record, n)
	for i := 0; i < n; i++ {
		out[i] = r.recs[len(r.recs)-1-i]
	}
	return out
}

// Len reports the number of held records.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.recs)
}

// fanout forwards each record to every recorder, returning the first
// error after all have been tried.
type fanout []Recorder

// Fanout combines recorders into one. Nil entries are skipped.
func Fanout(recorders ...Recorder) Recorder {
	var fs fanout
	for _, r := range recorders {
		if r != nil {
			fs = append(fs, r)
		}
	}
	return fs
}

func (f fanout) Record(ctx context.Context, rec Record) error {
	var firstErr error
	for _, r := range f {
		if err := r.Record(ctx, rec); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
