package timeconv

// This file defines functional options that configure the Engine during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/history"
)

// Option configures an Engine during construction in New. Options must be
// deterministic and side-effect free.
type Option func(*Engine) error

// WithClock replaces the source of "current instant". Intended for tests
// and for callers that already maintain a controlled clock.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) error {
		if clock == nil {
			return fmt.Errorf("clock must not be nil")
		}
		e.clock = clock
		return nil
	}
}

// WithLogger attaches a zerolog logger. The engine is silent by default.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) error {
		e.log = log
		return nil
	}
}

// WithRecorder attaches a history recorder. Requests opt in per call via
// Options.RecordHistory; batch items never record.
func WithRecorder(rec history.Recorder) Option {
	return func(e *Engine) error {
		e.recorder = rec
		return nil
	}
}

// WithParallelism caps the number of batch workers. Zero (the default)
// means one worker per available CPU.
func WithParallelism(n int) Option {
	return func(e *Engine) error {
		if n < 0 {
			return fmt.Errorf("parallelism must be >= 0")
		}
		e.parallelism = n
		return nil
	}
}

// WithSequentialThreshold sets the batch size below which inputs are
// processed sequentially on the caller's goroutine.
func WithSequentialThreshold(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("sequential threshold must be >= 1")
		}
		e.seqThreshold = n
		return nil
	}
}

// WithTickPeriod overrides the live-session re-evaluation period. The
// default is one second; tests shorten it.
func WithTickPeriod(d time.Duration) Option {
	return func(e *Engine) error {
		if d <= 0 {
			return fmt.Errorf("tick period must be > 0")
		}
		e.tick = d
		return nil
	}
}
