package timeconv

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/detect"
)

// LiveSession is a started live conversion. It has two states, running
// and stopped, with exactly one transition between them.
type LiveSession struct {
	// ID uniquely identifies the session, mostly for logging.
	ID string

	engine   *Engine
	gen      uint64
	raw      string
	opts     Options
	onUpdate func(Outcome)

	done     chan struct{}
	stopOnce sync.Once
}

// StartLive converts rawInput immediately, delivers the result to
// onUpdate, and — when the request is live or the input asks for the
// current time — keeps re-evaluating it once per tick until the session
// is stopped. At most one session runs per engine; starting a new one
// implicitly stops the prior session. At most one tick is in flight at a
// time, and no tick fires after Stop returns.
func (e *Engine) StartLive(ctx context.Context, rawInput string, opts Options, onUpdate func(Outcome)) (*LiveSession, error) {
	if onUpdate == nil {
		return nil, fmt.Errorf("timeconv: onUpdate callback must not be nil")
	}

	ticking := opts.LiveMode || isNowInput(detect.Sanitize(rawInput))

	e.liveMu.Lock()
	if prior := e.live; prior != nil {
		prior.signalStop()
	}
	s := &LiveSession{
		ID:       uuid.NewString(),
		engine:   e,
		gen:      atomic.AddUint64(&e.liveGen, 1),
		raw:      rawInput,
		opts:     opts,
		onUpdate: onUpdate,
		done:     make(chan struct{}),
	}
	e.live = s
	e.liveMu.Unlock()

	e.log.Debug().Str("session", s.ID).Bool("ticking", ticking).Msg("live session started")

	// Immediate delivery, synchronous with the start call.
	onUpdate(e.Convert(ctx, rawInput, opts))

	if !ticking {
		// Single delivery; the session is already finished.
		s.Stop()
		return s, nil
	}

	go s.run(ctx)
	return s, nil
}

// StopLive stops the current live session, if any. Immediate with respect
// to future ticks; a tick already delivering is allowed to finish.
func (e *Engine) StopLive() {
	e.liveMu.Lock()
	s := e.live
	e.liveMu.Unlock()
	if s != nil {
		s.Stop()
	}
}

// Stop ends the session and detaches it from the engine so a stale tick
// can never fire against a later session. Idempotent.
func (s *LiveSession) Stop() {
	s.signalStop()
	s.engine.detachLive(s)
}

// signalStop closes the done channel exactly once.
func (s *LiveSession) signalStop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (e *Engine) detachLive(s *LiveSession) {
	e.liveMu.Lock()
	if e.live == s {
		e.live = nil
	}
	e.liveMu.Unlock()
	e.log.Debug().Str("session", s.ID).Msg("live session stopped")
}

// run is the periodic loop. Conversions are synchronous, so at most one
// tick is ever in flight; the generation check keeps a tick that raced a
// restart from delivering into the wrong session.
func (s *LiveSession) run(ctx context.Context) {
	ticker := time.NewTicker(s.engine.tick)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			s.Stop()
			return
		case <-ticker.C:
			if atomic.LoadUint64(&s.engine.liveGen) != s.gen {
				return
			}
			out := s.engine.Convert(ctx, s.raw, s.opts)
			select {
			case <-s.done:
				return
			default:
			}
			if atomic.LoadUint64(&s.engine.liveGen) != s.gen {
				return
			}
			s.onUpdate(out)
			liveTicksTotal.Inc()
		}
	}
}
