// Package timeconv converts heterogeneous time representations (epoch
// timestamps, ISO-8601, RFC-2822, custom patterns) between time zones,
// one-shot, as a live re-evaluating session, or as an ordered concurrent
// batch. All operations return Outcome values; nothing panics across the
// API boundary.
package timeconv

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/history"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/detect"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/parse"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/render"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/tzone"
)

// Engine owns the caches and orchestrates the conversion pipeline. All
// methods are safe for concurrent use.
type Engine struct {
	zones *tzone.Cache
	fmts  *render.Cache

	clock    func() time.Time
	log      zerolog.Logger
	recorder history.Recorder

	parallelism  int
	seqThreshold int
	tick         time.Duration

	liveMu  sync.Mutex
	live    *LiveSession
	liveGen uint64 // read/written atomically

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs an Engine. Additional knobs are provided via functional
// options; invalid options panic, matching construction-time misuse.
func New(opts ...Option) *Engine {
	e := &Engine{
		zones:        tzone.NewCache(),
		fmts:         render.NewCache(),
		clock:        time.Now,
		log:          zerolog.Nop(),
		seqThreshold: defaultSequentialThreshold,
		tick:         time.Second,
	}

	if debugLoggingRequested() {
		opts = append([]Option{WithLogger(newDebugLogger())}, opts...)
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			panic(err)
		}
	}
	return e
}

// defaultSequentialThreshold is the batch size below which fan-out is not
// worth the goroutine overhead.
const defaultSequentialThreshold = 16

// Close stops any live session. Safe to call multiple times.
func (e *Engine) Close() error {
	if !atomic.CompareAndSwapUint32(&e.closedOnce, 0, 1) {
		return nil
	}
	e.StopLive()
	return nil
}

// ClearCaches drops the memoized zones and formatters. Subsequent calls
// repopulate on demand.
func (e *Engine) ClearCaches() {
	e.zones.Clear()
	e.fmts.Clear()
}

// Convert runs one synchronous conversion. Every failure comes back as a
// Failure-style Outcome, never as a panic or error.
func (e *Engine) Convert(ctx context.Context, rawInput string, opts Options) Outcome {
	out := e.convert(rawInput, opts)

	if out.OK {
		conversionsTotal.WithLabelValues("success").Inc()
	} else {
		conversionsTotal.WithLabelValues("failure").Inc()
		conversionFailuresTotal.WithLabelValues(out.Code.String()).Inc()
		e.log.Debug().
			Str("code", out.Code.String()).
			Str("input", detect.Sanitize(rawInput)).
			Msg("conversion failed")
	}

	e.record(ctx, rawInput, opts, out)
	return out
}

// convert is the coordinator: sanitize → detect → validate → parse →
// zone-convert → format, each step a potential exit. No step is retried.
func (e *Engine) convert(rawInput string, opts Options) Outcome {
	input := detect.Sanitize(rawInput)
	if input == "" {
		return failure(converr.New(converr.EmptyInput, "input is empty"))
	}

	var (
		instant time.Time
		srcLoc  *time.Location
	)
	if isNowInput(input) {
		// "now"/"current" sample the engine clock; there is nothing to
		// detect, validate or parse.
		instant = e.clock()
	} else {
		kind := opts.SourceKind
		if opts.AutoDetectFormat {
			if detected, ok := detectKind(input); ok {
				kind = detected
			}
		}

		if opts.ValidateInput {
			if err := validateKind(input, kind, opts.Pattern); err != nil {
				return failure(err)
			}
		}

		loc, err := e.zones.Resolve(opts.sourceZone())
		if err != nil {
			return failure(err)
		}
		srcLoc = loc

		instant, err = e.parse(input, kind, srcLoc, opts.Pattern)
		if err != nil {
			return failure(err)
		}
	}

	dstLoc, err := e.zones.Resolve(opts.targetZone())
	if err != nil {
		return failure(err)
	}

	if opts.sourceZone() != opts.targetZone() {
		// Already resolved on the parse path; only a clock-sampled input
		// arrives here without one.
		if srcLoc == nil {
			srcLoc, err = e.zones.Resolve(opts.sourceZone())
			if err != nil {
				return failure(err)
			}
		}
		instant, err = tzone.Convert(instant, srcLoc, dstLoc)
		if err != nil {
			return failure(err)
		}
	}

	formatted, err := e.format(instant, opts.TargetKind, dstLoc, opts.Pattern, opts.IncludeFractionalSeconds)
	if err != nil {
		return failure(err)
	}
	return success(formatted, instant)
}

// parse dispatches to the kind-specific grammar.
func (e *Engine) parse(input string, kind Kind, loc *time.Location, pattern string) (time.Time, error) {
	switch kind {
	case KindTimestamp:
		return parse.Timestamp(input)
	case KindISO8601:
		return parse.ISO8601(input, loc)
	case KindRFC2822:
		return parse.RFC2822(input, loc)
	case KindCustom:
		return parse.Custom(input, pattern, loc, e.fmts)
	default:
		return time.Time{}, converr.New(converr.InvalidDateFormat,
			"unknown source representation %q", kind.String())
	}
}

// format renders the instant in the target representation. Total for
// valid instants except when a custom pattern fails to compile.
func (e *Engine) format(instant time.Time, kind Kind, loc *time.Location, pattern string, fractional bool) (string, error) {
	switch kind {
	case KindTimestamp:
		return render.Timestamp(instant, fractional), nil
	case KindISO8601:
		return render.ISO8601(instant, loc, fractional), nil
	case KindRFC2822:
		return render.RFC2822(instant, loc), nil
	case KindCustom:
		f, err := e.fmts.Lookup(pattern, loc)
		if err != nil {
			return "", err
		}
		return f.Format(instant), nil
	default:
		return "", converr.New(converr.OutputGenerationFailed,
			"unknown target representation %q", kind.String())
	}
}

// ZoneInfo describes a timezone at the current instant.
type ZoneInfo struct {
	Identifier    string `json:"identifier"`
	Abbreviation  string `json:"abbreviation"`
	Offset        string `json:"offset"`
	OffsetSeconds int    `json:"offsetSeconds"`
	DST           bool   `json:"dst"`
}

// ZoneInfo resolves identifier and reports its current offset data. Zones
// with implausible offsets are treated as unavailable.
func (e *Engine) ZoneInfo(identifier string) (ZoneInfo, error) {
	loc, err := e.zones.Resolve(identifier)
	if err != nil {
		return ZoneInfo{}, err
	}
	now := e.clock()
	if !tzone.Available(loc, now) {
		return ZoneInfo{}, converr.New(converr.TimezoneDataUnavailable,
			"timezone %q reports an implausible UTC offset", identifier)
	}
	info := tzone.InfoAt(identifier, loc, now)
	return ZoneInfo{
		Identifier:    info.Identifier,
		Abbreviation:  info.Abbreviation,
		Offset:        info.Offset,
		OffsetSeconds: info.OffsetSeconds,
		DST:           info.DST,
	}, nil
}

// record forwards the outcome to the recorder when the request asked for
// history. Recording is best-effort; failures are logged, never surfaced.
func (e *Engine) record(ctx context.Context, rawInput string, opts Options, out Outcome) {
	if e.recorder == nil || !opts.RecordHistory || opts.BatchMode {
		return
	}
	rec := history.Record{
		ID:           uuid.NewString(),
		Input:        detect.Sanitize(rawInput),
		Formatted:    out.Formatted,
		EpochSeconds: out.EpochSeconds,
		OK:           out.OK,
		SourceZone:   opts.sourceZone(),
		TargetZone:   opts.targetZone(),
		CreatedAt:    e.clock(),
	}
	if !out.OK {
		rec.Code = out.Code.String()
		rec.Message = out.Message
	}
	if err := e.recorder.Record(ctx, rec); err != nil {
		e.log.Warn().Err(err).Str("record_id", rec.ID).Msg("history record failed")
	}
}

// detectKind tries the representations in fixed order and returns the
// first whose grammar accepts the input.
func detectKind(input string) (Kind, bool) {
	switch {
	case detect.IsTimestamp(input):
		return KindTimestamp, true
	case detect.IsISO8601(input):
		return KindISO8601, true
	case detect.IsRFC2822(input):
		return KindRFC2822, true
	}
	return 0, false
}

// validateKind runs the kind-specific validator. For KindCustom the
// pattern itself is checked; value mismatches surface at parse time.
func validateKind(input string, kind Kind, pattern string) error {
	switch kind {
	case KindTimestamp:
		return detect.ValidateTimestamp(input)
	case KindISO8601:
		return detect.ValidateISO8601(input)
	case KindRFC2822:
		return detect.ValidateRFC2822(input)
	case KindCustom:
		return detect.ValidateCustomPattern(pattern)
	default:
		return nil
	}
}

// isNowInput reports whether the sanitized input asks for the current
// instant rather than carrying a value of its own.
func isNowInput(input string) bool {
	switch strings.ToLower(input) {
	case "now", "current", "current time":
		return true
	}
	return false
}
