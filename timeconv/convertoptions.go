package timeconv

// Options is the immutable description of one conversion request. The
// zero value converts a timestamp to ISO-8601 within UTC.
type Options struct {
	// SourceKind declares how the input is represented. Ignored when
	// AutoDetectFormat succeeds.
	SourceKind Kind

	// TargetKind selects the output representation.
	TargetKind Kind

	// SourceZone and TargetZone are IANA identifiers; empty means UTC.
	SourceZone string
	TargetZone string

	// Pattern is the custom pattern, consulted only when a kind is
	// KindCustom.
	Pattern string

	// IncludeFractionalSeconds adds millisecond precision to timestamp
	// and ISO-8601 output.
	IncludeFractionalSeconds bool

	// AutoDetectFormat tries Timestamp → ISO-8601 → RFC-2822 detection on
	// the input, falling back to SourceKind when nothing matches.
	AutoDetectFormat bool

	// ValidateInput runs the kind-specific validator before parsing; a
	// validation failure short-circuits without invoking the parser.
	ValidateInput bool

	// LiveMode marks the request as part of a live session, forcing the
	// session to tick even when the input is not "now".
	LiveMode bool

	// BatchMode marks the request as one item of a batch; it disables
	// history recording and live-mode side effects for the item.
	BatchMode bool

	// RecordHistory routes the outcome to the engine's recorder, if one
	// is configured. Ignored in batch mode.
	RecordHistory bool
}

// sourceZone returns the effective source zone identifier.
func (o Options) sourceZone() string {
	if o.SourceZone == "" {
		return "UTC"
	}
	return o.SourceZone
}

// targetZone returns the effective target zone identifier.
func (o Options) targetZone() string {
	if o.TargetZone == "" {
		return "UTC"
	}
	return o.TargetZone
}
