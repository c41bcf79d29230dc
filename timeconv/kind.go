package timeconv

import (
	"fmt"
	"strings"
)

// Kind tags which textual time representation is in use.
type Kind int

const (
	// KindTimestamp is a numeric epoch value, seconds or milliseconds
	// disambiguated by magnitude.
	KindTimestamp Kind = iota

	// KindISO8601 is the fixed ISO-8601 grammar, e.g. 2023-11-14T22:13:20Z.
	KindISO8601

	// KindRFC2822 is the fixed RFC-2822 grammar,
	// e.g. Tue, 14 Nov 2023 22:13:20 +0000.
	KindRFC2822

	// KindCustom is a user-supplied pattern carried in Options.Pattern.
	KindCustom
)

// String returns the canonical lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTimestamp:
		return "timestamp"
	case KindISO8601:
		return "iso8601"
	case KindRFC2822:
		return "rfc2822"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a textual kind name (as used by the CLI and the HTTP
// API) to its Kind. Recognizes a few common aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "timestamp", "unix", "epoch":
		return KindTimestamp, nil
	case "iso8601", "iso-8601", "iso":
		return KindISO8601, nil
	case "rfc2822", "rfc-2822", "rfc":
		return KindRFC2822, nil
	case "custom":
		return KindCustom, nil
	default:
		return 0, fmt.Errorf("unknown representation %q (expected timestamp, iso8601, rfc2822 or custom)", s)
	}
}
