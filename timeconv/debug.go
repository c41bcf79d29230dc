package timeconv

import (
	"os"

	"github.com/rs/zerolog"
)

// debugLoggingRequested checks whether engine debug logging should be
// enabled without code changes. TIMECONV_DEBUG targets this engine;
// DEBUG is the broader development flag.
func debugLoggingRequested() bool {
	return os.Getenv("TIMECONV_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}

func newDebugLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().
		Str("component", "timeconv").
		Timestamp().
		Logger().
		Level(zerolog.DebugLevel)
}
