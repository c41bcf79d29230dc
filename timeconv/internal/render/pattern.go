package render

import (
	"strings"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
)

// CompilePattern translates a user-supplied date pattern (LDML-style
// letters: yyyy, MM, dd, HH, mm, ss, ...) into a Go reference layout.
// Text wrapped in single quotes is copied literally; '' is a literal quote.
func CompilePattern(pattern string) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", converr.New(converr.CustomFormatInvalid, "custom pattern is empty")
	}

	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		// Quoted literal section.
		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			end := i + 1
			for end < len(runes) && runes[end] != '\'' {
				end++
			}
			if end == len(runes) {
				return "", converr.New(converr.CustomFormatInvalid,
					"unterminated quote in pattern %q", pattern)
			}
			b.WriteString(string(runes[i+1 : end]))
			i = end + 1
			continue
		}

		if !isPatternLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		// Count the run of identical letters.
		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		frag, err := layoutFor(r, n, pattern)
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
		i += n
	}
	return b.String(), nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// layoutFor maps one letter run to its Go layout fragment.
func layoutFor(letter rune, count int, pattern string) (string, error) {
	switch letter {
	case 'y':
		switch count {
		case 4:
			return "2006", nil
		case 2:
			return "06", nil
		}
	case 'M':
		switch count {
		case 4:
			return "January", nil
		case 3:
			return "Jan", nil
		case 2:
			return "01", nil
		case 1:
			return "1", nil
		}
	case 'd':
		switch count {
		case 2:
			return "02", nil
		case 1:
			return "2", nil
		}
	case 'E':
		switch count {
		case 4:
			return "Monday", nil
		case 3, 1:
			return "Mon", nil
		}
	case 'H':
		if count == 2 || count == 1 {
			return "15", nil
		}
	case 'h':
		switch count {
		case 2:
			return "03", nil
		case 1:
			return "3", nil
		}
	case 'm':
		switch count {
		case 2:
			return "04", nil
		case 1:
			return "4", nil
		}
	case 's':
		switch count {
		case 2:
			return "05", nil
		case 1:
			return "5", nil
		}
	case 'S':
		// Fractional seconds; must follow the seconds field and a dot,
		// e.g. "HH:mm:ss.SSS".
		if count >= 1 && count <= 9 {
			return strings.Repeat("0", count), nil
		}
	case 'a':
		if count == 1 {
			return "PM", nil
		}
	case 'z':
		if count >= 1 && count <= 3 {
			return "MST", nil
		}
	case 'Z':
		switch count {
		case 5:
			return "-07:00", nil
		case 1:
			return "-0700", nil
		}
	case 'X':
		switch count {
		case 3:
			return "Z07:00", nil
		case 2:
			return "Z0700", nil
		case 1:
			return "Z07", nil
		}
	default:
		return "", converr.New(converr.CustomFormatInvalid,
			"unsupported pattern letter %q in %q (supported letters: y M d E H h m s S a z Z X)",
			string(letter), pattern)
	}
	return "", converr.New(converr.CustomFormatInvalid,
		"unsupported run %q in %q (try %q)", strings.Repeat(string(letter), count), pattern, suggestionFor(letter))
}

func suggestionFor(letter rune) string {
	switch letter {
	case 'y':
		return "yyyy"
	case 'M':
		return "MM"
	case 'd':
		return "dd"
	case 'E':
		return "EEE"
	case 'H':
		return "HH"
	case 'h':
		return "hh"
	case 'm':
		return "mm"
	case 's':
		return "ss"
	case 'S':
		return "SSS"
	case 'z':
		return "zzz"
	case 'Z':
		return "Z"
	case 'X':
		return "XXX"
	default:
		return "yyyy-MM-dd HH:mm:ss"
	}
}
