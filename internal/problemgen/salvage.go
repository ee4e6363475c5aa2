package problemgen

import (
	"errors"
	"strings"
)

// ErrNothingRecovered means a truncated response contained no complete
// top-level object to salvage.
var ErrNothingRecovered = errors.New("truncated response contains no complete object")

// salvageArray repairs a JSON array that was cut off mid-object. It
// scans for the end of the last complete top-level object, tracking
// brace depth and string-literal state so braces inside quoted strings
// don't count, then drops everything after it and re-closes the array.
// The returned text is valid JSON if the untruncated prefix was.
func salvageArray(text string) (string, error) {
	var (
		depth        int
		inString     bool
		escaped      bool
		lastComplete int // offset just past the last complete object's closing brace
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					lastComplete = i + 1
				}
			}
		}
	}

	if lastComplete == 0 {
		return "", ErrNothingRecovered
	}

	prefix := strings.TrimRight(text[:lastComplete], " \t\n")
	prefix = strings.TrimSuffix(prefix, ",")
	return prefix + "]", nil
}
