package output

import (
	"strings"
	"unicode"
)

// Sanitize strips terminal control and escape sequences from a string so
// server-provided text (usernames, captions, comments) can be printed
// without corrupting the terminal. Newlines and tabs are collapsed to
// single spaces to keep table layouts intact.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// Skip ANSI escape sequences (ESC followed by CSI/OSC payload)
		if r == 0x1b {
			i += skipEscapeSequence(runes[i:]) - 1
			continue
		}

		switch {
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			// Drop remaining C0/C1 controls
		case r == unicode.ReplacementChar:
			// Drop invalid UTF-8 artifacts
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// skipEscapeSequence returns how many runes the escape sequence starting at
// runes[0] (ESC) occupies.
func skipEscapeSequence(runes []rune) int {
	if len(runes) < 2 {
		return 1
	}

	switch runes[1] {
	case '[':
		// CSI: ESC [ ... final byte in 0x40-0x7e
		for i := 2; i < len(runes); i++ {
			if runes[i] >= 0x40 && runes[i] <= 0x7e {
				return i + 1
			}
		}
		return len(runes)
	case ']':
		// OSC: ESC ] ... terminated by BEL or ESC \
		for i := 2; i < len(runes); i++ {
			if runes[i] == 0x07 {
				return i + 1
			}
			if runes[i] == 0x1b && i+1 < len(runes) && runes[i+1] == '\\' {
				return i + 2
			}
		}
		return len(runes)
	default:
		// Two-character sequence (ESC + one byte)
		return 2
	}
}
