package key

import (
	"unicode"
	"unicode/utf8"
)

const esc = 0x1b

// Decode reads one key event from the front of buf and returns it along
// with the number of bytes consumed. A bare escape byte is only reported
// as Escape when it is the last byte in buf, so callers should hand over
// everything a single terminal read produced.
func Decode(buf []byte) (Event, int) {
	if len(buf) == 0 {
		return Event{}, 0
	}

	switch buf[0] {
	case '\r', '\n':
		return Event{Code: Enter}, 1
	case '\t':
		return Event{Code: Tab}, 1
	case 0x7f, 0x08:
		return Event{Code: Backspace}, 1
	case esc:
		return decodeEscape(buf)
	}

	if buf[0] < 0x20 {
		// Unmapped control character.
		return Event{}, 1
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size == 1 {
		return Event{}, 1
	}
	if !unicode.IsPrint(r) {
		return Event{}, size
	}
	return Event{Code: Char, Rune: r}, size
}

// decodeEscape handles buf starting with an escape byte.
func decodeEscape(buf []byte) (Event, int) {
	if len(buf) == 1 {
		return Event{Code: Escape}, 1
	}

	switch buf[1] {
	case 'O':
		// SS3-prefixed function keys (F1-F4 on most terminals).
		if len(buf) >= 3 {
			switch buf[2] {
			case 'P':
				return Event{Code: F1}, 3
			case 'Q':
				return Event{Code: F2}, 3
			case 'R':
				return Event{Code: F3}, 3
			case 'S':
				return Event{Code: F4}, 3
			}
		}
	case '[':
		return decodeCSI(buf)
	}

	// Unrecognized escape sequence (Alt-modified key, etc). Swallow it
	// whole so the trailing bytes don't leak in as printable input.
	return Event{}, len(buf)
}

// decodeCSI handles ESC [ sequences.
func decodeCSI(buf []byte) (Event, int) {
	if len(buf) < 3 {
		return Event{}, len(buf)
	}

	switch buf[2] {
	case 'A':
		return Event{Code: Up}, 3
	case 'B':
		return Event{Code: Down}, 3
	case 'C':
		return Event{Code: Right}, 3
	case 'D':
		return Event{Code: Left}, 3
	case 'H':
		return Event{Code: Home}, 3
	case 'F':
		return Event{Code: End}, 3
	}

	// Numeric sequences of the form ESC [ <n> ~
	n := 0
	i := 2
	for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
		n = n*10 + int(buf[i]-'0')
		i++
	}
	if i >= len(buf) || buf[i] != '~' || i == 2 {
		return Event{}, len(buf)
	}
	consumed := i + 1

	switch n {
	case 1, 7:
		return Event{Code: Home}, consumed
	case 3:
		return Event{Code: Delete}, consumed
	case 4, 8:
		return Event{Code: End}, consumed
	case 11, 12, 13, 14:
		return Event{Code: F1 + Code(n-11)}, consumed
	case 15:
		return Event{Code: F5}, consumed
	case 17, 18, 19, 20, 21:
		return Event{Code: F6 + Code(n-17)}, consumed
	case 23, 24:
		return Event{Code: F11 + Code(n-23)}, consumed
	}
	return Event{}, consumed
}
