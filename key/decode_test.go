package key

import "testing"

func TestDecodeSingleBytes(t *testing.T) {
	tests := []struct {
		in   []byte
		want Code
	}{
		{[]byte{'\r'}, Enter},
		{[]byte{'\n'}, Enter},
		{[]byte{'\t'}, Tab},
		{[]byte{0x7f}, Backspace},
		{[]byte{0x08}, Backspace},
		{[]byte{0x1b}, Escape},
	}
	for _, tt := range tests {
		ev, n := Decode(tt.in)
		if ev.Code != tt.want {
			t.Errorf("Decode(%v): expected %s, got %s", tt.in, tt.want, ev.Code)
		}
		if n != 1 {
			t.Errorf("Decode(%v): expected 1 byte consumed, got %d", tt.in, n)
		}
	}
}

func TestDecodePrintable(t *testing.T) {
	ev, n := Decode([]byte("a"))
	if ev.Code != Char || ev.Rune != 'a' || n != 1 {
		t.Errorf("expected char 'a', got %s %q (%d bytes)", ev.Code, ev.Rune, n)
	}

	ev, n = Decode([]byte(" "))
	if ev.Code != Char || ev.Rune != ' ' {
		t.Errorf("space should be printable, got %s", ev.Code)
	}

	// Multi-byte UTF-8 decodes as one printable event.
	ev, n = Decode([]byte("é"))
	if ev.Code != Char || ev.Rune != 'é' || n != 2 {
		t.Errorf("expected char 'é' over 2 bytes, got %s %q (%d bytes)", ev.Code, ev.Rune, n)
	}
}

func TestDecodeArrows(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"\x1b[A", Up},
		{"\x1b[B", Down},
		{"\x1b[C", Right},
		{"\x1b[D", Left},
	}
	for _, tt := range tests {
		ev, n := Decode([]byte(tt.in))
		if ev.Code != tt.want || n != 3 {
			t.Errorf("Decode(%q): expected %s/3, got %s/%d", tt.in, tt.want, ev.Code, n)
		}
	}
}

func TestDecodeFunctionKeys(t *testing.T) {
	tests := []struct {
		in   string
		want Code
	}{
		{"\x1bOP", F1},
		{"\x1bOQ", F2},
		{"\x1bOR", F3},
		{"\x1bOS", F4},
		{"\x1b[11~", F1},
		{"\x1b[15~", F5},
		{"\x1b[17~", F6},
		{"\x1b[21~", F10},
		{"\x1b[23~", F11},
		{"\x1b[24~", F12},
	}
	for _, tt := range tests {
		ev, n := Decode([]byte(tt.in))
		if ev.Code != tt.want {
			t.Errorf("Decode(%q): expected %s, got %s", tt.in, tt.want, ev.Code)
		}
		if n != len(tt.in) {
			t.Errorf("Decode(%q): expected %d bytes consumed, got %d", tt.in, len(tt.in), n)
		}
	}
}

func TestDecodeTildeSequences(t *testing.T) {
	ev, _ := Decode([]byte("\x1b[3~"))
	if ev.Code != Delete {
		t.Errorf("expected delete, got %s", ev.Code)
	}
	ev, _ = Decode([]byte("\x1b[1~"))
	if ev.Code != Home {
		t.Errorf("expected home, got %s", ev.Code)
	}
	ev, _ = Decode([]byte("\x1b[4~"))
	if ev.Code != End {
		t.Errorf("expected end, got %s", ev.Code)
	}
}

func TestDecodeSwallowsUnknownEscapes(t *testing.T) {
	// Alt+x arrives as ESC followed by the letter; it must not leak
	// the letter back as printable input.
	ev, n := Decode([]byte("\x1bx"))
	if ev.Code != Unknown {
		t.Errorf("expected unknown, got %s", ev.Code)
	}
	if n != 2 {
		t.Errorf("expected whole sequence consumed, got %d", n)
	}
}

func TestDecodeControlBytes(t *testing.T) {
	ev, n := Decode([]byte{0x03}) // Ctrl-C in raw mode
	if ev.Code != Unknown || n != 1 {
		t.Errorf("expected unmapped control byte to be unknown, got %s/%d", ev.Code, n)
	}
}

func TestDecodeQueuedInput(t *testing.T) {
	// Several keys delivered in one read decode one at a time.
	buf := []byte("ab\r")
	ev, n := Decode(buf)
	if ev.Rune != 'a' || n != 1 {
		t.Fatalf("expected 'a', got %q", ev.Rune)
	}
	buf = buf[n:]
	ev, n = Decode(buf)
	if ev.Rune != 'b' || n != 1 {
		t.Fatalf("expected 'b', got %q", ev.Rune)
	}
	buf = buf[n:]
	ev, _ = Decode(buf)
	if ev.Code != Enter {
		t.Errorf("expected enter, got %s", ev.Code)
	}
}
