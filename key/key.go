// Package key models terminal key events and classifies them into the
// small set of semantic classes the editor state machine works with.
package key

import "fmt"

// Code identifies a key semantically, independent of the byte sequence
// the terminal produced for it.
type Code int

const (
	Unknown Code = iota
	Char         // printable key, rune payload in Event.Rune
	Enter
	Escape
	Backspace
	Tab
	Up
	Down
	Left
	Right
	Home
	End
	Delete
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// Event is one key read from the terminal. Rune is set only for Char.
type Event struct {
	Code Code
	Rune rune
}

// Class is the semantic role a key plays in the editor state machine.
// Classification happens once here, so the editor matches over nine
// cases instead of dozens of individual codes.
type Class int

const (
	ClassIgnored Class = iota
	ClassSubmit
	ClassCancel
	ClassDeleteLast
	ClassSuggest
	ClassHistoryPrev
	ClassHistoryNext
	ClassFunction
	ClassPrintable
)

// Class returns the semantic class of the event.
func (e Event) Class() Class {
	switch e.Code {
	case Enter:
		return ClassSubmit
	case Escape:
		return ClassCancel
	case Backspace:
		return ClassDeleteLast
	case Tab:
		return ClassSuggest
	case Up:
		return ClassHistoryPrev
	case Down:
		return ClassHistoryNext
	case Char:
		return ClassPrintable
	}
	if e.Code.IsFunction() {
		return ClassFunction
	}
	return ClassIgnored
}

// IsFunction reports whether the code is one of the twelve function keys.
func (c Code) IsFunction() bool {
	return c >= F1 && c <= F12
}

var codeNames = map[Code]string{
	Unknown:   "unknown",
	Char:      "char",
	Enter:     "enter",
	Escape:    "escape",
	Backspace: "backspace",
	Tab:       "tab",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Home:      "home",
	End:       "end",
	Delete:    "delete",
}

func (c Code) String() string {
	if c.IsFunction() {
		return fmt.Sprintf("f%d", int(c-F1)+1)
	}
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}
