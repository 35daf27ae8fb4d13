// Package keyline implements a key-driven line-editing engine for
// terminal applications: it turns raw key events into a managed input
// line with history recall, tab completion and bottom-line redraw.
package keyline

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"

	"keyline/history"
	"keyline/key"
	"keyline/suggest"
)

// TerminalSurface is the terminal capability the editor drives. ReadKey
// must not echo; KeyAvailable must not block. EraseLastLine blanks the
// live line and must be safe to call before any write.
type TerminalSurface interface {
	KeyAvailable() bool
	ReadKey() (key.Event, error)
	CursorColumn() int
	EraseLastLine() error
	Write(text string) error
}

// History is the bounded command log the editor records submitted lines
// to and recalls them from. Prev and Next clamp at the ends; both
// return "" when there is nothing to yield.
type History interface {
	Add(line string)
	Prev() string
	Next() string
}

// Config carries the construction options for a LineEditor.
type Config struct {
	// Surface is the terminal the editor reads from and draws on.
	Surface TerminalSurface

	// Suggest produces completion candidates for Tab. Required.
	Suggest suggest.Provider

	// MaxHistory bounds the command history. Required; zero means
	// history navigation always yields empty lines.
	MaxHistory int

	// History overrides the default in-memory log, for applications
	// that want submitted lines to outlive the process. When set it
	// takes precedence over MaxHistory.
	History History
}

// LineEditor owns the live input line. It is driven by repeated Update
// calls; each applies at most one key transition and redraws the line
// when needed. A LineEditor must not be used from more than one
// goroutine at a time.
type LineEditor struct {
	surface TerminalSurface
	suggest suggest.Provider
	hist    History

	buf     []rune
	cached  string // snapshot of buf taken when a completion began
	refresh bool

	keyListeners  []func(key.Event)
	fnListeners   []func(key.Event)
	doneListeners []func(key.Event, string)
}

// New validates cfg and creates a LineEditor. Configuration problems
// are reported here and never surface mid-session.
func New(cfg Config) (*LineEditor, error) {
	if cfg.Surface == nil {
		return nil, errors.New("keyline: terminal surface is required")
	}
	if cfg.Suggest == nil {
		return nil, errors.New("keyline: suggestion provider is required")
	}
	if cfg.MaxHistory < 0 {
		return nil, fmt.Errorf("keyline: max history must not be negative, got %d", cfg.MaxHistory)
	}

	hist := cfg.History
	if hist == nil {
		hist = history.NewRing(cfg.MaxHistory)
	}
	return &LineEditor{
		surface: cfg.Surface,
		suggest: cfg.Suggest,
		hist:    hist,
	}, nil
}

// Text returns the current contents of the input line.
func (ed *LineEditor) Text() string {
	return string(ed.buf)
}

// Update runs one tick: if a key is available it is read and applied,
// then the line is redrawn if its contents changed or the terminal
// cursor has drifted from the expected column. Terminal failures are
// returned unchanged; there is no sensible redraw target without one.
func (ed *LineEditor) Update() error {
	if ed.surface.KeyAvailable() {
		ev, err := ed.surface.ReadKey()
		if err != nil {
			return err
		}
		ed.handle(ev)
	}

	if ed.refresh || ed.surface.CursorColumn() != runewidth.StringWidth(string(ed.buf)) {
		if err := ed.redraw(); err != nil {
			return err
		}
	}
	return nil
}

// handle applies exactly one state transition for the event.
func (ed *LineEditor) handle(ev key.Event) {
	switch ev.Class() {
	case key.ClassSubmit:
		if len(ed.buf) == 0 {
			return
		}
		text := string(ed.buf)
		ed.hist.Add(text)
		ed.buf = ed.buf[:0]
		ed.markRefresh()
		ed.emitInputCompleted(ev, text)

	case key.ClassCancel:
		if ed.cached != "" {
			ed.buf = []rune(ed.cached)
		} else {
			ed.buf = ed.buf[:0]
		}
		ed.markRefresh()

	case key.ClassDeleteLast:
		if len(ed.buf) > 0 {
			ed.buf = ed.buf[:len(ed.buf)-1]
		}
		ed.markRefresh()

	case key.ClassSuggest:
		if ed.cached == "" {
			ed.cached = string(ed.buf)
		}
		ed.buf = []rune(ed.suggest.Suggest(ed.cached))
		// Not markRefresh: the snapshot must survive so repeated
		// completion keeps deriving from the original partial.
		ed.refresh = true

	case key.ClassHistoryPrev:
		ed.buf = []rune(ed.hist.Prev())
		ed.markRefresh()

	case key.ClassHistoryNext:
		ed.buf = []rune(ed.hist.Next())
		ed.markRefresh()

	case key.ClassFunction:
		ed.emitFunctionKey(ev)

	case key.ClassPrintable:
		ed.emitKeyPressed(ev)
		ed.buf = append(ed.buf, ev.Rune)
		ed.markRefresh()
	}
}

// markRefresh requests a redraw and commits any pending completion: the
// cached snapshot only lives while the suggestion preview is active.
func (ed *LineEditor) markRefresh() {
	ed.refresh = true
	ed.cached = ""
}

// redraw erases the live line and rewrites the buffer.
func (ed *LineEditor) redraw() error {
	if err := ed.surface.EraseLastLine(); err != nil {
		return err
	}
	if err := ed.surface.Write(string(ed.buf)); err != nil {
		return err
	}
	ed.refresh = false
	return nil
}
