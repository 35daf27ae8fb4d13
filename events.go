package keyline

import "keyline/key"

// Subscription is synchronous and fire-and-forget: listeners run inside
// the tick that read the key, in registration order, and their return
// has no effect on the editor. For printable keys the listener observes
// the buffer before the character is appended; for completed lines the
// buffer has already been cleared and the committed text is passed
// explicitly.

// OnKeyPressed registers fn to run when a printable key is read.
func (ed *LineEditor) OnKeyPressed(fn func(ev key.Event)) {
	ed.keyListeners = append(ed.keyListeners, fn)
}

// OnFunctionKey registers fn to run when one of the twelve function
// keys is read.
func (ed *LineEditor) OnFunctionKey(fn func(ev key.Event)) {
	ed.fnListeners = append(ed.fnListeners, fn)
}

// OnInputCompleted registers fn to run when a non-empty line is
// submitted. text is the full committed line.
func (ed *LineEditor) OnInputCompleted(fn func(ev key.Event, text string)) {
	ed.doneListeners = append(ed.doneListeners, fn)
}

func (ed *LineEditor) emitKeyPressed(ev key.Event) {
	for _, fn := range ed.keyListeners {
		fn(ev)
	}
}

func (ed *LineEditor) emitFunctionKey(ev key.Event) {
	for _, fn := range ed.fnListeners {
		fn(ev)
	}
}

func (ed *LineEditor) emitInputCompleted(ev key.Event, text string) {
	for _, fn := range ed.doneListeners {
		fn(ev, text)
	}
}
