// Package suggest provides completion providers for partial input lines.
// A provider maps a partial line to a single candidate completion; the
// editor calls it with the text the user had typed when completion
// began, so a stateful provider can cycle through candidates across
// repeated requests for the same partial.
package suggest

import "strings"

// Provider produces one completion candidate for a partial input line.
// If no candidate applies, implementations return the partial unchanged.
type Provider interface {
	Suggest(partial string) string
}

// Func adapts a plain function to the Provider interface.
type Func func(partial string) string

// Suggest calls f.
func (f Func) Suggest(partial string) string {
	return f(partial)
}

// Words completes against a fixed word list by prefix. Repeated calls
// with the same partial cycle through the matching candidates.
type Words struct {
	words []string
	last  string // partial seen on the previous call
	index int    // next candidate offset for that partial
}

// NewWords creates a word-list completer.
func NewWords(words []string) *Words {
	return &Words{words: words}
}

// Suggest returns a word with the given prefix, cycling through matches
// on consecutive calls with the same partial. Returns partial unchanged
// when nothing matches. An empty partial matches every word.
func (w *Words) Suggest(partial string) string {
	var matches []string
	for _, word := range w.words {
		if strings.HasPrefix(word, partial) {
			matches = append(matches, word)
		}
	}
	if len(matches) == 0 {
		return partial
	}

	if partial != w.last {
		w.last = partial
		w.index = 0
	}
	candidate := matches[w.index%len(matches)]
	w.index++
	return candidate
}
