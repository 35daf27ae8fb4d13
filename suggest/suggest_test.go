package suggest

import "testing"

func TestFuncAdapter(t *testing.T) {
	p := Func(func(partial string) string { return partial + "!" })
	if got := p.Suggest("hi"); got != "hi!" {
		t.Errorf("expected %q, got %q", "hi!", got)
	}
}

func TestWordsPrefixMatch(t *testing.T) {
	w := NewWords([]string{"help", "history", "exit"})
	if got := w.Suggest("ex"); got != "exit" {
		t.Errorf("expected %q, got %q", "exit", got)
	}
}

func TestWordsNoMatchReturnsPartial(t *testing.T) {
	w := NewWords([]string{"help"})
	if got := w.Suggest("zz"); got != "zz" {
		t.Errorf("expected partial back, got %q", got)
	}
}

func TestWordsCyclesCandidates(t *testing.T) {
	w := NewWords([]string{"help", "history", "halt"})
	if got := w.Suggest("h"); got != "help" {
		t.Errorf("first: expected %q, got %q", "help", got)
	}
	if got := w.Suggest("h"); got != "history" {
		t.Errorf("second: expected %q, got %q", "history", got)
	}
	if got := w.Suggest("h"); got != "halt" {
		t.Errorf("third: expected %q, got %q", "halt", got)
	}
	if got := w.Suggest("h"); got != "help" {
		t.Errorf("cycle should wrap, got %q", got)
	}
}

func TestWordsNewPartialResetsCycle(t *testing.T) {
	w := NewWords([]string{"help", "history"})
	w.Suggest("h")
	w.Suggest("h")
	if got := w.Suggest("he"); got != "help" {
		t.Errorf("new partial should restart matching, got %q", got)
	}
}

func TestWordsEmptyPartialMatchesAll(t *testing.T) {
	w := NewWords([]string{"alpha", "beta"})
	if got := w.Suggest(""); got != "alpha" {
		t.Errorf("expected %q, got %q", "alpha", got)
	}
}
