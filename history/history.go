// Package history provides bounded command history with cursor-style
// previous/next navigation.
package history

// Ring is a bounded in-memory history log. When full, adding a line
// evicts the oldest entry. The navigation cursor sits past the newest
// entry until Prev is called, and Add resets it there.
type Ring struct {
	entries []string
	max     int
	cursor  int // len(entries) = past the newest, not navigating
}

// NewRing creates a history log holding at most max lines. A max of
// zero keeps nothing, so navigation always yields empty strings.
func NewRing(max int) *Ring {
	return &Ring{max: max}
}

// Add appends a line and resets the navigation cursor past the newest
// entry. The oldest entry is evicted once the log is full.
func (r *Ring) Add(line string) {
	if r.max <= 0 {
		return
	}
	r.entries = append(r.entries, line)
	if len(r.entries) > r.max {
		r.entries = r.entries[1:]
	}
	r.cursor = len(r.entries)
}

// Prev moves the cursor one step toward older entries, clamped at the
// oldest, and returns the entry there. Returns "" if the log is empty.
func (r *Ring) Prev() string {
	if len(r.entries) == 0 {
		return ""
	}
	if r.cursor > 0 {
		r.cursor--
	}
	return r.entries[r.cursor]
}

// Next moves the cursor one step toward newer entries. Past the newest
// it returns "" and stays in the not-navigating state.
func (r *Ring) Next() string {
	if r.cursor < len(r.entries) {
		r.cursor++
	}
	if r.cursor >= len(r.entries) {
		r.cursor = len(r.entries)
		return ""
	}
	return r.entries[r.cursor]
}

// Len returns the number of entries currently held.
func (r *Ring) Len() int {
	return len(r.entries)
}

// Lines returns a copy of the held entries, oldest first.
func (r *Ring) Lines() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
