package suggest

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths completes the final whitespace-separated token of the partial
// line as a filesystem path. Directories are completed with a trailing
// separator so a further request descends into them.
type Paths struct{}

// NewPaths creates a filesystem path completer rooted at the process
// working directory.
func NewPaths() *Paths {
	return &Paths{}
}

// Suggest completes the last token of partial against directory
// listings. Returns partial unchanged when nothing matches or the
// directory cannot be read.
func (p *Paths) Suggest(partial string) string {
	head := ""
	token := partial
	if i := strings.LastIndexByte(partial, ' '); i >= 0 {
		head = partial[:i+1]
		token = partial[i+1:]
	}

	dir, base := filepath.Split(token)
	searchDir := dir
	if searchDir == "" {
		searchDir = "."
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return partial
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if base == "" && strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			name += string(filepath.Separator)
		}
		return head + dir + name
	}
	return partial
}
