package suggest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsCompletesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	p := NewPaths()
	got := p.Suggest("cat " + dir + string(filepath.Separator) + "no")
	want := "cat " + filepath.Join(dir, "notes.txt")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPathsCompletesDirectoryWithSeparator(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}

	p := NewPaths()
	got := p.Suggest(dir + string(filepath.Separator) + "su")
	want := filepath.Join(dir, "subdir") + string(filepath.Separator)
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPathsNoMatchReturnsPartial(t *testing.T) {
	dir := t.TempDir()
	p := NewPaths()
	partial := dir + string(filepath.Separator) + "nope"
	if got := p.Suggest(partial); got != partial {
		t.Errorf("expected partial back, got %q", got)
	}
}

func TestPathsUnreadableDirReturnsPartial(t *testing.T) {
	p := NewPaths()
	partial := "/definitely/not/a/dir/x"
	if got := p.Suggest(partial); got != partial {
		t.Errorf("expected partial back, got %q", got)
	}
}
