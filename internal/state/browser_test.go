package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func newMemContext(t *testing.T, files map[string]string, dirs ...string) *AppContext {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, dir := range dirs {
		if err := mem.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	for path, content := range files {
		if err := afero.WriteFile(mem, path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return NewAppContext(mem)
}

func entryNames(b *BrowserState) []string {
	names := make([]string, 0, len(b.Entries()))
	for _, entry := range b.Entries() {
		names = append(names, entry.Name)
	}
	return names
}

func TestNewBrowserStateListsFirstLevel(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/proj/main.go":       "package main",
		"/proj/README.md":     "# readme",
		"/proj/.env":          "SECRET=1",
		"/proj/src/lib/a.go":  "package lib",
		"/proj/docs/guide.md": "guide",
	})

	b, err := NewBrowserState(context.Background(), "/proj", DefaultTreeOptions(), Screen{Width: 80, Height: 24}, con)
	if err != nil {
		t.Fatalf("NewBrowserState failed: %v", err)
	}
	want := []string{"docs", "src", "README.md", "main.go"}
	if diff := cmp.Diff(want, entryNames(b)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
	if !b.IsRootSelected() || b.SelectedPath() != "/proj" {
		t.Fatalf("expected the root to be selected, got %q", b.SelectedPath())
	}
	if b.Title() != "/proj" {
		t.Fatalf("Title() = %q", b.Title())
	}
}

func TestBrowserOptionsFilterEntries(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/proj/main.go":      "package main",
		"/proj/main_test.go": "package main",
		"/proj/.env":         "x",
		"/proj/notes.txt":    "x",
		"/proj/src/a.go":     "x",
	})

	tests := []struct {
		name   string
		mutate func(*TreeOptions)
		want   []string
	}{
		{"hidden shown", func(o *TreeOptions) { o.ShowHidden = true }, []string{"src", ".env", "main.go", "main_test.go", "notes.txt"}},
		{"only folders", func(o *TreeOptions) { o.OnlyFolders = true }, []string{"src"}},
		{"fuzzy pattern", func(o *TreeOptions) { o.Pattern = "main" }, []string{"main.go", "main_test.go"}},
		{"fuzzy subsequence", func(o *TreeOptions) { o.Pattern = "mtg" }, []string{"main_test.go"}},
		{"upper case pattern", func(o *TreeOptions) { o.Pattern = "MAIN" }, []string{}},
		{"glob pattern", func(o *TreeOptions) { o.Pattern = "*_test.go" }, []string{"main_test.go"}},
		{"brace glob", func(o *TreeOptions) { o.Pattern = "{notes.txt,src}" }, []string{"src", "notes.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultTreeOptions()
			tt.mutate(&options)
			b, err := NewBrowserState(context.Background(), "/proj", options, Screen{Width: 80, Height: 24}, con)
			if err != nil {
				t.Fatalf("NewBrowserState failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, entryNames(b)); diff != "" {
				t.Fatalf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFuzzyPatternRanksBestMatchFirst(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/proj/amain.txt": "x",
		"/proj/main.txt":  "x",
	}, "/proj/domain")
	options := DefaultTreeOptions()
	options.Pattern = "main"
	b, err := NewBrowserState(context.Background(), "/proj", options, Screen{Width: 80, Height: 24}, con)
	if err != nil {
		t.Fatalf("NewBrowserState failed: %v", err)
	}
	want := []string{"main.txt", "amain.txt", "domain"}
	if diff := cmp.Diff(want, entryNames(b)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestGitIgnoredEntries(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/repo/.gitignore": "*.log\nbuild/\n",
		"/repo/a.log":      "x",
		"/repo/keep.go":    "x",
	}, "/repo/.git", "/repo/build")

	b, err := NewBrowserState(context.Background(), "/repo", DefaultTreeOptions(), Screen{Width: 80, Height: 24}, con)
	if err != nil {
		t.Fatalf("NewBrowserState failed: %v", err)
	}
	if diff := cmp.Diff([]string{"keep.go"}, entryNames(b)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}

	options := DefaultTreeOptions()
	options.RespectGitIgnore = false
	b, err = NewBrowserState(context.Background(), "/repo", options, Screen{Width: 80, Height: 24}, con)
	if err != nil {
		t.Fatalf("NewBrowserState failed: %v", err)
	}
	if diff := cmp.Diff([]string{"build", "a.log", "keep.go"}, entryNames(b)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestNewBrowserStateMissingDirectory(t *testing.T) {
	con := newMemContext(t, nil, "/proj")
	_, err := NewBrowserState(context.Background(), "/nope", DefaultTreeOptions(), Screen{}, con)
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestNewBrowserStateCancelled(t *testing.T) {
	con := newMemContext(t, map[string]string{"/proj/a": "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewBrowserState(ctx, "/proj", DefaultTreeOptions(), Screen{}, con); err == nil {
		t.Fatal("expected the cancelled context to stop the read")
	}
}

func TestBrowserSelectionMoves(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/proj/a.txt": "x",
		"/proj/b.txt": "x",
		"/proj/c.txt": "x",
	}, "/proj/dir1", "/proj/dir2")
	b, err := NewBrowserState(context.Background(), "/proj", DefaultTreeOptions(), Screen{Width: 80, Height: 5}, con)
	if err != nil {
		t.Fatalf("NewBrowserState failed: %v", err)
	}
	// lines: 0 root, 1 dir1, 2 dir2, 3 a.txt, 4 b.txt, 5 c.txt

	b.MoveSelection(1, true)
	if b.SelectedPath() != "/proj/dir1" {
		t.Fatalf("after one down: %q", b.SelectedPath())
	}
	b.MoveSelection(-2, true)
	if b.SelectedPath() != "/proj/c.txt" {
		t.Fatalf("cycling up from line 1 should reach the last line, got %q", b.SelectedPath())
	}
	b.MoveSelection(3, false)
	if b.SelectedLine() != 5 {
		t.Fatalf("moving past the end without cycle should stop, got line %d", b.SelectedLine())
	}
	if b.Scroll() != 3 {
		t.Fatalf("scroll = %d, want 3 with a 3 lines page", b.Scroll())
	}

	b.SelectFirst()
	if !b.IsRootSelected() || b.Scroll() != 0 {
		t.Fatalf("SelectFirst: line %d scroll %d", b.SelectedLine(), b.Scroll())
	}
	b.SelectLast()
	if b.SelectedPath() != "/proj/c.txt" {
		t.Fatalf("SelectLast: %q", b.SelectedPath())
	}

	b.SelectFirst()
	b.PageDown()
	if b.SelectedLine() != 3 {
		t.Fatalf("PageDown: line %d", b.SelectedLine())
	}
	b.PageUp()
	if b.SelectedLine() != 0 {
		t.Fatalf("PageUp: line %d", b.SelectedLine())
	}

	if !b.NextDir(true) || b.SelectedPath() != "/proj/dir1" {
		t.Fatalf("NextDir forward: %q", b.SelectedPath())
	}
	if !b.NextDir(false) || b.SelectedPath() != "/proj/dir2" {
		t.Fatalf("NextDir backward should wrap to dir2, got %q", b.SelectedPath())
	}

	if !b.SelectPath("/proj/b.txt") || b.SelectedLine() != 4 {
		t.Fatalf("SelectPath: line %d", b.SelectedLine())
	}
	if b.SelectPath("/elsewhere") {
		t.Fatal("SelectPath should fail for unlisted paths")
	}
}

func TestBrowserWithOptionsKeepsSelection(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/proj/.hidden": "x",
		"/proj/b.txt":   "x",
	})
	b, err := NewBrowserState(context.Background(), "/proj", DefaultTreeOptions(), Screen{Width: 80, Height: 24}, con)
	if err != nil {
		t.Fatalf("NewBrowserState failed: %v", err)
	}
	b.SelectPath("/proj/b.txt")

	options := b.Options()
	options.ShowHidden = true
	next, err := b.WithOptions(context.Background(), options, con)
	if err != nil {
		t.Fatalf("WithOptions failed: %v", err)
	}
	if next.SelectedPath() != "/proj/b.txt" {
		t.Fatalf("selection lost: %q", next.SelectedPath())
	}
	if len(next.Entries()) != 2 {
		t.Fatalf("expected the hidden file to be listed, got %v", entryNames(next))
	}
}

func TestBrowserOnDisk(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "file.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Symlink(filepath.Join(tmpDir, "sub"), filepath.Join(tmpDir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	b, err := NewBrowserState(context.Background(), tmpDir, DefaultTreeOptions(), Screen{Width: 80, Height: 24}, NewAppContext(nil))
	if err != nil {
		t.Fatalf("NewBrowserState failed: %v", err)
	}
	var link *FileEntry
	for i := range b.Entries() {
		if b.Entries()[i].Name == "link" {
			link = &b.Entries()[i]
		}
	}
	if link == nil || !link.IsSymlink || !link.IsDir {
		t.Fatalf("expected a symlink to a directory, got %+v", link)
	}
}
