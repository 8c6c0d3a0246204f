package state

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	fsutil "github.com/kk-code-lab/rdirverb/internal/fs"
	"github.com/kk-code-lab/rdirverb/internal/search"
)

// BrowserState lists the first level of a directory tree. Line 0 is the
// root itself, lines 1..n are its entries.
type BrowserState struct {
	root     string
	options  TreeOptions
	screen   Screen
	entries  []FileEntry
	selected int
	scroll   int
}

// NewBrowserState reads root and builds a browsing state on it. The read
// stops early when ctx is cancelled.
func NewBrowserState(ctx context.Context, root string, options TreeOptions, screen Screen, con *AppContext) (*BrowserState, error) {
	entries, err := readEntries(ctx, con.FS(), root, options)
	if err != nil {
		return nil, err
	}
	return &BrowserState{
		root:    root,
		options: options,
		screen:  screen,
		entries: entries,
	}, nil
}

func readEntries(ctx context.Context, fsys afero.Fs, dirPath string, options TreeOptions) ([]FileEntry, error) {
	infos, err := afero.ReadDir(fsys, dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}
	var ignore *search.IgnoreRules
	if options.RespectGitIgnore {
		ignore = search.LoadIgnoreRules(fsys, dirPath)
	}

	entries := make([]FileEntry, 0, len(infos))
	scores := make(map[string]int)
	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry := fsutil.NewEntry(fsys, dirPath, info)
		if fsutil.ShouldHideFromListing(entry.FullPath, info.Name()) {
			continue
		}
		if !options.ShowHidden && entry.IsHidden() {
			continue
		}
		if options.OnlyFolders && !entry.IsDir {
			continue
		}
		if ignore.Ignored(entry.FullPath, entry.IsDir) {
			continue
		}
		score, ok := matchPattern(options.Pattern, entry.Name)
		if !ok {
			continue
		}
		scores[entry.FullPath] = score
		entries = append(entries, entry)
	}

	sortEntries(entries, options.Sort)
	if options.Pattern != "" && options.Sort == SortNone {
		// best matches first
		sort.SliceStable(entries, func(i, j int) bool {
			return scores[entries[i].FullPath] > scores[entries[j].FullPath]
		})
	}
	return entries, nil
}

// matchPattern filters names with a glob when the pattern has glob
// characters, with a fuzzy match otherwise.
func matchPattern(pattern, name string) (score int, ok bool) {
	if pattern == "" {
		return 0, true
	}
	if strings.ContainsAny(pattern, "*?[{") {
		matched, err := doublestar.Match(pattern, name)
		return 0, err == nil && matched
	}
	return search.FuzzyMatch(pattern, name)
}

func sortEntries(entries []FileEntry, order Sort) {
	less := func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	}
	switch order {
	case SortDate:
		less = func(i, j int) bool { return entries[i].Modified.After(entries[j].Modified) }
	case SortSize:
		less = func(i, j int) bool { return entries[i].Size > entries[j].Size }
	case SortType, SortTypeDirsFirst, SortTypeDirsLast:
		less = func(i, j int) bool {
			if order != SortType && entries[i].IsDir != entries[j].IsDir {
				return entries[i].IsDir == (order == SortTypeDirsFirst)
			}
			ei, ej := strings.ToLower(filepath.Ext(entries[i].Name)), strings.ToLower(filepath.Ext(entries[j].Name))
			if ei != ej {
				return ei < ej
			}
			return entries[i].Name < entries[j].Name
		}
	case SortNone, SortCount:
		// only the first level is read, counts order like names
	}
	sort.SliceStable(entries, less)
}

func (b *BrowserState) Root() string {
	return b.root
}

func (b *BrowserState) Options() TreeOptions {
	return b.options
}

func (b *BrowserState) Title() string {
	return b.root
}

// Entries returns the listed entries, root excluded.
func (b *BrowserState) Entries() []FileEntry {
	return b.entries
}

// SelectedLine is the index of the selected line, 0 being the root.
func (b *BrowserState) SelectedLine() int {
	return b.selected
}

// Scroll is the index of the first visible entry line.
func (b *BrowserState) Scroll() int {
	return b.scroll
}

func (b *BrowserState) IsRootSelected() bool {
	return b.selected == 0
}

func (b *BrowserState) SelectedPath() string {
	if entry := b.SelectedEntry(); entry != nil {
		return entry.FullPath
	}
	return b.root
}

// SelectedEntry returns the selected entry, nil when the root is selected.
func (b *BrowserState) SelectedEntry() *FileEntry {
	if b.selected <= 0 || b.selected > len(b.entries) {
		return nil
	}
	return &b.entries[b.selected-1]
}

func (b *BrowserState) lineCount() int {
	return len(b.entries) + 1
}

// MoveSelection moves the selection by delta lines. With cycle the
// selection wraps around the ends, otherwise it stops there.
func (b *BrowserState) MoveSelection(delta int, cycle bool) {
	count := b.lineCount()
	next := b.selected + delta
	if cycle {
		next = ((next % count) + count) % count
	} else {
		next = max(0, min(next, count-1))
	}
	b.selectLine(next)
}

// SelectFirst selects the root line.
func (b *BrowserState) SelectFirst() {
	b.selectLine(0)
}

// SelectLast selects the last entry.
func (b *BrowserState) SelectLast() {
	b.selectLine(b.lineCount() - 1)
}

// PageDown scrolls one page down.
func (b *BrowserState) PageDown() {
	b.MoveSelection(b.screen.PageHeight(), false)
}

// PageUp scrolls one page up.
func (b *BrowserState) PageUp() {
	b.MoveSelection(-b.screen.PageHeight(), false)
}

// NextDir selects the next directory entry, wrapping around.
func (b *BrowserState) NextDir(forward bool) bool {
	count := b.lineCount()
	step := 1
	if !forward {
		step = -1
	}
	for i := 1; i < count; i++ {
		line := ((b.selected+step*i)%count + count) % count
		if line > 0 && b.entries[line-1].IsDir {
			b.selectLine(line)
			return true
		}
	}
	return false
}

// SelectPath selects the entry with path, reporting whether it was listed.
func (b *BrowserState) SelectPath(path string) bool {
	clean := filepath.Clean(path)
	if clean == filepath.Clean(b.root) {
		b.selectLine(0)
		return true
	}
	for i, entry := range b.entries {
		if filepath.Clean(entry.FullPath) == clean {
			b.selectLine(i + 1)
			return true
		}
	}
	return false
}

// Resize records new screen dimensions.
func (b *BrowserState) Resize(screen Screen) {
	b.screen = screen
	b.selectLine(b.selected)
}

func (b *BrowserState) selectLine(line int) {
	b.selected = line
	page := b.screen.PageHeight()
	if line < b.scroll {
		b.scroll = line
	} else if line >= b.scroll+page {
		b.scroll = line - page + 1
	}
}

// WithOptions rebuilds the state with new options, keeping the selected
// path when it's still listed.
func (b *BrowserState) WithOptions(ctx context.Context, options TreeOptions, con *AppContext) (*BrowserState, error) {
	next, err := NewBrowserState(ctx, b.root, options, b.screen, con)
	if err != nil {
		return nil, err
	}
	next.SelectPath(b.SelectedPath())
	return next, nil
}

// Refresh reads the directory again.
func (b *BrowserState) Refresh(ctx context.Context, con *AppContext) (*BrowserState, error) {
	return b.WithOptions(ctx, b.options, con)
}
