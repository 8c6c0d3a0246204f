package state

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/rdirverb/internal/fs"
	"github.com/kk-code-lab/rdirverb/internal/textutil"
)

// previewByteLimit controls how much of a file we read for previews.
const previewByteLimit int64 = 64 * 1024

// PreviewState shows the head of a file. Read failures are displayed in
// the panel rather than returned.
type PreviewState struct {
	path     string
	options  TreeOptions
	lines    []string
	binary   bool
	err      error
	selected int
}

// NewPreviewState reads the head of path. A directory previews its
// entry names.
func NewPreviewState(path string, options TreeOptions, con *AppContext) *PreviewState {
	p := &PreviewState{path: path, options: options}
	fsys := con.FS()

	info, err := fsys.Stat(path)
	if err != nil {
		p.err = err
		return p
	}
	if info.IsDir() {
		entries, err := readEntries(context.Background(), fsys, path, options)
		if err != nil {
			p.err = err
			return p
		}
		for _, entry := range entries {
			p.lines = append(p.lines, entry.DisplayName())
		}
		return p
	}

	content, err := fsutil.ReadHead(fsys, path, previewByteLimit)
	if err != nil {
		p.err = fmt.Errorf("cannot read file: %w", err)
		return p
	}
	text, ok := fsutil.DecodeText(path, content)
	if !ok {
		p.binary = true
		p.lines = []string{fmt.Sprintf("binary file, %d bytes", info.Size())}
		return p
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		p.lines = append(p.lines, textutil.ExpandTabs(line, textutil.DefaultTabWidth))
	}
	return p
}

func (p *PreviewState) Root() string {
	return p.path
}

func (p *PreviewState) SelectedPath() string {
	return p.path
}

func (p *PreviewState) IsRootSelected() bool {
	return false
}

func (p *PreviewState) Options() TreeOptions {
	return p.options
}

func (p *PreviewState) Title() string {
	return filepath.Base(p.path)
}

// Lines returns the previewed text lines.
func (p *PreviewState) Lines() []string {
	return p.lines
}

// IsBinary reports a file which isn't displayed as text.
func (p *PreviewState) IsBinary() bool {
	return p.binary
}

// Err is the error met while reading the file, if any.
func (p *PreviewState) Err() error {
	return p.err
}

// SelectedLine is the 1-based selected line, 0 when none.
func (p *PreviewState) SelectedLine() int {
	return p.selected
}

// MoveSelection moves the selected line by delta, clamped to the text.
func (p *PreviewState) MoveSelection(delta int) {
	if len(p.lines) == 0 {
		return
	}
	p.selected = max(1, min(p.selected+delta, len(p.lines)))
}

// SelectedText returns the text of the selected line.
func (p *PreviewState) SelectedText() string {
	if p.selected < 1 || p.selected > len(p.lines) {
		return ""
	}
	return p.lines[p.selected-1]
}
