package app

import (
	"strings"

	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
	"github.com/kk-code-lab/rdirverb/internal/textutil"
	"github.com/kk-code-lab/rdirverb/internal/verb"
)

// HelpState lists the verbs with their keys. It keeps the root of the
// panel it was opened from so that verbs still have a path to work on.
type HelpState struct {
	root     string
	lines    []string
	selected int
}

func newHelpState(store *verb.Store, root string) *HelpState {
	h := &HelpState{root: root}
	h.lines = append(h.lines,
		"Type a verb after a space or a colon, then hit enter.",
		"Other text filters the tree. Esc goes back.",
		"",
		helpRow("invocation", "keys", "description"),
	)
	for _, v := range store.Verbs() {
		if v.Name == "" && len(v.Keys) == 0 {
			continue
		}
		usage := v.Usage()
		if usage == "" {
			usage = ":" + v.Execution.String()
		}
		h.lines = append(h.lines, helpRow(usage, strings.Join(v.Keys, " "), v.Description))
	}
	return h
}

func helpRow(invocation, keys, description string) string {
	return textutil.PadRight(invocation, 28) + " " + textutil.PadRight(keys, 16) + " " + description
}

func (h *HelpState) Root() string {
	return h.root
}

func (h *HelpState) SelectedPath() string {
	return h.root
}

func (h *HelpState) IsRootSelected() bool {
	return true
}

func (h *HelpState) Options() statepkg.TreeOptions {
	return statepkg.DefaultTreeOptions()
}

func (h *HelpState) Title() string {
	return "help"
}

// Lines returns the text of the help.
func (h *HelpState) Lines() []string {
	return h.lines
}

// SelectedLine is the 1-based line scrolled to, 0 at the top.
func (h *HelpState) SelectedLine() int {
	return h.selected
}

// MoveSelection scrolls the help.
func (h *HelpState) MoveSelection(delta int) {
	h.selected = max(0, min(h.selected+delta, len(h.lines)))
}
