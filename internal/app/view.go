package app

import (
	"strings"

	"github.com/dustin/go-humanize"

	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
	"github.com/kk-code-lab/rdirverb/internal/textutil"
	renderui "github.com/kk-code-lab/rdirverb/internal/ui/render"
)

const defaultHint = "Type to filter, *:* or *space* to start a verb, *f1* for help"

// View describes the screen for the renderer.
func (app *Application) View() renderui.View {
	line := app.input.Line()
	view := renderui.View{
		Input:         line.Text(),
		InputCursor:   line.Cursor(),
		Status:        app.status.Message,
		StatusIsError: app.status.IsError,
	}
	if view.Status == "" {
		view.Status = defaultHint
	}
	page := app.screen.PageHeight()
	for i, panel := range app.panels {
		pv := panelView(panel.State(), page)
		pv.Active = i == app.active
		pv.Width = panel.width
		view.Panels = append(view.Panels, pv)
	}
	return view
}

func panelView(state statepkg.PanelState, page int) renderui.PanelView {
	switch state := state.(type) {
	case *statepkg.BrowserState:
		return browserView(state)
	case *statepkg.PreviewState:
		if err := state.Err(); err != nil {
			return textView(state.Title(), []string{err.Error()}, 0, page)
		}
		return textView(state.Title(), state.Lines(), state.SelectedLine(), page)
	case *HelpState:
		pv := textView(state.Title(), state.Lines(), 0, page)
		pv.Scroll = state.SelectedLine()
		return pv
	default:
		return renderui.PanelView{Lines: []renderui.Line{{Text: state.Title(), Kind: renderui.LineRoot}}}
	}
}

func browserView(b *statepkg.BrowserState) renderui.PanelView {
	options := b.Options()
	title := b.Root()
	if options.Pattern != "" {
		title += " [" + options.Pattern + "]"
	}
	lines := []renderui.Line{{Text: title, Kind: renderui.LineRoot}}
	for _, entry := range b.Entries() {
		lines = append(lines, renderui.Line{
			Text: entryText(entry, options),
			Kind: entryKind(entry),
		})
	}
	if selected := b.SelectedLine(); selected >= 0 && selected < len(lines) {
		lines[selected].Selected = true
	}
	return renderui.PanelView{Lines: lines, Scroll: b.Scroll()}
}

func entryKind(entry statepkg.FileEntry) renderui.LineKind {
	switch {
	case entry.IsHidden():
		return renderui.LineHidden
	case entry.IsSymlink:
		return renderui.LineLink
	case entry.IsDir:
		return renderui.LineDir
	default:
		return renderui.LineFile
	}
}

// entryText is the entry name preceded by the columns the options enable.
func entryText(entry statepkg.FileEntry, options statepkg.TreeOptions) string {
	var cols []string
	if options.ShowPermissions {
		cols = append(cols, entry.Mode.String())
	}
	if options.ShowSizes {
		size := ""
		if !entry.IsDir {
			size = humanize.Bytes(uint64(max(entry.Size, 0)))
		}
		cols = append(cols, textutil.PadLeft(size, 7))
	}
	if options.ShowDates {
		cols = append(cols, entry.Modified.Format("2006/01/02 15:04"))
	}
	return strings.Join(append(cols, entry.DisplayName()), " ")
}

// textView shows lines under a title. selected is 1-based, 0 for no
// selection; the title takes line 0 so indices match.
func textView(title string, text []string, selected, page int) renderui.PanelView {
	lines := make([]renderui.Line, 0, len(text)+1)
	lines = append(lines, renderui.Line{Text: title, Kind: renderui.LineRoot})
	for _, line := range text {
		lines = append(lines, renderui.Line{Text: line})
	}
	pv := renderui.PanelView{Lines: lines}
	if selected > 0 && selected < len(lines) {
		lines[selected].Selected = true
		pv.Scroll = max(0, selected-page+1)
	}
	return pv
}
