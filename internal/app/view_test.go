package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	renderui "github.com/kk-code-lab/rdirverb/internal/ui/render"
)

func lineTexts(pv renderui.PanelView) []string {
	texts := make([]string, len(pv.Lines))
	for i, line := range pv.Lines {
		texts[i] = line.Text
	}
	return texts
}

func TestViewOfBrowser(t *testing.T) {
	app := newTestApp(t)
	runCommands(t, app, ":line_down 2")

	view := app.View()
	require.Len(t, view.Panels, 1)
	pv := view.Panels[0]
	require.True(t, pv.Active)
	require.Equal(t, []string{"/work/proj", "docs/", "src/", "README.md"}, lineTexts(pv))
	require.Equal(t, renderui.LineRoot, pv.Lines[0].Kind)
	require.Equal(t, renderui.LineDir, pv.Lines[1].Kind)
	require.Equal(t, renderui.LineFile, pv.Lines[3].Kind)
	require.True(t, pv.Lines[2].Selected)
	require.Equal(t, defaultHint, view.Status)
}

func TestViewShowsPatternAndInput(t *testing.T) {
	app := newTestApp(t)
	runCommands(t, app, "read")

	view := app.View()
	require.Equal(t, "/work/proj [read]", view.Panels[0].Lines[0].Text)
	require.Equal(t, "read", view.Input)
	require.Equal(t, 4, view.InputCursor)
}

func TestViewOfSizes(t *testing.T) {
	app := newTestApp(t)
	runCommands(t, app, ":toggle_sizes")

	lines := lineTexts(app.View().Panels[0])
	require.Equal(t, "        docs/", lines[1])
	require.Equal(t, "   12 B README.md", lines[3])
}

func TestViewOfPreviewAndHelp(t *testing.T) {
	app := newTestApp(t)
	runCommands(t, app, ":select_last;:open_preview;:panel_right;:line_down")

	view := app.View()
	require.Len(t, view.Panels, 2)
	require.False(t, view.Panels[0].Active)
	preview := view.Panels[1]
	require.True(t, preview.Active)
	require.Equal(t, []string{"README.md", "hello", "world"}, lineTexts(preview))
	require.True(t, preview.Lines[1].Selected)

	runCommands(t, app, ":panel_left;:help")
	help := app.View().Panels[1]
	require.Equal(t, "help", help.Lines[0].Text)
}

func TestViewOfError(t *testing.T) {
	app := newTestApp(t)
	require.Error(t, app.RunCommands(":nope"))

	view := app.View()
	require.True(t, view.StatusIsError)
	require.Equal(t, `no verb matches "nope"`, view.Status)
}
