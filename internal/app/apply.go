package app

import (
	"slices"

	"github.com/kk-code-lab/rdirverb/internal/command"
	"github.com/kk-code-lab/rdirverb/internal/logging"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
	"github.com/kk-code-lab/rdirverb/internal/verb"
)

// apply performs the transition described by a command result.
func (app *Application) apply(result command.Result) {
	switch r := result.(type) {
	case command.NoOp:
	case command.ReplaceCurrentPanel:
		app.ActivePanel().push(r.State)
		app.clearFilterInput()
	case command.NewPanel:
		app.openPanel(r)
	case command.DisplayError:
		app.setError(r.Message)
	case command.DisplayStatus:
		app.setStatus(r.Message)
	case command.PopState:
		app.popState()
	case command.ClosePanel:
		if !app.closePanel(app.active, r.Validate) {
			app.setError("the last panel can't be closed")
		}
	case command.Quit:
		app.shouldQuit = true
		app.output = r.Output
	default:
		logging.Warn().Msgf("unhandled result %T", result)
	}
	app.syncPreview()
}

// clearFilterInput empties the input when it holds the pattern of a tree
// the user left.
func (app *Application) clearFilterInput() {
	line := app.input.Line()
	if text := line.Text(); text != "" && !isVerbInput(text) {
		line.Clear()
	}
}

// openPanel inserts a panel next to the active one. Past maxPanels, the
// panel which isn't active is replaced. A preview panel is reused and
// doesn't take the focus.
func (app *Application) openPanel(r command.NewPanel) {
	panel := newPanel(r.State, r.Purpose)
	preview := r.Purpose.IsPreview()
	if preview {
		if idx := app.previewPanelIndex(); idx >= 0 {
			panel.width = app.panels[idx].width
			app.panels[idx] = panel
			return
		}
	}
	if !r.Purpose.IsArgEdition() {
		app.clearFilterInput()
	}

	current := app.panels[app.active]
	var at int
	if len(app.panels) >= maxPanels {
		if r.Direction == command.DirectionLeft {
			app.panels = []*Panel{panel, current}
			app.active, at = 1, 0
		} else {
			app.panels = []*Panel{current, panel}
			app.active, at = 0, 1
		}
	} else {
		at = app.active + 1
		if r.Direction == command.DirectionLeft {
			at = app.active
		}
		app.panels = slices.Insert(app.panels, at, panel)
		if at <= app.active {
			app.active++
		}
	}
	if !preview {
		app.active = at
	}
	logging.Debug().
		Str("purpose", r.Purpose.String()).
		Str("direction", r.Direction.String()).
		Int("panels", len(app.panels)).
		Msg("panel opened")
}

// popState goes back to the previous state of the active panel, closes the
// panel when it has none, and quits when it's the last one.
func (app *Application) popState() {
	if app.ActivePanel().pop() {
		return
	}
	if app.closePanel(app.active, false) {
		return
	}
	app.shouldQuit = true
}

// closePanel removes the panel at idx. Validating a panel opened to edit
// an argument puts its selection in the pending invocation.
func (app *Application) closePanel(idx int, validate bool) bool {
	if len(app.panels) < 2 || idx < 0 || idx >= len(app.panels) {
		return false
	}
	panel := app.panels[idx]
	if validate && panel.purpose.IsArgEdition() {
		app.fillPendingArg(panel.State().SelectedPath())
	}
	app.panels = slices.Delete(app.panels, idx, idx+1)
	if app.active >= idx && app.active > 0 {
		app.active--
	}
	return true
}

// fillPendingArg replaces the arguments of the typed verb with path.
func (app *Application) fillPendingArg(path string) {
	pending := app.pendingInvocation()
	if pending == nil {
		return
	}
	inv := verb.VerbInvocation{Name: pending.Name, Bang: pending.Bang, Args: &path}
	app.input.Line().SetText(":" + inv.String())
}

// syncPreview makes the preview panel follow the selection of the active
// panel.
func (app *Application) syncPreview() {
	idx := app.previewPanelIndex()
	if idx < 0 || idx == app.active {
		return
	}
	path := app.ActivePanel().State().SelectedPath()
	preview := app.panels[idx].State()
	if path == "" || path == preview.Root() {
		return
	}
	app.panels[idx].setState(statepkg.NewPreviewState(path, preview.Options(), app.con))
}
