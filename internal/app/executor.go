package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/kk-code-lab/rdirverb/internal/command"
	fsutil "github.com/kk-code-lab/rdirverb/internal/fs"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
	renderui "github.com/kk-code-lab/rdirverb/internal/ui/render"
	"github.com/kk-code-lab/rdirverb/internal/verb"
)

// ErrNotAvailable is matched by the errors of internals this application
// doesn't implement, e.g. the staging area or git status.
var ErrNotAvailable = errors.New("not available")

// minPanelWidth bounds panel resizing.
const minPanelWidth = renderui.MinPanelWidth

// lineMover is implemented by the panel states whose lines can be selected.
type lineMover interface {
	MoveSelection(delta int)
}

// internalArgs extracts the arguments of exec's internal. They come from
// the bound argument, whose placeholders are filled from the typed input
// and the selection, or from the typed input itself for a built-in verb.
func (app *Application) internalArgs(v *verb.Verb, exec verb.InternalExecution, inv *verb.VerbInvocation, typed bool) (map[string]string, error) {
	parser, err := verb.NewInvocationParser(exec.Internal.InvocationPattern())
	if err != nil {
		return nil, err
	}
	var typedArgs *string
	if typed && inv != nil {
		typedArgs = inv.Args
	}
	switch {
	case exec.Arg != nil:
		builder := verb.NewBuilderWithInvocation(v.Parser, app.Selection(), app.AppState(), typedArgs).
			WithResolver(app.con.PathResolver())
		arg := builder.String(*exec.Arg)
		if arg == "" {
			return parser.Parse(nil)
		}
		return parser.Parse(&arg)
	case v.Parser != nil && v.Parser.Pattern() == parser.Pattern():
		return parser.Parse(typedArgs)
	default:
		return parser.Parse(nil)
	}
}

func intArg(args map[string]string, name string, fallback int) int {
	value, ok := args[name]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// executeInternal runs every internal but focus.
func (app *Application) executeInternal(v *verb.Verb, exec verb.InternalExecution, inv *verb.VerbInvocation, typed bool) command.Result {
	internal := exec.Internal
	if internal.IsInputRelated() {
		if err := app.input.ApplyInternal(internal); err != nil {
			return command.DisplayError{Message: err.Error()}
		}
		app.onInputChanged()
		return command.NoOp{}
	}
	args, err := app.internalArgs(v, exec, inv, typed)
	if err != nil {
		return command.Errorf("%s: %v", internal, err)
	}

	switch internal {
	case verb.InternalBack, verb.InternalEscape:
		return app.back()
	case verb.InternalQuit:
		return command.Quit{}

	case verb.InternalLineDown:
		return app.moveSelection(intArg(args, "count", 1), true)
	case verb.InternalLineUp:
		return app.moveSelection(-intArg(args, "count", 1), true)
	case verb.InternalLineDownNoCycle:
		return app.moveSelection(intArg(args, "count", 1), false)
	case verb.InternalLineUpNoCycle:
		return app.moveSelection(-intArg(args, "count", 1), false)
	case verb.InternalSelectFirst:
		return app.withBrowser(func(b *statepkg.BrowserState) command.Result { b.SelectFirst(); return command.NoOp{} })
	case verb.InternalSelectLast:
		return app.withBrowser(func(b *statepkg.BrowserState) command.Result { b.SelectLast(); return command.NoOp{} })
	case verb.InternalPageDown:
		return app.withBrowser(func(b *statepkg.BrowserState) command.Result { b.PageDown(); return command.NoOp{} })
	case verb.InternalPageUp:
		return app.withBrowser(func(b *statepkg.BrowserState) command.Result { b.PageUp(); return command.NoOp{} })
	case verb.InternalNextDir:
		return app.withBrowser(func(b *statepkg.BrowserState) command.Result { b.NextDir(true); return command.NoOp{} })
	case verb.InternalPreviousDir:
		return app.withBrowser(func(b *statepkg.BrowserState) command.Result { b.NextDir(false); return command.NoOp{} })
	case verb.InternalSelect:
		return app.selectPath(args["path"], false)
	case verb.InternalShow:
		return app.selectPath(args["path"], true)

	case verb.InternalParent, verb.InternalRootUp, verb.InternalUpTree:
		return app.focusParent()
	case verb.InternalRootDown:
		return app.focusSelectedDir()
	case verb.InternalOpenStayFilter:
		return app.openStayFilter()
	case verb.InternalRefresh:
		return app.refresh()

	case verb.InternalToggleHidden:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.ShowHidden = !o.ShowHidden; return nil })
	case verb.InternalToggleDates:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.ShowDates = !o.ShowDates; return nil })
	case verb.InternalToggleSizes:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.ShowSizes = !o.ShowSizes; return nil })
	case verb.InternalTogglePerm:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.ShowPermissions = !o.ShowPermissions; return nil })
	case verb.InternalToggleFiles:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.OnlyFolders = !o.OnlyFolders; return nil })
	case verb.InternalToggleCounts:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.ShowCounts = !o.ShowCounts; return nil })
	case verb.InternalToggleTrimRoot:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.TrimRoot = !o.TrimRoot; return nil })
	case verb.InternalToggleGitIgnore, verb.InternalToggleIgnore:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.RespectGitIgnore = !o.RespectGitIgnore; return nil })
	case verb.InternalToggleRootFs:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.ShowRootFs = !o.ShowRootFs; return nil })
	case verb.InternalToggleDeviceId:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.ShowDeviceID = !o.ShowDeviceID; return nil })
	case verb.InternalApplyFlags:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { return o.ApplyFlags(args["flags"]) })
	case verb.InternalSetMaxDepth:
		depth := intArg(args, "depth", 0)
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.MaxDepth = depth; return nil })
	case verb.InternalUnsetMaxDepth:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.MaxDepth = 0; return nil })

	case verb.InternalNoSort:
		return app.changeOptions(func(o *statepkg.TreeOptions) error { o.Sort = statepkg.SortNone; return nil })
	case verb.InternalSortByCount:
		return app.toggleSort(statepkg.SortCount)
	case verb.InternalSortByDate:
		return app.toggleSort(statepkg.SortDate)
	case verb.InternalSortBySize:
		return app.toggleSort(statepkg.SortSize)
	case verb.InternalSortByType:
		return app.toggleSort(statepkg.SortType)
	case verb.InternalSortByTypeDirsFirst:
		return app.toggleSort(statepkg.SortTypeDirsFirst)
	case verb.InternalSortByTypeDirsLast:
		return app.toggleSort(statepkg.SortTypeDirsLast)

	case verb.InternalOpenPreview:
		return app.openPreview()
	case verb.InternalClosePreview:
		if idx := app.previewPanelIndex(); idx >= 0 {
			app.closePanel(idx, false)
		}
		return command.NoOp{}
	case verb.InternalTogglePreview:
		if idx := app.previewPanelIndex(); idx >= 0 {
			app.closePanel(idx, false)
			return command.NoOp{}
		}
		return app.openPreview()

	case verb.InternalClosePanelOk:
		return command.ClosePanel{Validate: true}
	case verb.InternalClosePanelCancel:
		return command.ClosePanel{Validate: false}
	case verb.InternalPanelLeft:
		return app.moveToPanel(-1, true)
	case verb.InternalPanelLeftNoOpen:
		return app.moveToPanel(-1, false)
	case verb.InternalPanelRight:
		return app.moveToPanel(1, true)
	case verb.InternalPanelRightNoOpen:
		return app.moveToPanel(1, false)
	case verb.InternalSetPanelWidth:
		return app.setPanelWidth(intArg(args, "idx", -1), intArg(args, "width", 0))
	case verb.InternalMovePanelDivider:
		return app.movePanelDivider(intArg(args, "idx", -1), intArg(args, "dx", 0))
	case verb.InternalDefaultLayout:
		for _, panel := range app.panels {
			panel.width = 0
		}
		return command.NoOp{}

	case verb.InternalPrintPath:
		return command.Quit{Output: app.ActivePanel().State().SelectedPath()}
	case verb.InternalPrintRelativePath:
		return command.Quit{Output: app.relativePath(app.ActivePanel().State().SelectedPath())}
	case verb.InternalPrintTree:
		return app.printTree()
	case verb.InternalCopyPath:
		return app.copyToClipboard(normalizeClipboardPath(app.ActivePanel().State().SelectedPath(), runtime.GOOS), "path")
	case verb.InternalCopyLine:
		return app.copyLine()

	case verb.InternalHelp:
		return app.openHelp()
	case verb.InternalWriteOutput:
		app.verbOutput = append(app.verbOutput, args["line"])
		return command.NoOp{}
	case verb.InternalClearOutput:
		app.verbOutput = nil
		return command.NoOp{}
	case verb.InternalSetSyntaxTheme:
		app.con.SyntaxTheme = args["theme"]
		return command.DisplayStatus{Message: fmt.Sprintf("syntax theme: %s", args["theme"])}
	case verb.InternalModeCommand:
		app.input.Line().SetText(":")
		return command.NoOp{}
	case verb.InternalModeInput:
		return command.NoOp{}
	}

	return command.DisplayError{Message: fmt.Errorf("%s is %w", internal, ErrNotAvailable).Error()}
}

// back clears the input, then the filtering pattern, then goes back to the
// previous state.
func (app *Application) back() command.Result {
	line := app.input.Line()
	if text := line.Text(); text != "" {
		line.Clear()
		if !isVerbInput(text) {
			return app.applyPattern("")
		}
		app.status = Status{}
		return command.NoOp{}
	}
	if b, ok := app.ActivePanel().Browser(); ok && b.Options().Pattern != "" {
		return app.applyPattern("")
	}
	return command.PopState{}
}

func (app *Application) withBrowser(f func(*statepkg.BrowserState) command.Result) command.Result {
	b, ok := app.ActivePanel().Browser()
	if !ok {
		return command.Errorf("there's no tree in this panel")
	}
	return f(b)
}

func (app *Application) moveSelection(delta int, cycle bool) command.Result {
	switch state := app.ActivePanel().State().(type) {
	case *statepkg.BrowserState:
		state.MoveSelection(delta, cycle)
	case lineMover:
		state.MoveSelection(delta)
	}
	return command.NoOp{}
}

// applyPattern filters the active tree, keeping the selection when it's
// still listed.
func (app *Application) applyPattern(pattern string) command.Result {
	b, ok := app.ActivePanel().Browser()
	if !ok || b.Options().Pattern == pattern {
		return command.NoOp{}
	}
	return app.changeOptions(func(o *statepkg.TreeOptions) error {
		o.Pattern = pattern
		return nil
	})
}

// changeOptions rebuilds the active tree with modified options.
func (app *Application) changeOptions(change func(*statepkg.TreeOptions) error) command.Result {
	return app.withBrowser(func(b *statepkg.BrowserState) command.Result {
		options := b.Options()
		if err := change(&options); err != nil {
			return command.DisplayError{Message: err.Error()}
		}
		next, err := b.WithOptions(app.ctx, options, app.con)
		if err != nil {
			return command.DisplayError{Message: err.Error()}
		}
		app.ActivePanel().setState(next)
		return command.NoOp{}
	})
}

// toggleSort sorts by order, or stops sorting when already sorted so.
func (app *Application) toggleSort(order statepkg.Sort) command.Result {
	return app.changeOptions(func(o *statepkg.TreeOptions) error {
		if o.Sort == order {
			o.Sort = statepkg.SortNone
		} else {
			o.Sort = order
		}
		return nil
	})
}

func (app *Application) focusParent() command.Result {
	state := app.ActivePanel().State()
	root := state.Root()
	parent := filepath.Dir(root)
	if parent == root {
		return command.Errorf("%s has no parent", root)
	}
	options := state.Options()
	options.Pattern = ""
	b, err := statepkg.NewBrowserState(app.ctx, parent, options, app.screen, app.con)
	if err != nil {
		return command.DisplayError{Message: err.Error()}
	}
	b.SelectPath(root)
	return command.ReplaceCurrentPanel{State: b}
}

func (app *Application) focusSelectedDir() command.Result {
	return app.withBrowser(func(b *statepkg.BrowserState) command.Result {
		entry := b.SelectedEntry()
		if entry == nil || !entry.IsDir {
			return command.NoOp{}
		}
		options := b.Options()
		options.Pattern = ""
		return command.FromBrowserState(statepkg.NewBrowserState(app.ctx, entry.FullPath, options, app.screen, app.con))
	})
}

// openStayFilter focuses the selection with the current pattern, which
// stays in the input.
func (app *Application) openStayFilter() command.Result {
	state := app.ActivePanel().State()
	result := verb.NewStateOnPath(state.SelectedPath(), app.screen, state.Options(), app.con)
	if r, ok := result.(command.ReplaceCurrentPanel); ok {
		app.ActivePanel().push(r.State)
		return command.NoOp{}
	}
	return result
}

// selectPath selects a path of the tree. With show, a path which isn't
// listed is shown by focusing its parent.
func (app *Application) selectPath(path string, show bool) command.Result {
	if path == "" {
		return command.NoOp{}
	}
	return app.withBrowser(func(b *statepkg.BrowserState) command.Result {
		target := app.con.PathResolver().PathFrom(b.Root(), fsutil.AnchorUnspecified, path)
		if b.SelectPath(target) {
			return command.NoOp{}
		}
		if !show {
			return command.Errorf("%s isn't listed", target)
		}
		options := b.Options()
		options.Pattern = ""
		parent := app.con.PathResolver().ClosestDir(filepath.Dir(target))
		next, err := statepkg.NewBrowserState(app.ctx, parent, options, app.screen, app.con)
		if err != nil {
			return command.DisplayError{Message: err.Error()}
		}
		next.SelectPath(target)
		return command.ReplaceCurrentPanel{State: next}
	})
}

// refresh reads again the states displayed by every panel.
func (app *Application) refresh() command.Result {
	for _, panel := range app.panels {
		switch state := panel.State().(type) {
		case *statepkg.BrowserState:
			next, err := state.Refresh(app.ctx, app.con)
			if err != nil {
				return command.DisplayError{Message: err.Error()}
			}
			panel.setState(next)
		case *statepkg.PreviewState:
			panel.setState(statepkg.NewPreviewState(state.Root(), state.Options(), app.con))
		}
	}
	return command.NoOp{}
}

func (app *Application) previewPanelIndex() int {
	for i, panel := range app.panels {
		if panel.purpose.IsPreview() {
			return i
		}
	}
	return -1
}

// openPreview previews the selection in the preview panel, opening it when
// there's none.
func (app *Application) openPreview() command.Result {
	state := app.ActivePanel().State()
	if app.ActivePanel().purpose.IsPreview() {
		return command.NoOp{}
	}
	path := state.SelectedPath()
	if idx := app.previewPanelIndex(); idx >= 0 {
		app.panels[idx].setState(statepkg.NewPreviewState(path, state.Options(), app.con))
		return command.NoOp{}
	}
	return verb.NewPanelOnPath(path, app.screen, state.Options(), command.PreviewPurpose(), app.con, command.DirectionRight)
}

// moveToPanel gives the focus to the panel in direction step. With open,
// a missing panel is created: the selection on the right, the parent of
// the root on the left.
func (app *Application) moveToPanel(step int, open bool) command.Result {
	target := app.active + step
	if target >= 0 && target < len(app.panels) {
		app.active = target
		return command.NoOp{}
	}
	if !open {
		return command.NoOp{}
	}
	state := app.ActivePanel().State()
	if step > 0 {
		path := state.SelectedPath()
		if info, err := app.con.FS().Stat(path); err == nil && !info.IsDir() {
			return app.openPreview()
		}
		return verb.NewPanelOnPath(path, app.screen, state.Options(), command.NoPurpose(), app.con, command.DirectionRight)
	}
	root := state.Root()
	parent := filepath.Dir(root)
	if parent == root {
		return command.NoOp{}
	}
	return verb.NewPanelOnPath(parent, app.screen, state.Options(), command.NoPurpose(), app.con, command.DirectionLeft)
}

// panelWidths returns the widths of the panels as laid out on screen.
func (app *Application) panelWidths() []int {
	requested := make([]int, len(app.panels))
	for i, panel := range app.panels {
		requested[i] = panel.width
	}
	return renderui.PanelWidths(app.screen.Width, requested)
}

func (app *Application) setPanelWidth(idx, width int) command.Result {
	if idx < 0 || idx >= len(app.panels) {
		return command.Errorf("no panel %d", idx)
	}
	app.panels[idx].width = max(width, minPanelWidth)
	return command.NoOp{}
}

// movePanelDivider moves the divider at the right of panel idx by dx cells.
func (app *Application) movePanelDivider(idx, dx int) command.Result {
	if idx < 0 || idx+1 >= len(app.panels) {
		return command.Errorf("no divider %d", idx)
	}
	widths := app.panelWidths()
	left, right := widths[idx]+dx, widths[idx+1]-dx
	if left < minPanelWidth || right < minPanelWidth {
		return command.NoOp{}
	}
	app.panels[idx].width = left
	app.panels[idx+1].width = right
	return command.NoOp{}
}

func (app *Application) relativePath(path string) string {
	rel, err := filepath.Rel(app.initialRoot, path)
	if err != nil {
		return path
	}
	return rel
}

// printTree quits printing the listed lines of the active tree.
func (app *Application) printTree() command.Result {
	return app.withBrowser(func(b *statepkg.BrowserState) command.Result {
		lines := []string{b.Root()}
		for _, entry := range b.Entries() {
			lines = append(lines, entry.DisplayName())
		}
		return command.Quit{Output: strings.Join(lines, "\n")}
	})
}

func (app *Application) copyToClipboard(text, what string) command.Result {
	if app.clipboard == nil {
		return command.Errorf("clipboard is %v", ErrNotAvailable)
	}
	if err := app.clipboard.WriteAll(text); err != nil {
		return command.Errorf("cannot copy the %s: %v", what, err)
	}
	return command.DisplayStatus{Message: fmt.Sprintf("%s copied to the clipboard", what)}
}

// copyLine copies the selected line of a preview, the selected path
// otherwise.
func (app *Application) copyLine() command.Result {
	if preview, ok := app.ActivePanel().State().(*statepkg.PreviewState); ok && preview.SelectedText() != "" {
		return app.copyToClipboard(preview.SelectedText(), "line")
	}
	return app.copyToClipboard(app.ActivePanel().State().SelectedPath(), "path")
}

func (app *Application) openHelp() command.Result {
	for i, panel := range app.panels {
		if _, ok := panel.State().(*HelpState); ok {
			app.active = i
			return command.NoOp{}
		}
	}
	return command.NewPanel{
		State:     newHelpState(app.store, app.CurrentRoot()),
		Purpose:   command.NoPurpose(),
		Direction: command.DirectionRight,
	}
}
