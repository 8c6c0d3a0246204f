package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"

	"github.com/kk-code-lab/rdirverb/internal/command"
	"github.com/kk-code-lab/rdirverb/internal/logging"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
	inputui "github.com/kk-code-lab/rdirverb/internal/ui/input"
	renderui "github.com/kk-code-lab/rdirverb/internal/ui/render"
	"github.com/kk-code-lab/rdirverb/internal/verb"
)

// DefaultScreen is the geometry used when there's no terminal.
var DefaultScreen = statepkg.Screen{Width: 80, Height: 24}

// Options configure an Application.
type Options struct {
	// Root is the directory to browse, the working directory when empty.
	Root string
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Store defaults to the built-in verbs.
	Store       *verb.Store
	TreeOptions statepkg.TreeOptions
	SyntaxTheme string
	// Clipboard may be nil, clipboard verbs then fail.
	Clipboard inputui.Clipboard
	Screen    statepkg.Screen
}

// Status is the message line under the panels.
type Status struct {
	Message string
	IsError bool
}

// Application holds the panels and applies the results of the verbs the
// user triggers.
type Application struct {
	ctx         context.Context
	con         *statepkg.AppContext
	store       *verb.Store
	input       *inputui.Handler
	clipboard   inputui.Clipboard
	panels      []*Panel
	active      int
	initialRoot string
	screen      statepkg.Screen
	status      Status

	shouldQuit bool
	output     string
	verbOutput []string

	// set by the interactive loop only
	tty      tcell.Screen
	renderer *renderui.Renderer
}

// New builds an application with one browser panel on opts.Root.
func New(ctx context.Context, opts Options) (*Application, error) {
	root := opts.Root
	if root == "" {
		cwd, err := GetCwd()
		if err != nil {
			return nil, err
		}
		root = cwd
	}
	store := opts.Store
	if store == nil {
		store = verb.NewStore()
	}
	screen := opts.Screen
	if screen.Width <= 0 || screen.Height <= 0 {
		screen = DefaultScreen
	}

	con := statepkg.NewAppContext(opts.Fs)
	con.SyntaxTheme = opts.SyntaxTheme

	resolver := con.PathResolver()
	root = resolver.ClosestDir(resolver.CanonicalPath(root))
	browser, err := statepkg.NewBrowserState(ctx, root, opts.TreeOptions, screen, con)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", root, err)
	}
	logging.Info().Str("root", root).Msg("application started")

	return &Application{
		ctx:         ctx,
		con:         con,
		store:       store,
		input:       inputui.NewHandler(store, opts.Clipboard),
		clipboard:   opts.Clipboard,
		panels:      []*Panel{newPanel(browser, command.NoPurpose())},
		initialRoot: root,
		screen:      screen,
	}, nil
}

// Panels returns the panels, left to right.
func (app *Application) Panels() []*Panel {
	return app.panels
}

// ActivePanel returns the panel with the focus.
func (app *Application) ActivePanel() *Panel {
	return app.panels[app.active]
}

// ActiveIndex is the index of the active panel.
func (app *Application) ActiveIndex() int {
	return app.active
}

// Status returns the status line.
func (app *Application) Status() Status {
	return app.status
}

// Input returns the input line.
func (app *Application) Input() *inputui.Line {
	return app.input.Line()
}

// Context is the environment shared by the panels.
func (app *Application) Context() *statepkg.AppContext {
	return app.con
}

// ShouldQuit reports whether a verb asked to quit.
func (app *Application) ShouldQuit() bool {
	return app.shouldQuit
}

// Output is what the application prints when quitting, e.g. the path of
// print_path.
func (app *Application) Output() string {
	return app.output
}

// VerbOutput returns the lines written by write_output.
func (app *Application) VerbOutput() []string {
	return app.verbOutput
}

// CurrentRoot is the root of the active panel. The shell integration cds
// there on exit.
func (app *Application) CurrentRoot() string {
	return app.ActivePanel().State().Root()
}

// AppState snapshots the values verbs may refer to.
func (app *Application) AppState() statepkg.AppState {
	snapshot := statepkg.AppState{
		Root:        app.CurrentRoot(),
		InitialRoot: app.initialRoot,
	}
	if other := app.otherPanel(); other != nil {
		snapshot.OtherPanelPath = other.State().SelectedPath()
	}
	return snapshot
}

// Selection returns what's selected in the active panel.
func (app *Application) Selection() verb.SelInfo {
	state := app.ActivePanel().State()
	path := state.SelectedPath()
	if path == "" {
		return verb.NoSelection()
	}
	sel := verb.Selection{Path: path}
	if preview, ok := state.(*statepkg.PreviewState); ok {
		sel.Line = preview.SelectedLine()
	}
	return verb.OneSelection(sel)
}

func (app *Application) otherPanel() *Panel {
	if len(app.panels) < 2 {
		return nil
	}
	if app.active == 0 {
		return app.panels[1]
	}
	return app.panels[app.active-1]
}

func (app *Application) setStatus(message string) {
	app.status = Status{Message: message}
}

func (app *Application) setError(message string) {
	logging.Debug().Str("error", message).Msg("displayed error")
	app.status = Status{Message: message, IsError: true}
}

// Resize records new terminal dimensions.
func (app *Application) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	app.screen = statepkg.Screen{Width: width, Height: height}
	for _, panel := range app.panels {
		for _, state := range panel.states {
			if browser, ok := state.(*statepkg.BrowserState); ok {
				browser.Resize(app.screen)
			}
		}
	}
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
