package verb

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/kk-code-lab/rdirverb/internal/command"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
)

// lockedFs refuses to open one directory.
type lockedFs struct {
	afero.Fs
	locked string
}

func (f lockedFs) Open(name string) (afero.File, error) {
	if name == f.locked {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

func newFocusContext(t *testing.T, dirs ...string) *statepkg.AppContext {
	t.Helper()
	r := memResolver(t, dirs, []string{"/home/user/docs/notes.txt"})
	con := statepkg.NewAppContext(r.Fs)
	con.Resolver = r
	return con
}

func focusRequest(con *statepkg.AppContext, selected string, rootSelected bool) FocusRequest {
	return FocusRequest{
		Exec:           NewInternalExecution(InternalFocus),
		Trigger:        KeyTriggered{},
		SelectedPath:   selected,
		IsRootSelected: rootSelected,
		TreeOptions:    statepkg.DefaultTreeOptions(),
		App:            statepkg.AppState{Root: "/home/user", InitialRoot: "/home/user"},
		Screen:         statepkg.Screen{Width: 80, Height: 24},
		Con:            con,
	}
}

type focusOutcome struct {
	Kind      string
	Root      string
	Purpose   command.PanelPurpose
	Direction command.Direction
}

func describe(t *testing.T, result command.Result) focusOutcome {
	t.Helper()
	switch r := result.(type) {
	case command.ReplaceCurrentPanel:
		return focusOutcome{Kind: "replace", Root: r.State.Root()}
	case command.NewPanel:
		return focusOutcome{Kind: "new-panel", Root: r.State.Root(), Purpose: r.Purpose, Direction: r.Direction}
	case command.DisplayError:
		t.Fatalf("unexpected error result: %s", r.Message)
	default:
		t.Fatalf("unexpected result %T", result)
	}
	return focusOutcome{}
}

func TestFocusOnInternal(t *testing.T) {
	con := newFocusContext(t, "/home/user/docs", "/home/user/sibling", "/project/src", "/start")

	tests := []struct {
		name   string
		mutate func(*FocusRequest)
		want   focusOutcome
	}{
		{
			name: "selected directory replaces the panel",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/home/user/docs"
			},
			want: focusOutcome{Kind: "replace", Root: "/home/user/docs"},
		},
		{
			name: "selected file focuses its directory",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/home/user/docs/notes.txt"
			},
			want: focusOutcome{Kind: "replace", Root: "/home/user/docs"},
		},
		{
			name: "selected root goes up",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/project"
				r.IsRootSelected = true
			},
			want: focusOutcome{Kind: "replace", Root: "/"},
		},
		{
			name: "filesystem root stays",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/"
				r.IsRootSelected = true
			},
			want: focusOutcome{Kind: "replace", Root: "/"},
		},
		{
			name: "bang on root opens it in a new panel",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/project"
				r.IsRootSelected = true
				r.Exec.Bang = true
			},
			want: focusOutcome{Kind: "new-panel", Root: "/project", Purpose: command.NoPurpose(), Direction: command.DirectionRight},
		},
		{
			name: "pending input opens an argument edition panel",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/home/user/docs"
				r.Invocation = &VerbInvocation{Name: "cp", Args: strPtr("../sibling")}
			},
			want: focusOutcome{
				Kind:      "new-panel",
				Root:      "/home/user/sibling",
				Purpose:   command.ArgEditionPurpose(command.SelectionAny),
				Direction: command.DirectionRight,
			},
		},
		{
			name: "bound argument is resolved",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/project/src"
				r.App.InitialRoot = "/start"
				r.Exec.Arg = strPtr("{initial-root}")
			},
			want: focusOutcome{Kind: "replace", Root: "/start"},
		},
		{
			name: "bound relative argument with bang",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/home/user/docs"
				r.Exec.Arg = strPtr("../sibling")
				r.Exec.Bang = true
			},
			want: focusOutcome{Kind: "new-panel", Root: "/home/user/sibling", Purpose: command.NoPurpose(), Direction: command.DirectionRight},
		},
		{
			name: "missing directory falls back to its closest ancestor",
			mutate: func(r *FocusRequest) {
				r.SelectedPath = "/project/src"
				r.Exec.Arg = strPtr("gone/deeper")
			},
			want: focusOutcome{Kind: "replace", Root: "/project/src"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := focusRequest(con, "", false)
			tt.mutate(&req)
			got := describe(t, FocusOnInternal(req))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFocusOnInternalFromInput(t *testing.T) {
	con := newFocusContext(t, "/home/user/docs", "/work/proj/target", "/home/user/dev")

	gotar, err := NewVerb("gotar {path}", InternalExecution{Internal: InternalFocus, Arg: strPtr("{path}/target")})
	if err != nil {
		t.Fatalf("NewVerb failed: %v", err)
	}
	focus := NewBuiltinVerb(InternalFocus)
	home, err := NewVerb("home", InternalExecution{Internal: InternalFocus, Arg: strPtr("~")})
	if err != nil {
		t.Fatalf("NewVerb failed: %v", err)
	}

	tests := []struct {
		name     string
		verb     *Verb
		selected string
		input    string
		want     focusOutcome
	}{
		{"pattern fed by the input", gotar, "/work", "gotar proj", focusOutcome{Kind: "replace", Root: "/work/proj/target"}},
		{"typed path", focus, "/home/user/docs", "focus ~/dev", focusOutcome{Kind: "replace", Root: "/home/user/dev"}},
		{"typed path with bang", focus, "/home/user/docs", "focus! ..", focusOutcome{Kind: "new-panel", Root: "/home/user", Purpose: command.NoPurpose(), Direction: command.DirectionRight}},
		{"hardcoded path", home, "/work", "home", focusOutcome{Kind: "replace", Root: "/home/user"}},
		{"bare alias", focus, "/home/user/docs", "focus", focusOutcome{Kind: "replace", Root: "/home/user/docs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := ParseVerbInvocation(tt.input)
			req := focusRequest(con, tt.selected, false)
			req.Exec = tt.verb.Execution
			req.Invocation = &inv
			req.Trigger = InputTriggered{Verb: tt.verb}
			got := describe(t, FocusOnInternal(req))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFocusUnreadableDirectoryIsDisplayed(t *testing.T) {
	con := newFocusContext(t, "/home/user/locked")
	con.Fs = lockedFs{Fs: con.Fs, locked: "/home/user/locked"}
	con.Resolver.Fs = con.Fs

	req := focusRequest(con, "/home/user/locked", false)
	result := FocusOnInternal(req)
	display, ok := result.(command.DisplayError)
	if !ok {
		t.Fatalf("expected DisplayError, got %T", result)
	}
	if !strings.Contains(display.Message, "/home/user/locked") {
		t.Fatalf("error should name the directory, got %q", display.Message)
	}

	req.Exec.Bang = true
	if _, ok := FocusOnInternal(req).(command.DisplayError); !ok {
		t.Fatal("expected DisplayError for a new panel too")
	}
}

func TestNewPanelOnPathPreview(t *testing.T) {
	con := newFocusContext(t, "/home/user/docs")
	result := NewPanelOnPath("/home/user/docs/notes.txt", statepkg.Screen{Width: 80, Height: 24},
		statepkg.DefaultTreeOptions(), command.PreviewPurpose(), con, command.DirectionRight)

	panel, ok := result.(command.NewPanel)
	if !ok {
		t.Fatalf("expected NewPanel, got %T", result)
	}
	preview, ok := panel.State.(*statepkg.PreviewState)
	if !ok {
		t.Fatalf("expected a preview state, got %T", panel.State)
	}
	if preview.Root() != "/home/user/docs/notes.txt" {
		t.Fatalf("preview root = %q", preview.Root())
	}
	if diff := cmp.Diff([]string{"content"}, preview.Lines()); diff != "" {
		t.Fatalf("preview lines mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPanelOnPathClearsPattern(t *testing.T) {
	con := newFocusContext(t, "/home/user/docs")
	options := statepkg.DefaultTreeOptions()
	options.Pattern = "zzz"
	result := NewPanelOnPath("/home/user", statepkg.Screen{Width: 80, Height: 24}, options, command.NoPurpose(), con, command.DirectionLeft)
	panel, ok := result.(command.NewPanel)
	if !ok {
		t.Fatalf("expected NewPanel, got %T", result)
	}
	if panel.State.Options().Pattern != "" {
		t.Fatalf("new panel kept pattern %q", panel.State.Options().Pattern)
	}
	if panel.Direction != command.DirectionLeft {
		t.Fatalf("direction = %v", panel.Direction)
	}
	browser := panel.State.(*statepkg.BrowserState)
	if len(browser.Entries()) != 1 || browser.Entries()[0].Name != "docs" {
		t.Fatalf("unexpected entries %+v", browser.Entries())
	}
}

func TestFocusStatus(t *testing.T) {
	con := newFocusContext(t, "/home/user/docs", "/home/user/sibling")
	focus := NewBuiltinVerb(InternalFocus)
	got := FocusStatus(focus, focus.Execution, SelFromPath("/home/user/docs"), ParseVerbInvocation("focus ../sibling"),
		statepkg.AppState{Root: "/home/user"}, con)
	if got != "Hit *enter* to focus `/home/user/sibling`" {
		t.Fatalf("FocusStatus() = %q", got)
	}
}

func TestFocusUnexpectedTrigger(t *testing.T) {
	con := newFocusContext(t)
	req := focusRequest(con, "/home/user", false)
	req.Trigger = nil
	if _, ok := FocusOnInternal(req).(command.DisplayError); !ok {
		t.Fatal("expected an error for a missing trigger")
	}
}
