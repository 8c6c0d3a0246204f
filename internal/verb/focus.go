package verb

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kk-code-lab/rdirverb/internal/command"
	fsutil "github.com/kk-code-lab/rdirverb/internal/fs"
	"github.com/kk-code-lab/rdirverb/internal/logging"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
)

// FocusRequest gathers what the focus internal needs to compute where to
// go. It's a snapshot: dispatching doesn't change it.
type FocusRequest struct {
	Exec InternalExecution
	// Invocation is the typed input, nil when there's none.
	Invocation     *VerbInvocation
	Trigger        TriggerType
	SelectedPath   string
	IsRootSelected bool
	TreeOptions    statepkg.TreeOptions
	App            statepkg.AppState
	Screen         statepkg.Screen
	Con            *statepkg.AppContext
}

func (r FocusRequest) bang() bool {
	if r.Invocation != nil {
		return r.Invocation.Bang
	}
	return r.Exec.Bang
}

func (r FocusRequest) inputArg() *string {
	if r.Invocation == nil {
		return nil
	}
	return r.Invocation.Args
}

// OnPath focuses path, in the current panel or, with inNewPanel, in a new
// panel on the right.
func OnPath(path string, screen statepkg.Screen, options statepkg.TreeOptions, inNewPanel bool, con *statepkg.AppContext) command.Result {
	if inNewPanel {
		return NewPanelOnPath(path, screen, options, command.NoPurpose(), con, command.DirectionRight)
	}
	return NewStateOnPath(path, screen, options, con)
}

// NewStateOnPath replaces the current panel's state with a tree on the
// closest directory of path.
func NewStateOnPath(path string, screen statepkg.Screen, options statepkg.TreeOptions, con *statepkg.AppContext) command.Result {
	path = con.PathResolver().ClosestDir(path)
	return command.FromBrowserState(statepkg.NewBrowserState(context.Background(), path, options, screen, con))
}

// NewPanelOnPath opens a panel on path. The path is canonicalized first so
// that links are resolved; when it can't be, the panel state deals with the
// original path.
func NewPanelOnPath(path string, screen statepkg.Screen, options statepkg.TreeOptions, purpose command.PanelPurpose, con *statepkg.AppContext, direction command.Direction) command.Result {
	resolver := con.PathResolver()
	path = resolver.CanonicalPath(path)
	if purpose.IsPreview() {
		return command.NewPanel{
			State:     statepkg.NewPreviewState(path, options, con),
			Purpose:   purpose,
			Direction: direction,
		}
	}
	path = resolver.ClosestDir(path)
	// a new browser doesn't inherit the filtering pattern
	options.Pattern = ""
	state, err := statepkg.NewBrowserState(context.Background(), path, options, screen, con)
	if err != nil {
		return command.DisplayError{Message: err.Error()}
	}
	return command.NewPanel{
		State:     state,
		Purpose:   purpose,
		Direction: direction,
	}
}

// pathFromInput computes where to go when the focus comes from a verb
// matching the input. The verb may hardcode the path, use a pattern fed by
// the input, or be a plain alias of focus.
func pathFromInput(v *Verb, exec InternalExecution, basePath string, inputArg *string, app statepkg.AppState, con *statepkg.AppContext) string {
	resolver := con.PathResolver()
	var parser *InvocationParser
	if v != nil {
		parser = v.Parser
	}
	switch {
	case inputArg != nil && exec.Arg != nil:
		// e.g. invocation "gotar {path}" with execution ":focus {path}/target"
		builder := NewBuilderWithInvocation(parser, SelFromPath(basePath), app, inputArg).WithResolver(resolver)
		return builder.Path(*exec.Arg)
	case inputArg != nil:
		return resolver.PathFrom(basePath, fsutil.AnchorUnspecified, *inputArg)
	case exec.Arg != nil:
		builder := NewBuilderWithInvocation(parser, SelFromPath(basePath), app, nil).WithResolver(resolver)
		return builder.Path(*exec.Arg)
	default:
		return basePath
	}
}

// FocusStatus is the hint shown while the user types a focus verb.
func FocusStatus(v *Verb, exec InternalExecution, sel SelInfo, inv VerbInvocation, app statepkg.AppState, con *statepkg.AppContext) string {
	basePath, ok := sel.OnePath()
	if !ok {
		basePath = app.Root
	}
	path := pathFromInput(v, exec, basePath, inv.Args, app, con)
	return fmt.Sprintf("Hit *enter* to focus `%s`", path)
}

// FocusOnInternal runs the focus internal, possibly with a bang or an
// argument, and tells the application which panel to show.
func FocusOnInternal(req FocusRequest) command.Result {
	con := req.Con
	bang := req.bang()
	inputArg := req.inputArg()

	switch trigger := req.Trigger.(type) {
	case InputTriggered:
		path := pathFromInput(trigger.Verb, req.Exec, req.SelectedPath, inputArg, req.App, con)
		logging.Debug().Str("path", path).Bool("bang", bang).Msg("focus from input")
		return OnPath(path, req.Screen, req.TreeOptions, bang, con)

	case KeyTriggered:
		if req.Exec.Arg != nil {
			// the execution hardcodes the path, e.g. `:focus {initial-root}`,
			// possibly relative to the selection
			builder := NewBuilderWithoutInvocation(SelFromPath(req.SelectedPath), req.App).
				WithResolver(con.PathResolver())
			path := builder.Path(*req.Exec.Arg)
			logging.Debug().Str("path", path).Bool("bang", bang).Msg("focus on bound argument")
			return OnPath(path, req.Screen, req.TreeOptions, bang, con)
		}
		if inputArg != nil {
			// pending input: the user browses to pick the argument of
			// another command, whose panel must be kept
			path := con.PathResolver().PathFrom(req.SelectedPath, fsutil.AnchorUnspecified, *inputArg)
			logging.Debug().Str("path", path).Msg("focus for argument edition")
			purpose := command.ArgEditionPurpose(command.SelectionAny)
			return NewPanelOnPath(path, req.Screen, req.TreeOptions, purpose, con, command.DirectionRight)
		}
		path := req.SelectedPath
		if !bang && req.IsRootSelected {
			// focusing the root would do nothing, go up instead
			if parent := parentDir(path); parent != "" {
				path = parent
			}
		}
		logging.Debug().Str("path", path).Bool("bang", bang).Msg("focus on selection")
		return OnPath(path, req.Screen, req.TreeOptions, bang, con)

	default:
		return command.Errorf("unexpected trigger %T", trigger)
	}
}

// parentDir returns the parent of path, or "" for a filesystem root.
func parentDir(path string) string {
	parent := filepath.Dir(path)
	if parent == path {
		return ""
	}
	return parent
}
