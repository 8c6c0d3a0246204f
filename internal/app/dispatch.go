package app

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/rdirverb/internal/command"
	"github.com/kk-code-lab/rdirverb/internal/logging"
	inputui "github.com/kk-code-lab/rdirverb/internal/ui/input"
	"github.com/kk-code-lab/rdirverb/internal/verb"
)

// isVerbInput tells a verb invocation from a filtering pattern: verbs are
// typed after a colon or a space.
func isVerbInput(text string) bool {
	return strings.HasPrefix(text, ":") || strings.HasPrefix(text, " ")
}

// pendingInvocation is the verb being typed, if any.
func (app *Application) pendingInvocation() *verb.VerbInvocation {
	text := app.input.Line().Text()
	if !isVerbInput(text) {
		return nil
	}
	inv := verb.ParseVerbInvocation(text)
	if inv.IsEmpty() {
		return nil
	}
	return &inv
}

// HandleEvent applies an input event. Suspension is left to the caller.
func (app *Application) HandleEvent(ev inputui.Event) {
	switch ev := ev.(type) {
	case inputui.KeyPressed:
		app.OnKey(ev.Key, ev.Verb)
	case inputui.InputChanged:
		app.onInputChanged()
	case inputui.Resized:
		app.Resize(ev.Width, ev.Height)
	}
}

// OnKey runs the verb bound to a key. Enter executes the verb typed in the
// input instead, when there's one.
func (app *Application) OnKey(key string, v *verb.Verb) {
	pending := app.pendingInvocation()
	if key == "enter" && pending != nil {
		app.ExecuteInput()
		return
	}
	if app.input.Line().Text() == "" {
		v = app.store.ForEmptyInput(v)
	}
	if v == nil {
		logging.Debug().Str("key", key).Msg("unbound key")
		return
	}
	app.status = Status{}
	app.apply(app.executeVerb(v, pending, verb.KeyTriggered{}))
}

// ExecuteInput runs the verb typed in the input line.
func (app *Application) ExecuteInput() {
	app.status = Status{}
	app.apply(app.executeInvocation(app.input.Line().Text()))
}

// executeInvocation finds the verb of typed text and runs it.
func (app *Application) executeInvocation(text string) command.Result {
	inv := verb.ParseVerbInvocation(text)
	if inv.IsEmpty() {
		return command.NoOp{}
	}
	v, err := app.findVerb(inv)
	if err != nil {
		return command.DisplayError{Message: err.Error()}
	}
	app.input.Line().Clear()
	return app.executeVerb(v, &inv, verb.InputTriggered{Verb: v})
}

// findVerb looks up the verb of inv and checks its arguments.
func (app *Application) findVerb(inv verb.VerbInvocation) (*verb.Verb, error) {
	search := app.store.Search(inv.Name)
	switch search.Kind {
	case verb.SearchPerfect, verb.SearchUnique:
	case verb.SearchAmbiguous:
		return nil, fmt.Errorf("ambiguous verb %q: %s", inv.Name, strings.Join(search.Completions, ", "))
	default:
		return nil, fmt.Errorf("no verb matches %q", inv.Name)
	}
	v := search.Verb
	if err := v.CheckArgs(inv); err != nil {
		logging.Debug().Err(err).Str("verb", v.Name).Msg("arguments rejected")
		return nil, fmt.Errorf("wrong arguments for %s, usage: %s", v.Name, v.Usage())
	}
	return v, nil
}

// executeVerb dispatches a verb. inv is the typed invocation: the verb's
// own when input triggered, the pending one of another verb when key
// triggered.
func (app *Application) executeVerb(v *verb.Verb, inv *verb.VerbInvocation, trigger verb.TriggerType) command.Result {
	exec := v.Execution
	_, typed := trigger.(verb.InputTriggered)
	arg := exec.Arg
	if typed && inv != nil {
		exec.Bang = exec.Bang || inv.Bang
		if arg == nil {
			arg = inv.Args
		}
	}
	logging.Debug().
		Str("verb", v.String()).
		Str("execution", exec.String()).
		Bool("typed", typed).
		Msg("executing verb")

	state := app.ActivePanel().State()
	if exec.Internal.NeedsSelection(arg) && state.SelectedPath() == "" {
		return command.Errorf("%s needs a selection", exec.Internal)
	}

	if exec.Internal == verb.InternalFocus {
		options := state.Options()
		options.Pattern = ""
		return verb.FocusOnInternal(verb.FocusRequest{
			Exec:           exec,
			Invocation:     inv,
			Trigger:        trigger,
			SelectedPath:   state.SelectedPath(),
			IsRootSelected: state.IsRootSelected(),
			TreeOptions:    options,
			App:            app.AppState(),
			Screen:         app.screen,
			Con:            app.con,
		})
	}
	return app.executeInternal(v, exec, inv, typed)
}

// onInputChanged filters the tree with the typed pattern, or hints at what
// enter would do with the typed verb.
func (app *Application) onInputChanged() {
	text := app.input.Line().Text()
	if !isVerbInput(text) {
		app.status = Status{}
		app.apply(app.applyPattern(text))
		return
	}
	app.setStatus(app.verbHint(text))
}

func (app *Application) verbHint(text string) string {
	inv := verb.ParseVerbInvocation(text)
	if inv.IsEmpty() {
		return "Type a verb then *enter* to execute it"
	}
	v, err := app.findVerb(inv)
	if err != nil {
		return err.Error()
	}
	if v.Internal() == verb.InternalFocus {
		return verb.FocusStatus(v, v.Execution, app.Selection(), inv, app.AppState(), app.con)
	}
	return fmt.Sprintf("Hit *enter* to %s", strings.ToLower(v.Description))
}

// RunCommands executes `;` separated commands as if typed then validated
// with enter. Text which isn't a verb filters the tree. It stops at the
// first error or when a command quits.
func (app *Application) RunCommands(commands string) error {
	for _, cmd := range strings.Split(commands, ";") {
		if strings.TrimSpace(cmd) == "" {
			continue
		}
		logging.Debug().Str("command", cmd).Msg("running command")
		app.input.Line().SetText(cmd)
		app.onInputChanged()
		if isVerbInput(cmd) {
			app.ExecuteInput()
		}
		if app.status.IsError {
			return fmt.Errorf("%s: %s", strings.TrimSpace(cmd), app.status.Message)
		}
		if app.shouldQuit {
			return nil
		}
	}
	return nil
}
