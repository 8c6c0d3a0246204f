package app

import (
	"context"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rdirverb/internal/logging"
	statepkg "github.com/kk-code-lab/rdirverb/internal/state"
	inputui "github.com/kk-code-lab/rdirverb/internal/ui/input"
	renderui "github.com/kk-code-lab/rdirverb/internal/ui/render"
)

// RunTerminal opens the terminal, runs the startup commands, then handles
// the user's keys until a verb quits. The returned application holds the
// output to print.
func RunTerminal(ctx context.Context, opts Options, commands string) (*Application, error) {
	flushPendingInput()
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	w, h := screen.Size()
	opts.Screen = statepkg.Screen{Width: w, Height: h}

	app, err := New(ctx, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	app.tty = screen
	app.renderer = renderui.NewRenderer(screen)

	if commands != "" {
		if err := app.RunCommands(commands); err != nil {
			app.setError(err.Error())
		}
	}
	app.run()
	return app, nil
}

func (app *Application) run() {
	defer app.tty.Fini()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.tty.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		app.render()
		select {
		case <-app.ctx.Done():
			logging.Info().Err(app.ctx.Err()).Msg("interrupted")
			return
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			app.handleTerminalEvent(ev)
		case <-sigContCh:
			app.resumeAfterStop()
		}
	}
}

// handleTerminalEvent converts a tcell event and applies it.
func (app *Application) handleTerminalEvent(ev tcell.Event) {
	event, err := app.input.ProcessEvent(ev)
	if _, ok := event.(inputui.Suspend); ok {
		app.suspendToShell()
		app.resumeAfterStop()
		return
	}
	app.HandleEvent(event)
	if err != nil {
		app.setError(err.Error())
	}
}

func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	app.renderer.Render(app.View())
}
