//go:build windows

package app

import (
	"os"

	"github.com/kk-code-lab/rdirverb/internal/logging"
)

// On Windows there is no SIGTSTP/SIGCONT; treat suspend as no-op.
func (app *Application) suspendToShell() {
}

func contSignals() []os.Signal {
	return nil
}

func (app *Application) resumeAfterStop() bool {
	return false
}

// flushPendingInput drops the keys typed before the screen opens, so that
// the shell integration's Enter doesn't trigger a verb.
func flushPendingInput() {
	if err := flushConsoleInput(); err != nil {
		logging.Debug().Err(err).Msg("cannot flush console input")
	}
}
