//go:build !windows

package app

import (
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	_ = app.tty.Suspend()
	// Stop only this process: the wrapper shell function which launched
	// rdirverb must keep its job control.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.tty.Resume(); err != nil {
		return false
	}
	app.tty.Sync()
	_ = app.tty.PostEvent(tcell.NewEventInterrupt("resume"))
	app.Resize(app.tty.Size())
	return true
}

// flushPendingInput is only needed by the Windows console.
func flushPendingInput() {}
