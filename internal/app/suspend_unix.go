//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

// contSignals are the signals delivered when the shell resumes a stopped
// presentation.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

func (app *Application) suspendToShell() {
	app.logger.Debugw("suspending", "fragment", app.location.Read())
	_ = app.screen.Suspend()
	// SIGTSTP to ourselves only, so the launching shell's job control sees
	// a normal stopped job.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

// resumeAfterStop reclaims the terminal after suspendToShell returns and
// again on SIGCONT.
func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.EnableMouse()
	app.lastButtons = 0
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	return true
}
