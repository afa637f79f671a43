//go:build windows

package app

import "os"

func contSignals() []os.Signal {
	return nil
}

// Windows consoles have no job control; Ctrl+Z keeps the deck on screen.
func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool {
	return false
}
