package app

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

var commandBuilder = exec.Command

func detectClipboard() ([]string, bool) {
	return detectClipboardInternal(runtime.GOOS, exec.LookPath)
}

func detectClipboardInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	trySingle := func(candidates ...string) ([]string, bool) {
		for _, candidate := range candidates {
			if candidate == "" {
				continue
			}
			if path, err := lookPath(candidate); err == nil && path != "" {
				return []string{path}, true
			}
		}
		return nil, false
	}

	if strings.EqualFold(goos, "windows") {
		if cmd, ok := trySingle("clip.exe", "clip"); ok {
			return cmd, true
		}
		for _, ps := range []string{"powershell", "powershell.exe", "pwsh"} {
			if path, err := lookPath(ps); err == nil && path != "" {
				return []string{path, "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}, true
			}
		}
	}

	if path, err := lookPath("pbcopy"); err == nil && path != "" {
		return []string{path}, true
	}
	if path, err := lookPath("wl-copy"); err == nil && path != "" {
		return []string{path}, true
	}
	// xclip and xsel read stdin only when told which selection to own.
	if path, err := lookPath("xclip"); err == nil && path != "" {
		return []string{path, "-selection", "clipboard"}, true
	}
	if path, err := lookPath("xsel"); err == nil && path != "" {
		return []string{path, "--clipboard", "--input"}, true
	}

	return nil, false
}

// clipboardText is the deep link to the current position.
func (app *Application) clipboardText() string {
	text := "#" + app.location.Read()
	if app.title != "" {
		text = app.title + text
	}
	return text
}

// handleClipboard copies the deep link to the system clipboard.
func (app *Application) handleClipboard() bool {
	if !app.clipboardAvail || len(app.clipboardCmd) == 0 {
		app.lastError = fmt.Errorf("no clipboard command found")
		return true
	}
	cmd := commandBuilder(app.clipboardCmd[0], app.clipboardCmd[1:]...)
	cmd.Stdin = strings.NewReader(app.clipboardText())
	if err := cmd.Run(); err != nil {
		app.lastError = fmt.Errorf("%s: %w", app.clipboardCmd[0], err)
		app.logger.Warnw("clipboard copy failed", "command", app.clipboardCmd[0], "error", err)
		return true
	}
	app.lastError = nil
	app.lastYankTime = time.Now()
	return true
}
