package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	inputui "github.com/kk-code-lab/svgdeck/internal/ui/input"
)

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	data, _ := io.ReadAll(os.Stdin)
	if out := os.Getenv("HELPER_PROCESS_OUTPUT"); out != "" {
		_ = os.WriteFile(out, data, 0o600)
	}
	if os.Getenv("HELPER_PROCESS_EXIT") == "1" {
		os.Exit(1)
	}
	os.Exit(0)
}

func helperCommand(t *testing.T, env ...string) {
	t.Helper()
	original := commandBuilder
	commandBuilder = func(name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = append(append(os.Environ(), "GO_WANT_HELPER_PROCESS=1"), env...)
		return cmd
	}
	t.Cleanup(func() { commandBuilder = original })
}

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestDetectClipboardInternal(t *testing.T) {
	cases := []struct {
		goos      string
		available []string
		want      []string
	}{
		{"darwin", []string{"pbcopy"}, []string{"/usr/bin/pbcopy"}},
		{"linux", []string{"wl-copy", "xclip"}, []string{"/usr/bin/wl-copy"}},
		{"linux", []string{"xclip"}, []string{"/usr/bin/xclip", "-selection", "clipboard"}},
		{"linux", []string{"xsel"}, []string{"/usr/bin/xsel", "--clipboard", "--input"}},
		{"windows", []string{"clip.exe", "pwsh"}, []string{"/usr/bin/clip.exe"}},
		{"windows", []string{"pwsh"}, []string{"/usr/bin/pwsh", "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard"}},
		{"linux", nil, nil},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.goos, strings.Join(tc.available, ",")), func(t *testing.T) {
			got, ok := detectClipboardInternal(tc.goos, fakeLookPath(tc.available...))
			if ok != (tc.want != nil) {
				t.Fatalf("expected ok=%v, got %v", tc.want != nil, ok)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("command mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYankCopiesDeepLink(t *testing.T) {
	out := t.TempDir() + "/clipboard"
	helperCommand(t, "HELPER_PROCESS_OUTPUT="+out)

	app := newTestApp(t, nil, "")
	app.clipboardCmd, app.clipboardAvail = []string{"pbcopy"}, true

	if !app.handleAction(inputui.YankAction{}) {
		t.Fatal("expected a redraw after yank")
	}
	if app.lastError != nil {
		t.Fatalf("unexpected error: %v", app.lastError)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading helper output: %v", err)
	}
	if got := string(data); got != "deck.svg#slide_a" {
		t.Fatalf("expected deep link, got %q", got)
	}
	if app.frame().Notice != "copied" {
		t.Fatalf("expected copied notice, got %q", app.frame().Notice)
	}
	if !app.shouldAnimate() {
		t.Fatal("expected the notice to keep the loop ticking")
	}
}

func TestYankFailureIsReported(t *testing.T) {
	helperCommand(t, "HELPER_PROCESS_EXIT=1")

	app := newTestApp(t, nil, "")
	app.clipboardCmd, app.clipboardAvail = []string{"xclip", "-selection", "clipboard"}, true

	app.handleAction(inputui.YankAction{})
	if app.lastError == nil || !strings.Contains(app.lastError.Error(), "xclip") {
		t.Fatalf("expected an xclip error, got %v", app.lastError)
	}
	if !strings.Contains(app.frame().Notice, "xclip") {
		t.Fatalf("expected the error in the status line, got %q", app.frame().Notice)
	}

	// The next navigation clears the error.
	app.handleAction(inputui.RouteAction{Event: nil})
	if app.lastError != nil {
		t.Fatal("expected navigation to clear the error")
	}
}

func TestYankWithoutClipboard(t *testing.T) {
	app := newTestApp(t, nil, "")
	app.clipboardAvail = false

	app.handleAction(inputui.YankAction{})
	if app.lastError == nil {
		t.Fatal("expected an error without a clipboard command")
	}
}
