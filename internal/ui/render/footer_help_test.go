package render

import (
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
)

func TestFooterHelpDefaultBindings(t *testing.T) {
	text := buildFooterHelpText(Frame{Position: statepkg.SlideAt(0), Keymap: statepkg.DefaultKeymap()})
	for _, want := range []string{"←/→: slides", "Esc: overview", "?: help", "q: quit"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in footer, got %q", want, text)
		}
	}
	if strings.Contains(text, "history") {
		t.Fatalf("history hint shown without history, got %q", text)
	}
}

func TestFooterHelpHidesOverviewHintInOverview(t *testing.T) {
	text := buildFooterHelpText(Frame{Position: statepkg.Overview(), Keymap: statepkg.DefaultKeymap()})
	if strings.Contains(text, "overview") {
		t.Fatalf("overview hint should be hidden in overview, got %q", text)
	}
}

func TestFooterHelpHistoryHints(t *testing.T) {
	cases := []struct {
		back, forward bool
		want          string
	}{
		{true, true, "[]: history"},
		{true, false, "[: back"},
		{false, true, "]: forward"},
	}
	for _, tc := range cases {
		text := buildFooterHelpText(Frame{Keymap: statepkg.DefaultKeymap(), CanGoBack: tc.back, CanGoForward: tc.forward})
		if !strings.Contains(text, tc.want) {
			t.Errorf("expected %q in footer, got %q", tc.want, text)
		}
	}
}

func TestShortKeyPrefersArrows(t *testing.T) {
	if got := shortKey([]string{"Space", "ArrowRight"}); got != "→" {
		t.Fatalf("expected arrow, got %q", got)
	}
	if got := shortKey([]string{"j"}); got != "j" {
		t.Fatalf("expected j, got %q", got)
	}
	if got := shortKey(nil); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
