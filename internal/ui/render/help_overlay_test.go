package render

import (
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
)

func TestBuildHelpOverlayLinesIncludesSections(t *testing.T) {
	lines := buildHelpOverlayLines(Frame{Keymap: statepkg.DefaultKeymap()})

	assertContains := func(substr string) {
		t.Helper()
		for _, line := range lines {
			if strings.Contains(line, substr) {
				return
			}
		}
		t.Fatalf("expected lines to contain %q, got %v", substr, lines)
	}

	assertContains("Navigation")
	assertContains("History")
	assertContains("Exit")
	assertContains("ArrowRight, Space")
	assertContains("Overview")
}

func TestBuildHelpOverlayLinesFollowsKeymap(t *testing.T) {
	km := statepkg.Keymap{"j": statepkg.ActionNext, "x": statepkg.ActionNone}
	joined := strings.Join(buildHelpOverlayLines(Frame{Keymap: km}), "\n")

	if !strings.Contains(joined, "j") || !strings.Contains(joined, "Next slide") {
		t.Fatalf("expected custom binding in help, got %s", joined)
	}
	if strings.Contains(joined, "Previous slide") {
		t.Fatalf("unbound action should not be listed, got %s", joined)
	}
}
