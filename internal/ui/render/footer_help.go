package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
)

// buildFooterHelpText returns the footer hint string with leading/trailing padding.
func buildFooterHelpText(frame Frame) string {
	parts := buildFooterHelpSegments(frame)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles the hints for the current frame.
func buildFooterHelpSegments(frame Frame) []string {
	bound := keysFor(frame.Keymap)
	segments := []string{}

	prev, next := shortKey(bound[statepkg.ActionPrevious]), shortKey(bound[statepkg.ActionNext])
	switch {
	case prev != "" && next != "":
		segments = append(segments, prev+"/"+next+": slides")
	case next != "":
		segments = append(segments, next+": next")
	case prev != "":
		segments = append(segments, prev+": previous")
	}
	if !frame.Position.IsOverview() {
		if k := shortKey(bound[statepkg.ActionOverview]); k != "" {
			segments = append(segments, k+": overview")
		}
	}

	switch {
	case frame.CanGoBack && frame.CanGoForward:
		segments = append(segments, "[]: history")
	case frame.CanGoBack:
		segments = append(segments, "[: back")
	case frame.CanGoForward:
		segments = append(segments, "]: forward")
	}

	segments = append(segments, "?: help", "q: quit")
	return segments
}

var shortKeyNames = map[string]string{
	"ArrowLeft":  "←",
	"ArrowRight": "→",
	"ArrowUp":    "↑",
	"ArrowDown":  "↓",
	"Escape":     "Esc",
	"PageUp":     "PgUp",
	"PageDown":   "PgDn",
	"Enter":      "↵",
}

// shortKey picks a compact label for the first key in keys, preferring
// arrows.
func shortKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	best := keys[0]
	for _, k := range keys {
		if strings.HasPrefix(k, "Arrow") {
			best = k
			break
		}
	}
	if s, ok := shortKeyNames[best]; ok {
		return s
	}
	return best
}
