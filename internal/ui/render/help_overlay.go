package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	textutil "github.com/kk-code-lab/svgdeck/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var actionDescriptions = map[statepkg.Action]string{
	statepkg.ActionPrevious: "Previous slide",
	statepkg.ActionNext:     "Next slide",
	statepkg.ActionFirst:    "First slide",
	statepkg.ActionLast:     "Last slide",
	statepkg.ActionOverview: "Overview",
}

var actionOrder = []statepkg.Action{
	statepkg.ActionPrevious,
	statepkg.ActionNext,
	statepkg.ActionFirst,
	statepkg.ActionLast,
	statepkg.ActionOverview,
}

// keysFor lists the keys bound to each action, sorted for stable output.
func keysFor(km statepkg.Keymap) map[statepkg.Action][]string {
	out := make(map[statepkg.Action][]string)
	for key, action := range km {
		if action == statepkg.ActionNone {
			continue
		}
		out[action] = append(out[action], key)
	}
	for _, keys := range out {
		sort.Strings(keys)
	}
	return out
}

func buildHelpOverlayLines(frame Frame) []string {
	bound := keysFor(frame.Keymap)
	nav := make([]helpOverlayEntry, 0, len(actionOrder))
	for _, action := range actionOrder {
		keys := bound[action]
		if len(keys) == 0 {
			continue
		}
		nav = append(nav, helpOverlayEntry{keys: strings.Join(keys, ", "), desc: actionDescriptions[action]})
	}

	sections := []helpOverlaySection{
		{title: "Navigation", entries: nav},
		{
			title: "Pointer",
			entries: []helpOverlayEntry{
				{keys: "click", desc: "Go to the slide under the pointer"},
				{keys: "wheel", desc: "Zoom around the pointer"},
			},
		},
		{
			title: "History",
			entries: []helpOverlayEntry{
				{keys: "[ / ]", desc: "Back/forward"},
				{keys: "y", desc: "Copy link to clipboard"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "Ctrl+Z", desc: "Suspend"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 24)
	for i, section := range sections {
		if len(section.entries) == 0 {
			continue
		}
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %s %s", textutil.PadRight(key, 22), desc)
}

func (r *Renderer) drawHelpOverlay(frame Frame, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	if titleWidth := textutil.DisplayWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	maxRow := h - 1
	for _, line := range buildHelpOverlayLines(frame) {
		if row >= maxRow {
			break
		}
		text := textutil.Truncate(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 0 {
		footer := textutil.Truncate("? toggle · Esc/q close", w)
		r.drawTextLine(0, h-1, w, footer, headerStyle)
	}
}
