package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// DisplayWidth reports the number of terminal columns text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Truncate shortens text to at most width columns, ending it with an
// ellipsis when anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}
	if width == 1 {
		return Ellipsis
	}

	available := width - runewidth.StringWidth(Ellipsis)
	var b strings.Builder
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if used+w > available {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// PadRight fills text with spaces up to width columns.
func PadRight(text string, width int) string {
	if gap := width - DisplayWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}
