package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// invisible reports bidi controls, zero-width joiners, soft hyphens, BOMs
// and line/paragraph separators. They are shown as "⟪U+XXXX⟫" so a slide id
// cannot reorder or hide the text around it.
func invisible(r rune) bool {
	return unicode.In(r, unicode.Cf, unicode.Zl, unicode.Zp)
}

func control(r rune) bool {
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}

// SanitizeTerminalText replaces control characters so document-controlled
// text cannot inject terminal escape sequences when rendered.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, func(r rune) bool { return control(r) || invisible(r) }) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case control(r):
			b.WriteByte('?')
		case invisible(r):
			fmt.Fprintf(&b, "⟪U+%04X⟫", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
