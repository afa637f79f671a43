package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawTextLine writes text from startX, attaching combining marks to the
// preceding cell. It returns the column after the last drawn rune.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		if x-startX >= maxWidth {
			break
		}

		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := runewidth.RuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}
