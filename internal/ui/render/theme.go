package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	CanvasFg      tcell.Color
	SlideFg       tcell.Color
	SlideLabelFg  tcell.Color
	ActiveSlideFg tcell.Color
	ActiveLabelBg tcell.Color
	ActiveLabelFg tcell.Color
	FooterBg      tcell.Color
	FooterFg      tcell.Color
	HintFg        tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorDefault,
		Foreground:    tcell.ColorDefault,
		CanvasFg:      tcell.Color238,
		SlideFg:       tcell.ColorLightSlateGray,
		SlideLabelFg:  tcell.ColorLightSlateGray,
		ActiveSlideFg: tcell.Color33,
		ActiveLabelBg: tcell.Color33,
		ActiveLabelFg: tcell.ColorWhite,
		FooterBg:      tcell.ColorDefault,
		FooterFg:      tcell.ColorDefault,
		HintFg:        tcell.Color244,
	}
}
