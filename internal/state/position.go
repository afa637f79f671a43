package state

import "strconv"

// Position is where the viewer currently is: a slide index or the overview.
// The zero value is Slide(0).
type Position struct {
	index    int
	overview bool
}

// SlideAt returns the position of slide i. Out of range values are clamped
// when the position is applied.
func SlideAt(i int) Position {
	return Position{index: i}
}

// Overview returns the position showing the whole canvas.
func Overview() Position {
	return Position{overview: true}
}

// IsOverview reports whether p is the overview.
func (p Position) IsOverview() bool {
	return p.overview
}

// Index returns the slide index, and false for the overview.
func (p Position) Index() (int, bool) {
	if p.overview {
		return 0, false
	}
	return p.index, true
}

func (p Position) String() string {
	if p.overview {
		return "overview"
	}
	return "slide " + strconv.Itoa(p.index)
}
