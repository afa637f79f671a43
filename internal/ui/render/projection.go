package render

import (
	"math"

	"github.com/kk-code-lab/svgdeck/internal/geometry"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Area is a block of terminal cells.
type Area struct {
	X, Y, Width, Height int
}

// Projection maps canvas coordinates to fractional cell coordinates for one
// viewport. The viewport is scaled uniformly to fit the area and centred in
// it, like preserveAspectRatio="xMidYMid meet".
type Projection struct {
	area     Area
	toScreen matrix.Matrix
	toCanvas matrix.Matrix
}

// NewProjection fits v into area.
func NewProjection(v geometry.Viewport, area Area) Projection {
	w, h := float64(area.Width), float64(area.Height)*CellAspect

	scale := math.Min(w/v.Width, h/v.Height)
	if math.IsInf(scale, 0) || math.IsNaN(scale) || scale <= 0 {
		scale = 1
	}

	offX := float64(area.X) + (w-v.Width*scale)/2
	offY := float64(area.Y) + (h-v.Height*scale)/(2*CellAspect)

	m := matrix.Translate(-v.Left, -v.Top).
		Mul(matrix.Scale(scale, scale/CellAspect)).
		Mul(matrix.Translate(offX, offY))
	return Projection{area: area, toScreen: m, toCanvas: m.Inv()}
}

// Area returns the cells the projection draws into.
func (p Projection) Area() Area {
	return p.area
}

// ToScreen converts a canvas point to fractional cell coordinates.
func (p Projection) ToScreen(c vec.Vec2) vec.Vec2 {
	return geometry.Apply(p.toScreen, c)
}

// ToCanvas converts fractional cell coordinates to a canvas point.
func (p Projection) ToCanvas(s vec.Vec2) vec.Vec2 {
	return geometry.Apply(p.toCanvas, s)
}

// CellCenter returns the canvas point under the middle of cell (x, y).
func (p Projection) CellCenter(x, y int) vec.Vec2 {
	return p.ToCanvas(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
}

// Contains reports whether cell (x, y) lies inside the projected area.
func (p Projection) Contains(x, y int) bool {
	a := p.area
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// cellRect is an inclusive rectangle of cells.
type cellRect struct {
	x0, y0, x1, y1 int
}

// project returns the cells covered by r. Empty or degenerate rects still
// cover at least one cell.
func (p Projection) project(r geometry.Rect) cellRect {
	a := p.ToScreen(vec.Vec2{X: r.X, Y: r.Y})
	b := p.ToScreen(vec.Vec2{X: r.X + r.Width, Y: r.Y + r.Height})
	c := cellRect{
		x0: floorCell(math.Min(a.X, b.X)),
		y0: floorCell(math.Min(a.Y, b.Y)),
		x1: floorCell(math.Max(a.X, b.X) - 1e-9),
		y1: floorCell(math.Max(a.Y, b.Y) - 1e-9),
	}
	if c.x1 < c.x0 {
		c.x1 = c.x0
	}
	if c.y1 < c.y0 {
		c.y1 = c.y0
	}
	return c
}

func floorCell(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(math.Floor(f))
}
