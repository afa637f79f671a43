package geometry

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// DefaultMarginRatio is the share of a region's size added on every side
// when fitting a viewport around it.
const DefaultMarginRatio = 0.01

// Rect is an axis-aligned box in canvas coordinates. Zero width or height is
// legal and yields a degenerate viewport.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Viewport is the visible window onto the canvas.
type Viewport struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Fit returns the viewport showing r with marginRatio*size added on each side,
// centred on r.
func Fit(r Rect, marginRatio float64) Viewport {
	mx := r.Width * marginRatio
	my := r.Height * marginRatio
	return Viewport{
		Left:   r.X - mx,
		Top:    r.Y - my,
		Width:  r.Width + 2*mx,
		Height: r.Height + 2*my,
	}
}

// ZoomAround scales v by factor while keeping pivot at the same relative
// position. A factor below one zooms in, above one zooms out. Non-positive
// factors leave v unchanged.
func ZoomAround(v Viewport, pivot vec.Vec2, factor float64) Viewport {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return v
	}
	m := matrix.Translate(-pivot.X, -pivot.Y).
		Mul(matrix.Scale(factor, factor)).
		Mul(matrix.Translate(pivot.X, pivot.Y))
	corner := Apply(m, vec.Vec2{X: v.Left, Y: v.Top})
	return Viewport{
		Left:   corner.X,
		Top:    corner.Y,
		Width:  v.Width * factor,
		Height: v.Height * factor,
	}
}

// Rect converts the viewport to the equivalent canvas rectangle.
func (v Viewport) Rect() Rect {
	return Rect{X: v.Left, Y: v.Top, Width: v.Width, Height: v.Height}
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() vec.Vec2 {
	return vec.Vec2{X: v.Left + v.Width/2, Y: v.Top + v.Height/2}
}

// Lerp interpolates between v and to; t is clamped to [0, 1].
func (v Viewport) Lerp(to Viewport, t float64) Viewport {
	if t <= 0 {
		return v
	}
	if t >= 1 {
		return to
	}
	mix := func(a, b float64) float64 { return a + (b-a)*t }
	return Viewport{
		Left:   mix(v.Left, to.Left),
		Top:    mix(v.Top, to.Top),
		Width:  mix(v.Width, to.Width),
		Height: mix(v.Height, to.Height),
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Area returns width*height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.Width, o.X+o.Width)
	maxY := math.Max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// BoundsOf returns the axis-aligned box around points, and false when points
// is empty.
func BoundsOf(points ...vec.Vec2) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

// Apply maps p through m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	x, y := m.Apply(p.X, p.Y)
	return vec.Vec2{X: x, Y: y}
}

// Transform maps the four corners of r through m and returns their bounds.
func (r Rect) Transform(m matrix.Matrix) Rect {
	out, _ := BoundsOf(
		Apply(m, vec.Vec2{X: r.X, Y: r.Y}),
		Apply(m, vec.Vec2{X: r.X + r.Width, Y: r.Y}),
		Apply(m, vec.Vec2{X: r.X, Y: r.Y + r.Height}),
		Apply(m, vec.Vec2{X: r.X + r.Width, Y: r.Y + r.Height}),
	)
	return out
}
