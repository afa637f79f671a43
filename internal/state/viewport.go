package state

import (
	"github.com/kk-code-lab/svgdeck/internal/geometry"
	"seehuhn.de/go/geom/vec"
)

// DefaultZoomFactor is applied per wheel notch when zooming out; its
// reciprocal is used to zoom in.
const DefaultZoomFactor = 1.25

// Renderer applies viewports. animated asks for a transition from whatever
// is on screen; the call must not block.
type Renderer interface {
	ApplyViewport(v geometry.Viewport, animated bool)
}

// ViewportController turns positions and zoom requests into viewports and
// hands them to the renderer.
type ViewportController struct {
	presentation *Presentation
	renderer     Renderer
	marginRatio  float64
	zoomFactor   float64

	current  geometry.Viewport
	detached bool
}

// NewViewportController creates a controller. A negative or NaN margin and a
// non-positive zoom factor fall back to the defaults. A nil renderer
// discards effects.
func NewViewportController(p *Presentation, r Renderer, marginRatio, zoomFactor float64) *ViewportController {
	if !(marginRatio >= 0) {
		marginRatio = geometry.DefaultMarginRatio
	}
	if !(zoomFactor > 0) {
		zoomFactor = DefaultZoomFactor
	}
	return &ViewportController{
		presentation: p,
		renderer:     r,
		marginRatio:  marginRatio,
		zoomFactor:   zoomFactor,
		detached:     true,
	}
}

// Current returns the last viewport handed to the renderer.
func (vc *ViewportController) Current() geometry.Viewport {
	return vc.current
}

// Detached reports whether the viewport differs from the fit of the last
// position, either because it was zoomed or set explicitly, or because no
// transition has happened yet.
func (vc *ViewportController) Detached() bool {
	return vc.detached
}

// TransitionTo fits the region of pos and requests an animated transition.
func (vc *ViewportController) TransitionTo(pos Position) geometry.Viewport {
	v := geometry.Fit(vc.presentation.Bounds(pos), vc.marginRatio)
	vc.current = v
	vc.detached = false
	vc.apply(v, true)
	return v
}

// Zoom scales current around pivot. direction > 0 zooms out by the zoom
// factor, < 0 zooms in by its reciprocal; 0 changes nothing.
func (vc *ViewportController) Zoom(current geometry.Viewport, pivot vec.Vec2, direction int) geometry.Viewport {
	var factor float64
	switch {
	case direction > 0:
		factor = vc.zoomFactor
	case direction < 0:
		factor = 1 / vc.zoomFactor
	default:
		return current
	}
	v := geometry.ZoomAround(current, pivot, factor)
	vc.current = v
	vc.detached = true
	vc.apply(v, false)
	return v
}

// Apply shows v immediately, bypassing navigation.
func (vc *ViewportController) Apply(v geometry.Viewport) geometry.Viewport {
	vc.current = v
	vc.detached = true
	vc.apply(v, false)
	return v
}

func (vc *ViewportController) apply(v geometry.Viewport, animated bool) {
	if vc.renderer != nil {
		vc.renderer.ApplyViewport(v, animated)
	}
}
