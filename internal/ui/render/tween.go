package render

import (
	"time"

	"github.com/kk-code-lab/svgdeck/internal/geometry"
)

// tween interpolates the displayed viewport towards a target.
type tween struct {
	from     geometry.Viewport
	to       geometry.Viewport
	start    time.Time
	duration time.Duration
}

// at returns the viewport shown at now and whether the tween has finished.
func (t tween) at(now time.Time) (geometry.Viewport, bool) {
	if t.duration <= 0 {
		return t.to, true
	}
	elapsed := now.Sub(t.start)
	if elapsed >= t.duration {
		return t.to, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := float64(elapsed) / float64(t.duration)
	return t.from.Lerp(t.to, easeInOutCubic(p)), false
}

func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}
