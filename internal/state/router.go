package state

import (
	"github.com/kk-code-lab/svgdeck/internal/fragment"
	"github.com/kk-code-lab/svgdeck/internal/geometry"
)

// Channel is the persisted navigation string, e.g. a URL fragment.
type Channel interface {
	Read() string
	Write(s string)
}

// Keymap binds key identifiers to actions.
type Keymap map[string]Action

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"ArrowLeft":  ActionPrevious,
		"ArrowRight": ActionNext,
		"Space":      ActionNext,
		"Home":       ActionFirst,
		"End":        ActionLast,
		"Escape":     ActionOverview,
	}
}

// Options configures a Router. A nil Keymap and a non-positive ZoomFactor
// select the defaults. MarginRatio zero fits regions exactly; a negative
// value selects geometry.DefaultMarginRatio.
type Options struct {
	Keymap      Keymap
	ZoomFactor  float64
	MarginRatio float64
}

func (o Options) withDefaults() Options {
	if o.Keymap == nil {
		o.Keymap = DefaultKeymap()
	}
	if !(o.ZoomFactor > 0) {
		o.ZoomFactor = DefaultZoomFactor
	}
	if !(o.MarginRatio >= 0) {
		o.MarginRatio = geometry.DefaultMarginRatio
	}
	return o
}

// Router dispatches semantic events to the navigator and viewport controller
// and mirrors the outcome into the channel. Events are handled one at a time
// and Dispatch never blocks.
type Router struct {
	presentation *Presentation
	nav          *Navigator
	viewport     *ViewportController
	channel      Channel
	keymap       Keymap
	report       Reporter
}

// NewRouter wires the core around p. renderer and channel may be nil.
func NewRouter(p *Presentation, renderer Renderer, channel Channel, report Reporter, opts Options) *Router {
	opts = opts.withDefaults()
	report = reporterOrNop(report)
	vc := NewViewportController(p, renderer, opts.MarginRatio, opts.ZoomFactor)
	return &Router{
		presentation: p,
		nav:          NewNavigator(p, vc, report),
		viewport:     vc,
		channel:      channel,
		keymap:       opts.Keymap,
		report:       report,
	}
}

// Navigator exposes the navigation state.
func (r *Router) Navigator() *Navigator {
	return r.nav
}

// Viewport exposes the viewport controller.
func (r *Router) Viewport() *ViewportController {
	return r.viewport
}

// Presentation returns the slides the router navigates.
func (r *Router) Presentation() *Presentation {
	return r.presentation
}

// Dispatch handles one event.
func (r *Router) Dispatch(ev Event) {
	switch e := ev.(type) {
	case Click:
		idx, ok := r.presentation.IndexOf(e.RegionID)
		if !ok {
			r.report.Debugw("click outside known slides", "id", e.RegionID)
			return
		}
		if r.nav.Set(SlideAt(idx)) {
			r.persistPosition()
		}

	case KeyPress:
		action, ok := r.keymap[e.Key]
		if !ok || action == ActionNone {
			r.report.Debugw("no keybinding", "key", e.Key)
			return
		}
		if r.nav.Do(action) {
			r.persistPosition()
		}

	case Command:
		if r.nav.Do(e.Action) {
			r.persistPosition()
		}

	case ExternalStateChanged:
		r.applyExternal(e.Raw)

	case Wheel:
		before := r.viewport.Current()
		v := r.viewport.Zoom(before, e.Pivot, e.Direction)
		if v != before {
			r.write(fragment.EncodeViewport(v))
		}

	case nil:
		return
	}
}

func (r *Router) applyExternal(raw string) {
	decoded := fragment.Decode(raw)
	switch decoded.Kind {
	case fragment.SlideRef:
		r.nav.ResolveByID(decoded.ID)
	case fragment.OverviewRef:
		r.nav.ToOverview()
	case fragment.ExplicitViewport:
		if r.viewport.Detached() && r.viewport.Current() == decoded.Viewport {
			return
		}
		r.viewport.Apply(decoded.Viewport)
		r.write(fragment.EncodeViewport(decoded.Viewport))
		return
	default:
		if r.presentation.Len() > 0 {
			r.nav.First()
		} else {
			r.nav.ToOverview()
		}
	}
	// Rewrite unresolved or empty fragments to the position actually shown.
	r.persistPosition()
}

func (r *Router) persistPosition() {
	id, ok := r.nav.CurrentID()
	if !ok {
		r.write(fragment.EncodeOverview())
		return
	}
	r.write(fragment.EncodeSlide(id))
}

func (r *Router) write(s string) {
	if r.channel == nil || r.channel.Read() == s {
		return
	}
	r.channel.Write(s)
}
