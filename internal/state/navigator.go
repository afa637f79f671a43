package state

// Navigator holds the current position and keeps it inside the slide range.
//
// The overview sits before the first slide: Next from the overview reaches
// slide 0 and Previous from the overview does nothing.
type Navigator struct {
	presentation *Presentation
	viewport     *ViewportController
	report       Reporter
	current      Position
}

// NewNavigator starts at slide 0, or at the overview when there are no
// slides. No viewport is applied until the first Set.
func NewNavigator(p *Presentation, vc *ViewportController, report Reporter) *Navigator {
	n := &Navigator{
		presentation: p,
		viewport:     vc,
		report:       reporterOrNop(report),
	}
	if p.Len() == 0 {
		n.current = Overview()
	}
	return n
}

// Current returns the current position.
func (n *Navigator) Current() Position {
	return n.current
}

// CurrentID returns the id of the current slide, false for the overview.
func (n *Navigator) CurrentID() (string, bool) {
	idx, ok := n.current.Index()
	if !ok {
		return "", false
	}
	return n.presentation.Slide(idx).ID, true
}

// Set moves to target, clamping slide indexes. It returns false, and does
// nothing, when the clamped target is already current and still on screen.
func (n *Navigator) Set(target Position) bool {
	target = n.clamp(target)
	if target == n.current && !n.viewport.Detached() {
		return false
	}
	n.current = target
	n.viewport.TransitionTo(target)
	return true
}

func (n *Navigator) clamp(target Position) Position {
	count := n.presentation.Len()
	if count == 0 {
		return Overview()
	}
	idx, ok := target.Index()
	if !ok {
		return target
	}
	if idx < 0 {
		idx = 0
	}
	if idx > count-1 {
		idx = count - 1
	}
	return SlideAt(idx)
}

func (n *Navigator) Next() bool {
	idx, ok := n.current.Index()
	if !ok {
		if n.presentation.Len() == 0 {
			return false
		}
		return n.Set(SlideAt(0))
	}
	return n.Set(SlideAt(idx + 1))
}

func (n *Navigator) Previous() bool {
	idx, ok := n.current.Index()
	if !ok {
		return false
	}
	return n.Set(SlideAt(idx - 1))
}

func (n *Navigator) First() bool {
	return n.Set(SlideAt(0))
}

func (n *Navigator) Last() bool {
	return n.Set(SlideAt(n.presentation.Len() - 1))
}

func (n *Navigator) ToOverview() bool {
	return n.Set(Overview())
}

// ResolveByID moves to the slide with id. Unknown ids fall back to the first
// slide; repeated ids use the first match. Both cases are reported.
func (n *Navigator) ResolveByID(id string) bool {
	idx, ok := n.presentation.IndexOf(id)
	if !ok {
		n.report.Warnw("slide not found, falling back to first slide", "id", id)
		if n.presentation.Len() == 0 {
			return n.ToOverview()
		}
		return n.First()
	}
	if count := n.presentation.Occurrences(id); count > 1 {
		n.report.Warnw("several slides match, using the first", "id", id, "count", count)
	}
	return n.Set(SlideAt(idx))
}

// Do runs a keymap action.
func (n *Navigator) Do(a Action) bool {
	switch a {
	case ActionPrevious:
		return n.Previous()
	case ActionNext:
		return n.Next()
	case ActionFirst:
		return n.First()
	case ActionLast:
		return n.Last()
	case ActionOverview:
		return n.ToOverview()
	default:
		return false
	}
}
