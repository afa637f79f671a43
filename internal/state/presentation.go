package state

import (
	"sort"

	"github.com/kk-code-lab/svgdeck/internal/fragment"
	"github.com/kk-code-lab/svgdeck/internal/geometry"
)

// SlideDescriptor is a candidate region found on the canvas.
type SlideDescriptor struct {
	ID       string
	OrderKey string // empty means ID
	Bounds   geometry.Rect
}

func (d SlideDescriptor) sortKey() string {
	if d.OrderKey == "" {
		return d.ID
	}
	return d.OrderKey
}

// Presentation is the immutable, ordered set of slides plus the canvas.
type Presentation struct {
	slides      []SlideDescriptor
	canvas      geometry.Rect
	byID        map[string]int
	occurrences map[string]int
}

// Discover orders candidates by order key and indexes them by id. Duplicate
// ids, reserved ids and an empty candidate list are reported as warnings;
// when an id repeats, lookups return the occurrence that came first in
// candidates.
func Discover(candidates []SlideDescriptor, canvas geometry.Rect, report Reporter) *Presentation {
	report = reporterOrNop(report)

	type indexed struct {
		desc SlideDescriptor
		pos  int
	}
	items := make([]indexed, len(candidates))
	for i, c := range candidates {
		items[i] = indexed{desc: c, pos: i}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].desc.sortKey() < items[j].desc.sortKey()
	})

	p := &Presentation{
		slides:      make([]SlideDescriptor, len(items)),
		canvas:      canvas,
		byID:        make(map[string]int, len(items)),
		occurrences: make(map[string]int, len(items)),
	}
	firstPos := make(map[string]int, len(items))
	for i, it := range items {
		p.slides[i] = it.desc
		id := it.desc.ID
		p.occurrences[id]++
		if prev, ok := firstPos[id]; !ok || it.pos < prev {
			firstPos[id] = it.pos
			p.byID[id] = i
		}
	}

	if len(p.slides) == 0 {
		report.Warnw("found no slides")
		return p
	}

	ids := make([]string, len(p.slides))
	duplicates := make(map[string]bool)
	unaddressable := make(map[string]bool)
	for i, s := range p.slides {
		ids[i] = s.ID
		if n := p.occurrences[s.ID]; n > 1 && !duplicates[s.ID] {
			duplicates[s.ID] = true
			report.Warnw("found duplicate slide", "id", s.ID, "count", n)
		}
		if !fragment.IsValidID(s.ID) && !unaddressable[s.ID] {
			unaddressable[s.ID] = true
			report.Warnw("slide id cannot be addressed by fragment", "id", s.ID)
		}
	}
	report.Debugw("found slides", "ids", ids)
	return p
}

// Len returns the number of slides.
func (p *Presentation) Len() int {
	if p == nil {
		return 0
	}
	return len(p.slides)
}

// Slide returns the slide at index i.
func (p *Presentation) Slide(i int) SlideDescriptor {
	return p.slides[i]
}

// Slides returns a copy of the ordered slides.
func (p *Presentation) Slides() []SlideDescriptor {
	out := make([]SlideDescriptor, len(p.slides))
	copy(out, p.slides)
	return out
}

// Canvas returns the full-extent rectangle used for the overview.
func (p *Presentation) Canvas() geometry.Rect {
	return p.canvas
}

// IndexOf returns the index of the first-encountered slide with id.
func (p *Presentation) IndexOf(id string) (int, bool) {
	if p == nil {
		return 0, false
	}
	idx, ok := p.byID[id]
	return idx, ok
}

// Occurrences reports how many discovered slides share id.
func (p *Presentation) Occurrences(id string) int {
	if p == nil {
		return 0
	}
	return p.occurrences[id]
}

// Bounds resolves a position to the rectangle it shows.
func (p *Presentation) Bounds(pos Position) geometry.Rect {
	if idx, ok := pos.Index(); ok && idx < len(p.slides) {
		return p.slides[idx].Bounds
	}
	return p.canvas
}
