package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kk-code-lab/svgdeck/internal/geometry"
)

func TestDiscoverSortsAndReportsDuplicates(t *testing.T) {
	report, logs := newObservedReporter()
	candidates := []SlideDescriptor{
		{ID: "slide_b", Bounds: geometry.Rect{X: 1}},
		{ID: "slide_a", Bounds: geometry.Rect{X: 2}},
		{ID: "slide_a", Bounds: geometry.Rect{X: 3}},
	}

	p := Discover(candidates, geometry.Rect{}, report)

	var order []string
	for _, s := range p.Slides() {
		order = append(order, s.ID)
	}
	if diff := cmp.Diff([]string{"slide_a", "slide_a", "slide_b"}, order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	dups := logs.FilterMessage("found duplicate slide").All()
	if len(dups) != 1 {
		t.Fatalf("expected exactly one duplicate warning, got %d", len(dups))
	}
	if id := dups[0].ContextMap()["id"]; id != "slide_a" {
		t.Errorf("expected duplicate warning for slide_a, got %v", id)
	}

	idx, ok := p.IndexOf("slide_a")
	if !ok {
		t.Fatal("expected slide_a to be indexed")
	}
	if got := p.Slide(idx).Bounds.X; got != 2 {
		t.Errorf("expected first occurrence (X=2) to win, got X=%v", got)
	}
	if p.Occurrences("slide_a") != 2 {
		t.Errorf("expected 2 occurrences, got %d", p.Occurrences("slide_a"))
	}
}

func TestDiscoverUsesOrderKey(t *testing.T) {
	candidates := []SlideDescriptor{
		{ID: "intro", OrderKey: "2"},
		{ID: "agenda", OrderKey: "1"},
		{ID: "summary"},
		{ID: "details", OrderKey: "2"},
	}
	p := Discover(candidates, geometry.Rect{}, nil)

	var order []string
	for _, s := range p.Slides() {
		order = append(order, s.ID)
	}
	// "summary" falls back to its id as key; equal keys keep input order.
	want := []string{"agenda", "intro", "details", "summary"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverEmptyWarns(t *testing.T) {
	report, logs := newObservedReporter()
	p := Discover(nil, geometry.Rect{Width: 10, Height: 10}, report)
	if p.Len() != 0 {
		t.Fatalf("expected empty presentation, got %d slides", p.Len())
	}
	if diff := cmp.Diff([]string{"found no slides"}, warnings(logs)); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
	if got := p.Bounds(SlideAt(0)); got != p.Canvas() {
		t.Errorf("expected canvas bounds for empty presentation, got %+v", got)
	}
}

func TestDiscoverWarnsAboutReservedIDs(t *testing.T) {
	report, logs := newObservedReporter()
	Discover([]SlideDescriptor{{ID: "overview"}, {ID: "slide_a"}}, geometry.Rect{}, report)
	if got := logs.FilterMessage("slide id cannot be addressed by fragment").Len(); got != 1 {
		t.Fatalf("expected one reserved-id warning, got %d", got)
	}
}

func TestDiscoverWarnsAboutDuplicatedReservedID(t *testing.T) {
	report, logs := newObservedReporter()
	Discover([]SlideDescriptor{{ID: "overview"}, {ID: "overview"}}, geometry.Rect{}, report)
	if got := logs.FilterMessage("found duplicate slide").Len(); got != 1 {
		t.Errorf("expected one duplicate warning, got %d", got)
	}
	if got := logs.FilterMessage("slide id cannot be addressed by fragment").Len(); got != 1 {
		t.Errorf("expected one reserved-id warning, got %d", got)
	}
}

func TestSlidesReturnsCopy(t *testing.T) {
	p := Discover(slidesRow(2), geometry.Rect{}, nil)
	s := p.Slides()
	s[0].ID = "mutated"
	if p.Slide(0).ID != "slide_a" {
		t.Fatal("Slides must not expose internal storage")
	}
}

func TestBoundsResolvesPosition(t *testing.T) {
	slides := slidesRow(3)
	canvas := canvasFor(slides)
	p := Discover(slides, canvas, nil)
	if got := p.Bounds(SlideAt(2)); got != slides[2].Bounds {
		t.Errorf("expected slide bounds, got %+v", got)
	}
	if got := p.Bounds(Overview()); got != canvas {
		t.Errorf("expected canvas for overview, got %+v", got)
	}
}
