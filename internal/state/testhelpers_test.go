package state

import (
	"fmt"
	"testing"

	"github.com/kk-code-lab/svgdeck/internal/geometry"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type appliedViewport struct {
	Viewport geometry.Viewport
	Animated bool
}

type recordingRenderer struct {
	applied []appliedViewport
}

func (r *recordingRenderer) ApplyViewport(v geometry.Viewport, animated bool) {
	r.applied = append(r.applied, appliedViewport{Viewport: v, Animated: animated})
}

func (r *recordingRenderer) last(t *testing.T) appliedViewport {
	t.Helper()
	if len(r.applied) == 0 {
		t.Fatal("expected a viewport effect, got none")
	}
	return r.applied[len(r.applied)-1]
}

type memoryChannel struct {
	value  string
	writes []string
}

func (c *memoryChannel) Read() string { return c.value }

func (c *memoryChannel) Write(s string) {
	c.value = s
	c.writes = append(c.writes, s)
}

func newObservedReporter() (Reporter, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core).Sugar(), logs
}

func warnings(logs *observer.ObservedLogs) []string {
	var out []string
	for _, entry := range logs.FilterLevelExact(zapcore.WarnLevel).All() {
		out = append(out, entry.Message)
	}
	return out
}

// slidesRow lays out n slides left to right, 100x100 each with a gap.
func slidesRow(n int) []SlideDescriptor {
	out := make([]SlideDescriptor, n)
	for i := range out {
		out[i] = SlideDescriptor{
			ID:     fmt.Sprintf("slide_%c", 'a'+i),
			Bounds: geometry.Rect{X: float64(i) * 200, Y: 0, Width: 100, Height: 100},
		}
	}
	return out
}

func canvasFor(slides []SlideDescriptor) geometry.Rect {
	if len(slides) == 0 {
		return geometry.Rect{Width: 1000, Height: 500}
	}
	canvas := slides[0].Bounds
	for _, s := range slides[1:] {
		canvas = canvas.Union(s.Bounds)
	}
	return canvas
}

type fixture struct {
	router   *Router
	renderer *recordingRenderer
	channel  *memoryChannel
	logs     *observer.ObservedLogs
}

func newFixture(t *testing.T, slides []SlideDescriptor) *fixture {
	t.Helper()
	report, logs := newObservedReporter()
	rr := &recordingRenderer{}
	ch := &memoryChannel{}
	p := Discover(slides, canvasFor(slides), report)
	return &fixture{
		router:   NewRouter(p, rr, ch, report, Options{MarginRatio: geometry.DefaultMarginRatio}),
		renderer: rr,
		channel:  ch,
		logs:     logs,
	}
}

// started dispatches the initial empty fragment the way the application does.
func (f *fixture) started() *fixture {
	f.router.Dispatch(ExternalStateChanged{Raw: f.channel.Read()})
	f.renderer.applied = nil
	f.channel.writes = nil
	return f
}
