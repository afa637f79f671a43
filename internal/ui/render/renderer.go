package render

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/svgdeck/internal/geometry"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	textutil "github.com/kk-code-lab/svgdeck/internal/textutil"
	"seehuhn.de/go/geom/vec"
)

// Frame is the non-geometric state drawn around the canvas.
type Frame struct {
	Title        string
	Position     statepkg.Position
	Fragment     string
	Keymap       statepkg.Keymap
	HelpVisible  bool
	CanGoBack    bool
	CanGoForward bool
	// Notice is a transient message such as a clipboard confirmation.
	Notice string
}

// Renderer draws the presentation and owns the displayed viewport. It
// implements state.Renderer: animated changes are tweened from whatever is
// on screen, and a new target replaces a running tween.
type Renderer struct {
	screen       tcell.Screen
	theme        ColorTheme
	presentation *statepkg.Presentation
	transition   time.Duration
	now          func() time.Time

	mu        sync.Mutex
	displayed geometry.Viewport
	target    geometry.Viewport
	tween     *tween
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, p *statepkg.Presentation, transition time.Duration) *Renderer {
	canvas := geometry.Fit(p.Canvas(), 0)
	return &Renderer{
		screen:       screen,
		theme:        GetColorTheme(),
		presentation: p,
		transition:   transition,
		now:          time.Now,
		displayed:    canvas,
		target:       canvas,
	}
}

// ApplyViewport sets the viewport to show, tweening to it when animated.
func (r *Renderer) ApplyViewport(v geometry.Viewport, animated bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.advanceLocked()
	r.target = v
	if !animated || r.transition <= 0 || r.displayed == v {
		r.displayed = v
		r.tween = nil
		return
	}
	r.tween = &tween{from: r.displayed, to: v, start: r.now(), duration: r.transition}
}

// Step advances a running tween and reports whether it is still running.
func (r *Renderer) Step() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advanceLocked()
	return r.tween != nil
}

// Animating reports whether a tween is in progress.
func (r *Renderer) Animating() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tween != nil
}

// Displayed returns the viewport currently on screen.
func (r *Renderer) Displayed() geometry.Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.displayed
}

// Target returns the viewport the renderer is moving towards.
func (r *Renderer) Target() geometry.Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *Renderer) advanceLocked() {
	if r.tween == nil {
		return
	}
	v, done := r.tween.at(r.now())
	r.displayed = v
	if done {
		r.tween = nil
	}
}

// canvasArea is everything above the status line.
func (r *Renderer) canvasArea() Area {
	if r.screen == nil {
		return Area{}
	}
	w, h := r.screen.Size()
	if h > 1 {
		h--
	}
	return Area{Width: w, Height: h}
}

// Projection returns the mapping used for the displayed viewport.
func (r *Renderer) Projection() Projection {
	return NewProjection(r.Displayed(), r.canvasArea())
}

// CanvasPoint converts a screen cell to canvas coordinates. It reports false
// for cells outside the canvas area, e.g. the status line.
func (r *Renderer) CanvasPoint(x, y int) (vec.Vec2, bool) {
	p := r.Projection()
	if !p.Contains(x, y) {
		return vec.Vec2{}, false
	}
	return p.CellCenter(x, y), true
}

// TargetPoint is CanvasPoint against the viewport being moved towards.
// Zooming starts from the target, so wheel pivots are taken there.
func (r *Renderer) TargetPoint(x, y int) (vec.Vec2, bool) {
	p := NewProjection(r.Target(), r.canvasArea())
	if !p.Contains(x, y) {
		return vec.Vec2{}, false
	}
	return p.CellCenter(x, y), true
}

// HitTest returns the id of the smallest slide under cell (x, y).
func (r *Renderer) HitTest(x, y int) (string, bool) {
	pt, ok := r.CanvasPoint(x, y)
	if !ok {
		return "", false
	}
	best := -1
	bestArea := 0.0
	for i, s := range r.presentation.Slides() {
		if !s.Bounds.Contains(pt) {
			continue
		}
		if best < 0 || s.Bounds.Area() < bestArea {
			best, bestArea = i, s.Bounds.Area()
		}
	}
	if best < 0 {
		return "", false
	}
	return r.presentation.Slide(best).ID, true
}

// Render draws the entire UI
func (r *Renderer) Render(frame Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if frame.HelpVisible {
		r.drawHelpOverlay(frame, w, h)
		r.screen.Show()
		return
	}

	proj := r.Projection()
	r.drawCanvas(proj)
	r.drawSlides(proj, frame.Position)
	r.drawStatusLine(frame, w, h)

	r.screen.Show()
}

func (r *Renderer) drawCanvas(proj Projection) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.CanvasFg)
	r.drawBox(proj, proj.project(r.presentation.Canvas()), style, boxDotted)
}

// drawSlides paints larger slides first so nested ones stay visible, and the
// current slide last.
func (r *Renderer) drawSlides(proj Projection, pos statepkg.Position) {
	slides := r.presentation.Slides()
	order := make([]int, len(slides))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return slides[order[a]].Bounds.Area() > slides[order[b]].Bounds.Area()
	})

	current, hasCurrent := pos.Index()
	base := tcell.StyleDefault.Background(r.theme.Background)
	for _, i := range order {
		if hasCurrent && i == current {
			continue
		}
		r.drawSlide(proj, i, slides[i], base.Foreground(r.theme.SlideFg), base.Foreground(r.theme.SlideLabelFg))
	}
	if hasCurrent && current < len(slides) {
		r.drawSlide(proj, current, slides[current],
			base.Foreground(r.theme.ActiveSlideFg).Bold(true),
			base.Background(r.theme.ActiveLabelBg).Foreground(r.theme.ActiveLabelFg).Bold(true))
	}
}

func (r *Renderer) drawSlide(proj Projection, index int, s statepkg.SlideDescriptor, outline, label tcell.Style) {
	cells := proj.project(s.Bounds)
	r.drawBox(proj, cells, outline, boxSolid)

	text := fmt.Sprintf(" %d %s ", index+1, textutil.SanitizeTerminalText(s.ID))
	inner := cells.x1 - cells.x0 - 1
	if inner < 1 {
		return
	}
	text = textutil.Truncate(text, inner)
	r.drawClippedText(proj, cells.x0+1, cells.y0, text, label)
}

type boxStyle struct {
	h, v, tl, tr, bl, br rune
}

var (
	boxSolid  = boxStyle{h: '─', v: '│', tl: '┌', tr: '┐', bl: '└', br: '┘'}
	boxDotted = boxStyle{h: '┄', v: '┆', tl: '·', tr: '·', bl: '·', br: '·'}
)

func (r *Renderer) drawBox(proj Projection, c cellRect, style tcell.Style, box boxStyle) {
	if c.x0 == c.x1 && c.y0 == c.y1 {
		r.setCell(proj, c.x0, c.y0, '·', style)
		return
	}
	a := proj.area
	// Edges are clipped to the area first; a deep zoom puts corners far off
	// screen.
	for x := max(c.x0+1, a.X); x < min(c.x1, a.X+a.Width); x++ {
		r.setCell(proj, x, c.y0, box.h, style)
		r.setCell(proj, x, c.y1, box.h, style)
	}
	for y := max(c.y0+1, a.Y); y < min(c.y1, a.Y+a.Height); y++ {
		r.setCell(proj, c.x0, y, box.v, style)
		r.setCell(proj, c.x1, y, box.v, style)
	}
	r.setCell(proj, c.x0, c.y0, box.tl, style)
	r.setCell(proj, c.x1, c.y0, box.tr, style)
	r.setCell(proj, c.x0, c.y1, box.bl, style)
	r.setCell(proj, c.x1, c.y1, box.br, style)
}

func (r *Renderer) setCell(proj Projection, x, y int, ru rune, style tcell.Style) {
	if !proj.Contains(x, y) {
		return
	}
	r.screen.SetContent(x, y, ru, nil, style)
}

func (r *Renderer) drawClippedText(proj Projection, x, y int, text string, style tcell.Style) {
	if y < proj.area.Y || y >= proj.area.Y+proj.area.Height {
		return
	}
	left := x
	if left < proj.area.X {
		left = proj.area.X
	}
	right := proj.area.X + proj.area.Width
	for _, ru := range text {
		w := textutil.DisplayWidth(string(ru))
		if x >= left && x+w <= right {
			r.screen.SetContent(x, y, ru, nil, style)
		}
		x += w
	}
}

// drawStatusLine renders the bottom bar: position, fragment and key hints.
func (r *Renderer) drawStatusLine(frame Frame, w, h int) {
	if h < 2 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	left := " " + r.positionLabel(frame.Position)
	if frame.Title != "" {
		left = " " + textutil.SanitizeTerminalText(frame.Title) + " ·" + left
	}
	if frame.Fragment != "" {
		left += "  #" + textutil.SanitizeTerminalText(frame.Fragment)
	}
	if frame.Notice != "" {
		left += "  " + textutil.SanitizeTerminalText(frame.Notice)
	}
	x := r.drawTextLine(0, y, w, textutil.Truncate(left, w), style.Bold(true))

	hints := buildFooterHelpText(frame)
	if hints == "" {
		return
	}
	avail := w - x - 1
	if avail <= 0 {
		return
	}
	hints = textutil.Truncate(hints, avail)
	start := w - textutil.DisplayWidth(hints)
	r.drawTextLine(start, y, w-start, hints, style.Foreground(r.theme.HintFg))
}

func (r *Renderer) positionLabel(pos statepkg.Position) string {
	n := r.presentation.Len()
	idx, ok := pos.Index()
	if !ok || idx >= n {
		return fmt.Sprintf("overview (%d slides)", n)
	}
	return fmt.Sprintf("%d/%d %s", idx+1, n, textutil.SanitizeTerminalText(r.presentation.Slide(idx).ID))
}
