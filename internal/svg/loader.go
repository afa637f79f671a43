// Package svg discovers slide regions in an SVG document and measures their
// bounds in canvas (root user space) coordinates.
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kk-code-lab/svgdeck/internal/geometry"
	statepkg "github.com/kk-code-lab/svgdeck/internal/state"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

const (
	DefaultPrefix         = "slide_"
	DefaultOrderAttribute = "id"
)

// ErrNoSVG is returned when the input has no <svg> root element.
var ErrNoSVG = errors.New("svg: no <svg> root element")

// Options selects which elements become slides.
type Options struct {
	// Prefix an element id must start with to be a slide.
	Prefix string
	// OrderAttribute names the attribute slides are sorted by. "id" or an
	// element without the attribute sorts by id. Namespaced attributes may
	// be given as "inkscape:label".
	OrderAttribute string
}

func (o Options) withDefaults() Options {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.OrderAttribute == "" {
		o.OrderAttribute = DefaultOrderAttribute
	}
	return o
}

// Document is the result of loading an SVG file.
type Document struct {
	// Canvas is the bounding box of all drawn content, falling back to the
	// root viewBox and then to width/height.
	Canvas geometry.Rect
	// Candidates are the slide regions in document order.
	Candidates []statepkg.SlideDescriptor
}

// Load reads and parses the SVG file at path.
func Load(path string, opts Options) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// elements whose children are never drawn where they are defined
var nonRendering = map[string]bool{
	"defs": true, "clipPath": true, "mask": true, "symbol": true, "marker": true,
	"pattern": true, "linearGradient": true, "radialGradient": true, "filter": true,
	"style": true, "script": true, "metadata": true, "title": true, "desc": true,
}

type frame struct {
	ctm      matrix.Matrix
	bounds   geometry.Rect
	hasBound bool
	slide    int // index into candidates, -1 when not a slide
}

func (f *frame) include(r geometry.Rect) {
	if !f.hasBound {
		f.bounds = r
		f.hasBound = true
		return
	}
	f.bounds = f.bounds.Union(r)
}

// Parse reads an SVG document from r.
func Parse(r io.Reader, opts Options) (*Document, error) {
	opts = opts.withDefaults()

	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		enc, err := ianaindex.IANA.Encoding(label)
		if err != nil {
			return nil, err
		}
		if enc == nil {
			return input, nil
		}
		return enc.NewDecoder().Reader(input), nil
	}

	doc := &Document{}
	var (
		stack     []*frame
		skipDepth int
		sawRoot   bool
		viewBox   geometry.Rect
		haveVB    bool
		root      *frame
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skipDepth > 0 || nonRendering[t.Name.Local] {
				skipDepth++
				continue
			}
			if !sawRoot {
				if t.Name.Local != "svg" {
					return nil, ErrNoSVG
				}
				sawRoot = true
				viewBox, haveVB = rootViewBox(t)
			}

			parent := matrix.Identity
			if len(stack) > 0 {
				parent = stack[len(stack)-1].ctm
			}
			local := matrix.Identity
			if s, ok := attrValue(t, "transform"); ok {
				if m, ok := parseTransform(s); ok {
					local = m
				}
			}
			if t.Name.Local == "svg" && len(stack) > 0 {
				local = matrix.Translate(lengthAttr(t, "x"), lengthAttr(t, "y")).Mul(local)
			}
			f := &frame{ctm: local.Mul(parent), slide: -1}
			if shape, ok := shapeBounds(t); ok {
				f.include(shape.Transform(f.ctm))
			}
			if id, ok := attrValue(t, "id"); ok && strings.HasPrefix(id, opts.Prefix) {
				f.slide = len(doc.Candidates)
				doc.Candidates = append(doc.Candidates, statepkg.SlideDescriptor{
					ID:       norm.NFC.String(id),
					OrderKey: orderKey(t, opts.OrderAttribute),
				})
			}
			if root == nil {
				root = f
			}
			stack = append(stack, f)

		case xml.EndElement:
			if skipDepth > 0 {
				skipDepth--
				continue
			}
			if len(stack) == 0 {
				continue
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.slide >= 0 && f.hasBound {
				doc.Candidates[f.slide].Bounds = f.bounds
			}
			if len(stack) > 0 && f.hasBound {
				stack[len(stack)-1].include(f.bounds)
			}
		}
	}

	if !sawRoot {
		return nil, ErrNoSVG
	}
	switch {
	case root != nil && root.hasBound:
		doc.Canvas = root.bounds
	case haveVB:
		doc.Canvas = viewBox
	}
	return doc, nil
}

func rootViewBox(el xml.StartElement) (geometry.Rect, bool) {
	if s, ok := attrValue(el, "viewBox"); ok {
		if n := parseNumbers(s); len(n) == 4 && n[2] >= 0 && n[3] >= 0 {
			return geometry.Rect{X: n[0], Y: n[1], Width: n[2], Height: n[3]}, true
		}
	}
	w, okW := parseLength(valueOr(el, "width"))
	h, okH := parseLength(valueOr(el, "height"))
	if okW && okH {
		return geometry.Rect{Width: w, Height: h}, true
	}
	return geometry.Rect{}, false
}

func valueOr(el xml.StartElement, name string) string {
	v, _ := attrValue(el, name)
	return v
}

func orderKey(el xml.StartElement, attr string) string {
	if attr == DefaultOrderAttribute {
		return ""
	}
	v, ok := attrValue(el, attr)
	if !ok {
		return ""
	}
	return norm.NFC.String(v)
}

// shapeBounds returns the element's own geometry in its local coordinates.
func shapeBounds(el xml.StartElement) (geometry.Rect, bool) {
	switch el.Name.Local {
	case "rect", "image", "use", "foreignObject":
		w, h := lengthAttr(el, "width"), lengthAttr(el, "height")
		if el.Name.Local == "use" && w == 0 && h == 0 {
			return geometry.Rect{}, false
		}
		return geometry.Rect{X: lengthAttr(el, "x"), Y: lengthAttr(el, "y"), Width: w, Height: h}, true
	case "circle":
		cx, cy, r := lengthAttr(el, "cx"), lengthAttr(el, "cy"), lengthAttr(el, "r")
		return geometry.Rect{X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r}, true
	case "ellipse":
		cx, cy := lengthAttr(el, "cx"), lengthAttr(el, "cy")
		rx, ry := lengthAttr(el, "rx"), lengthAttr(el, "ry")
		return geometry.Rect{X: cx - rx, Y: cy - ry, Width: 2 * rx, Height: 2 * ry}, true
	case "line":
		return geometry.BoundsOf(
			vec.Vec2{X: lengthAttr(el, "x1"), Y: lengthAttr(el, "y1")},
			vec.Vec2{X: lengthAttr(el, "x2"), Y: lengthAttr(el, "y2")},
		)
	case "polyline", "polygon":
		nums := parseNumbers(valueOr(el, "points"))
		points := make([]vec.Vec2, 0, len(nums)/2)
		for i := 0; i+1 < len(nums); i += 2 {
			points = append(points, vec.Vec2{X: nums[i], Y: nums[i+1]})
		}
		return geometry.BoundsOf(points...)
	case "path":
		return geometry.BoundsOf(pathPoints(valueOr(el, "d"))...)
	case "text", "tspan":
		x, okX := attrValue(el, "x")
		y, okY := attrValue(el, "y")
		if !okX && !okY {
			return geometry.Rect{}, false
		}
		// Only the anchor point is known without font metrics.
		px, _ := parseLength(firstNumber(x))
		py, _ := parseLength(firstNumber(y))
		return geometry.Rect{X: px, Y: py}, true
	}
	return geometry.Rect{}, false
}

func firstNumber(s string) string {
	if fields := strings.Fields(strings.ReplaceAll(s, ",", " ")); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
