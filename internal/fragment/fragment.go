// Package fragment encodes the navigation position as an addressable string,
// the terminal counterpart of a page URL hash.
//
// Grammar:
//
//	fragment = "" | "overview" | "viewBox=" num "," num "," num "," num | id
//
// A leading '#' is accepted and ignored when decoding.
package fragment

import (
	"math"
	"strconv"
	"strings"

	"github.com/kk-code-lab/svgdeck/internal/geometry"
)

const (
	// OverviewToken addresses the whole canvas.
	OverviewToken = "overview"
	// ViewportTag prefixes an explicit left,top,width,height override.
	ViewportTag = "viewBox="
)

// Kind tags a decoded fragment.
type Kind int

const (
	Empty Kind = iota
	SlideRef
	ExplicitViewport
	OverviewRef
)

func (k Kind) String() string {
	switch k {
	case SlideRef:
		return "slide"
	case ExplicitViewport:
		return "viewport"
	case OverviewRef:
		return "overview"
	default:
		return "empty"
	}
}

// Decoded is the result of Decode. ID is set for SlideRef, Viewport for
// ExplicitViewport.
type Decoded struct {
	Kind     Kind
	ID       string
	Viewport geometry.Viewport
}

// IsValidID reports whether id survives an EncodeSlide/Decode round trip.
func IsValidID(id string) bool {
	if id == "" || id == OverviewToken || strings.TrimSpace(id) != id {
		return false
	}
	return !strings.HasPrefix(id, ViewportTag) && !strings.HasPrefix(id, "#")
}

// EncodeSlide returns the fragment for a slide id.
func EncodeSlide(id string) string {
	return id
}

// EncodeOverview returns the fragment for the overview position.
func EncodeOverview() string {
	return OverviewToken
}

// EncodeViewport returns the tagged form carrying the four viewport fields.
func EncodeViewport(v geometry.Viewport) string {
	var b strings.Builder
	b.Grow(len(ViewportTag) + 48)
	b.WriteString(ViewportTag)
	for i, f := range [...]float64{v.Left, v.Top, v.Width, v.Height} {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return b.String()
}

// Decode parses s. It never fails: anything malformed decodes to Empty.
func Decode(s string) Decoded {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch {
	case s == "":
		return Decoded{Kind: Empty}
	case s == OverviewToken:
		return Decoded{Kind: OverviewRef}
	case strings.HasPrefix(s, ViewportTag):
		v, ok := parseViewport(strings.TrimPrefix(s, ViewportTag))
		if !ok {
			return Decoded{Kind: Empty}
		}
		return Decoded{Kind: ExplicitViewport, Viewport: v}
	default:
		return Decoded{Kind: SlideRef, ID: s}
	}
}

func parseViewport(s string) (geometry.Viewport, bool) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return geometry.Viewport{}, false
	}
	var vals [4]float64
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return geometry.Viewport{}, false
		}
		vals[i] = f
	}
	if vals[2] < 0 || vals[3] < 0 {
		return geometry.Viewport{}, false
	}
	return geometry.Viewport{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}, true
}
