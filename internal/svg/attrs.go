package svg

import (
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

func attrValue(el xml.StartElement, local string) (string, bool) {
	prefix := ""
	if i := strings.IndexByte(local, ':'); i >= 0 {
		prefix, local = local[:i], local[i+1:]
	}
	for _, a := range el.Attr {
		if a.Name.Local != local {
			continue
		}
		// Prefixes are resolved to namespace URLs by the decoder.
		if prefix != "" && !strings.Contains(a.Name.Space, prefix) {
			continue
		}
		return a.Value, true
	}
	return "", false
}

// parseLength reads a plain or px-suffixed number. Relative units are not
// resolved and report false.
func parseLength(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func lengthAttr(el xml.StartElement, name string) float64 {
	v, ok := attrValue(el, name)
	if !ok {
		return 0
	}
	f, _ := parseLength(v)
	return f
}

// parseNumbers splits a comma/whitespace separated list such as a viewBox
// or points attribute. Any malformed or non-finite entry rejects the list.
func parseNumbers(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// parseTransform composes an SVG transform list. The rightmost transform is
// applied first, so "translate(10) scale(2)" scales before translating.
func parseTransform(s string) (matrix.Matrix, bool) {
	m := matrix.Identity
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return matrix.Identity, false
		}
		name := strings.Trim(rest[:open], " \t\r\n,")
		args := parseNumbers(rest[open+1 : end])
		rest = strings.TrimLeft(rest[end+1:], " \t\r\n,")

		t, ok := transformFunc(name, args)
		if !ok {
			return matrix.Identity, false
		}
		m = t.Mul(m)
	}
	return m, true
}

func transformFunc(name string, args []float64) (matrix.Matrix, bool) {
	switch name {
	case "matrix":
		if len(args) != 6 {
			return matrix.Identity, false
		}
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, true
	case "translate":
		switch len(args) {
		case 1:
			return matrix.Translate(args[0], 0), true
		case 2:
			return matrix.Translate(args[0], args[1]), true
		}
	case "scale":
		switch len(args) {
		case 1:
			return matrix.Scale(args[0], args[0]), true
		case 2:
			return matrix.Scale(args[0], args[1]), true
		}
	case "rotate":
		if len(args) != 1 && len(args) != 3 {
			return matrix.Identity, false
		}
		rad := args[0] * math.Pi / 180
		sin, cos := math.Sincos(rad)
		r := matrix.Matrix{cos, sin, -sin, cos, 0, 0}
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			r = matrix.Translate(-cx, -cy).Mul(r).Mul(matrix.Translate(cx, cy))
		}
		return r, true
	case "skewX":
		if len(args) == 1 {
			return matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}, true
		}
	case "skewY":
		if len(args) == 1 {
			return matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}, true
		}
	}
	return matrix.Identity, false
}
