package svg

import (
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// pathPoints returns the end and control points of a path's segments. Their
// bounding box contains the drawn path except for elliptical arc bulges.
func pathPoints(d string) []vec.Vec2 {
	lx := pathLexer{s: d}
	var (
		points      []vec.Vec2
		cur, start  vec.Vec2
		cmd         byte
		haveCommand bool
	)

	add := func(p vec.Vec2) { points = append(points, p) }

	for {
		if c, ok := lx.command(); ok {
			cmd = c
			haveCommand = true
			if cmd == 'Z' || cmd == 'z' {
				cur = start
				continue
			}
		} else if !haveCommand || !lx.more() {
			return points
		}

		rel := cmd >= 'a'
		offset := func(p vec.Vec2) vec.Vec2 {
			if rel {
				return vec.Vec2{X: cur.X + p.X, Y: cur.Y + p.Y}
			}
			return p
		}

		switch cmd {
		case 'M', 'm':
			p, ok := lx.pair()
			if !ok {
				return points
			}
			cur = offset(p)
			start = cur
			add(cur)
			// Further pairs after a moveto are implicit linetos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l', 'T', 't':
			p, ok := lx.pair()
			if !ok {
				return points
			}
			cur = offset(p)
			add(cur)
		case 'H', 'h':
			x, ok := lx.number()
			if !ok {
				return points
			}
			if rel {
				x += cur.X
			}
			cur = vec.Vec2{X: x, Y: cur.Y}
			add(cur)
		case 'V', 'v':
			y, ok := lx.number()
			if !ok {
				return points
			}
			if rel {
				y += cur.Y
			}
			cur = vec.Vec2{X: cur.X, Y: y}
			add(cur)
		case 'C', 'c':
			c1, ok1 := lx.pair()
			c2, ok2 := lx.pair()
			p, ok3 := lx.pair()
			if !ok1 || !ok2 || !ok3 {
				return points
			}
			add(offset(c1))
			add(offset(c2))
			cur = offset(p)
			add(cur)
		case 'S', 's', 'Q', 'q':
			c, ok1 := lx.pair()
			p, ok2 := lx.pair()
			if !ok1 || !ok2 {
				return points
			}
			add(offset(c))
			cur = offset(p)
			add(cur)
		case 'A', 'a':
			_, ok1 := lx.number()
			_, ok2 := lx.number()
			_, ok3 := lx.number()
			ok4 := lx.flag()
			ok5 := lx.flag()
			p, ok6 := lx.pair()
			if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
				return points
			}
			cur = offset(p)
			add(cur)
		default:
			return points
		}
	}
}

type pathLexer struct {
	s string
	i int
}

func (l *pathLexer) skipSeparators() {
	for l.i < len(l.s) {
		switch l.s[l.i] {
		case ' ', '\t', '\n', '\r', ',':
			l.i++
		default:
			return
		}
	}
}

func (l *pathLexer) more() bool {
	l.skipSeparators()
	return l.i < len(l.s)
}

func (l *pathLexer) command() (byte, bool) {
	l.skipSeparators()
	if l.i >= len(l.s) {
		return 0, false
	}
	switch c := l.s[l.i]; c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		l.i++
		return c, true
	}
	return 0, false
}

func (l *pathLexer) number() (float64, bool) {
	l.skipSeparators()
	start := l.i
	if l.i < len(l.s) && (l.s[l.i] == '+' || l.s[l.i] == '-') {
		l.i++
	}
	digits, dot := 0, false
	for l.i < len(l.s) {
		c := l.s[l.i]
		if c >= '0' && c <= '9' {
			digits++
			l.i++
			continue
		}
		if c == '.' && !dot {
			dot = true
			l.i++
			continue
		}
		break
	}
	if digits == 0 {
		l.i = start
		return 0, false
	}
	if l.i < len(l.s) && (l.s[l.i] == 'e' || l.s[l.i] == 'E') {
		j := l.i + 1
		if j < len(l.s) && (l.s[j] == '+' || l.s[j] == '-') {
			j++
		}
		if j < len(l.s) && l.s[j] >= '0' && l.s[j] <= '9' {
			for j < len(l.s) && l.s[j] >= '0' && l.s[j] <= '9' {
				j++
			}
			l.i = j
		}
	}
	f, err := strconv.ParseFloat(l.s[start:l.i], 64)
	if err != nil {
		l.i = start
		return 0, false
	}
	return f, true
}

func (l *pathLexer) pair() (vec.Vec2, bool) {
	x, ok := l.number()
	if !ok {
		return vec.Vec2{}, false
	}
	y, ok := l.number()
	if !ok {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: x, Y: y}, true
}

// flag reads an arc flag, which may be written without separators.
func (l *pathLexer) flag() bool {
	l.skipSeparators()
	if l.i < len(l.s) && (l.s[l.i] == '0' || l.s[l.i] == '1') {
		l.i++
		return true
	}
	return false
}
