package pathoffset

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// ParseSVGPath parses SVG path data into a Path. Supported commands are
// M, L, H, V, C, Q and Z in absolute and relative form; relative
// coordinates are resolved against the running current point. After a
// Move, further coordinate pairs are implicit LineTo commands. Unknown
// command letters and stray characters are skipped; the parser never
// fails. Input without a valid Move yields a path with no subpaths.
func ParseSVGPath(data string) *Path {
	p := NewPath()
	s := pathScanner{data: []byte(data)}
	var cmd byte
	for {
		s.skipSeparators()
		if s.done() {
			break
		}
		if c := s.peek(); isCommandLetter(c) {
			cmd = c
			s.i++
			if cmd == 'Z' || cmd == 'z' {
				p.Close()
				cmd = 0
			}
			continue
		}
		cur := p.CurrentPoint()
		switch cmd {
		case 'M', 'm':
			x, okx := s.number()
			y, oky := s.number()
			if !okx || !oky {
				s.i++
				continue
			}
			if cmd == 'm' {
				x += cur.X
				y += cur.Y
			}
			p.MoveTo(x, y)
			// Coordinate pairs following a Move are lines.
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			x, okx := s.number()
			y, oky := s.number()
			if !okx || !oky {
				s.i++
				continue
			}
			if cmd == 'l' {
				x += cur.X
				y += cur.Y
			}
			p.LineTo(x, y)
		case 'H', 'h':
			x, ok := s.number()
			if !ok {
				s.i++
				continue
			}
			if cmd == 'h' {
				x += cur.X
			}
			p.LineTo(x, cur.Y)
		case 'V', 'v':
			y, ok := s.number()
			if !ok {
				s.i++
				continue
			}
			if cmd == 'v' {
				y += cur.Y
			}
			p.LineTo(cur.X, y)
		case 'C', 'c':
			c1x, ok1 := s.number()
			c1y, ok2 := s.number()
			c2x, ok3 := s.number()
			c2y, ok4 := s.number()
			x, ok5 := s.number()
			y, ok6 := s.number()
			if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
				s.i++
				continue
			}
			if cmd == 'c' {
				c1x += cur.X
				c1y += cur.Y
				c2x += cur.X
				c2y += cur.Y
				x += cur.X
				y += cur.Y
			}
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case 'Q', 'q':
			cx, ok1 := s.number()
			cy, ok2 := s.number()
			x, ok3 := s.number()
			y, ok4 := s.number()
			if !ok1 || !ok2 || !ok3 || !ok4 {
				s.i++
				continue
			}
			if cmd == 'q' {
				cx += cur.X
				cy += cur.Y
				x += cur.X
				y += cur.Y
			}
			p.QuadraticTo(cx, cy, x, y)
		default:
			// Coordinate data with no usable command, or an
			// unsupported command's arguments: skip one character.
			s.i++
		}
	}
	return p
}

func isCommandLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// pathScanner walks path data byte by byte.
type pathScanner struct {
	data []byte
	i    int
}

func (s *pathScanner) done() bool {
	return s.i >= len(s.data)
}

func (s *pathScanner) peek() byte {
	return s.data[s.i]
}

// skipSeparators advances past whitespace and commas.
func (s *pathScanner) skipSeparators() {
	for s.i < len(s.data) {
		switch s.data[s.i] {
		case ' ', ',', '\n', '\r', '\t':
			s.i++
		default:
			return
		}
	}
}

// number parses the next number, skipping any leading separators.
// Reports false if the following text is not a number.
func (s *pathScanner) number() (float64, bool) {
	s.skipSeparators()
	f, n := strconv.ParseFloat(s.data[s.i:])
	if n == 0 {
		return 0, false
	}
	s.i += n
	return f, true
}
