package pathoffset

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing, starting a new subpath.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path. All coordinates are absolute;
// relative path commands are resolved during parsing.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath. No point is emitted; the closing
// edge back to the subpath start is implied.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Subpath is an ordered run of path elements beginning with a MoveTo,
// plus a flag recording whether the run ended with an explicit close.
type Subpath struct {
	Elements []PathElement
	Closed   bool
}

// Subpaths splits the path into its subpaths. Each subpath starts at a
// MoveTo; elements preceding the first MoveTo have no start point and
// are dropped. A path without any MoveTo yields no subpaths.
func (p *Path) Subpaths() []Subpath {
	var subs []Subpath
	var cur []PathElement
	flush := func(closed bool) {
		if len(cur) > 0 {
			subs = append(subs, Subpath{Elements: cur, Closed: closed})
			cur = nil
		}
	}
	for _, elem := range p.elements {
		switch elem.(type) {
		case MoveTo:
			flush(false)
			cur = append(cur, elem)
		case Close:
			flush(true)
		default:
			if cur != nil {
				cur = append(cur, elem)
			}
		}
	}
	flush(false)
	return subs
}
