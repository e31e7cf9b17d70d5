package clip

import "math"

// JoinType specifies the convex corner treatment.
// These mirror the public enums; the root package converts.
type JoinType int

const (
	JoinMiter JoinType = iota
	JoinBevel
	JoinRound
	JoinSquare
)

// EndType specifies the path end treatment.
type EndType int

const (
	EndPolygon EndType = iota
	EndJoined
	EndButt
	EndSquare
	EndRound
)

// defaultArcTolerance replaces non-positive arc tolerances, in scaled
// units (0.25 user-space units).
const defaultArcTolerance = 0.25 * Scale

// degenerateEps is the tolerance under which edges count as parallel.
const degenerateEps = 1e-6

// Offsetter computes the offset contour of a normalized polygon.
// Configure the exported fields, then call Execute; the zero value
// offsets with miter joins and polygon ends but no miter limit, so
// callers normally set every field.
type Offsetter struct {
	Join       JoinType
	End        EndType
	MiterLimit float64
	// ArcTolerance is the maximum chordal deviation of round arcs, in
	// scaled units. Values <= 0 fall back to the default; values above
	// |delta| are clamped so the step formula stays in domain.
	ArcTolerance float64

	delta   float64
	arcStep float64 // angular step between round-arc points
	dest    Polygon
}

// Execute offsets src by delta scaled units. Positive delta expands,
// negative shrinks. For closed end types every vertex is offset,
// including across the closing edge; for open end types only interior
// vertices are offset and the endpoints receive caps. Returns nil when
// the contour collapses.
func (o *Offsetter) Execute(src Polygon, delta float64) Polygon {
	n := len(src)
	if n < 3 || delta == 0 {
		return nil
	}
	o.delta = delta
	o.arcStep = o.roundStep()
	o.dest = make(Polygon, 0, n*2)

	closed := o.End == EndPolygon || o.End == EndJoined

	// Unit direction of edge j, running src[j] -> src[j+1].
	edges := make([]vec, n)
	for j := 0; j < n-1; j++ {
		edges[j] = unitDir(src[j], src[j+1])
	}

	if closed {
		edges[n-1] = unitDir(src[n-1], src[0])
		first := make([]int, n)
		for j := 0; j < n; j++ {
			k := (j + n - 1) % n
			first[j] = len(o.dest)
			o.offsetVertex(src[j], edges[k], edges[j])
		}
		if o.delta < 0 && o.collapsed(src, edges, first) {
			return nil
		}
		return o.dest
	}

	o.capStart(src[0], edges[0])
	for j := 1; j < n-1; j++ {
		o.offsetVertex(src[j], edges[j-1], edges[j])
	}
	o.capEnd(src[n-1], edges[n-2])
	return o.dest
}

// collapsed reports whether an inward offset has consumed the contour.
// Two signatures mark a collapse: the winding of the result flips, or
// the offset image of the longest source edge runs opposite to the
// edge itself. A pure inversion, such as a square shrunk past its
// inradius, preserves winding but reverses its edges, so both checks
// are needed. first[j] is the dest index of vertex j's first point.
func (o *Offsetter) collapsed(src Polygon, edges []vec, first []int) bool {
	if Area(o.dest) > 0 {
		return true
	}
	n := len(src)
	longest, best := 0, -1.0
	for j := 0; j < n; j++ {
		k := (j + 1) % n
		dx := float64(src[k].X - src[j].X)
		dy := float64(src[k].Y - src[j].Y)
		if l := dx*dx + dy*dy; l > best {
			best = l
			longest = j
		}
	}
	// The offset image of edge j runs from the last point emitted for
	// vertex j to the first point emitted for vertex j+1.
	k := (longest + 1) % n
	a := o.dest[(first[k]+len(o.dest)-1)%len(o.dest)]
	b := o.dest[first[k]]
	seg := vec{float64(b.X - a.X), float64(b.Y - a.Y)}
	return seg.dot(edges[longest]) < 0
}

// roundStep derives the angular step of round arcs from the chordal
// deviation bound: step = 2*acos(1 - tol/|delta|).
func (o *Offsetter) roundStep() float64 {
	tol := o.ArcTolerance
	if tol <= 0 {
		tol = defaultArcTolerance
	}
	if r := math.Abs(o.delta); tol > r {
		tol = r
	}
	return 2 * math.Acos(1-tol/math.Abs(o.delta))
}

func (o *Offsetter) emit(v Point, d vec) {
	o.dest = append(o.dest, Point{v.X + Round(d.X), v.Y + Round(d.Y)})
}

// offsetVertex offsets vertex v between incoming edge e1 and outgoing
// edge e2. The corner is convex when the offset side is the outside of
// the turn; only convex corners dispatch on the join type.
func (o *Offsetter) offsetVertex(v Point, e1, e2 vec) {
	sign := 1.0
	if o.delta < 0 {
		sign = -1
	}
	if e1.cross(e2)*sign <= degenerateEps {
		// Concave or near-parallel: a single bisector point prevents
		// self-intersecting notches regardless of join type.
		o.emitBisector(v, outNormal(e1), outNormal(e2))
		return
	}
	n1, n2 := outNormal(e1), outNormal(e2)
	switch o.Join {
	case JoinMiter:
		if !o.emitMiter(v, n1, n2) {
			o.emitBevel(v, n1, n2)
		}
	case JoinBevel, JoinSquare:
		// Square is distinct only at open-path end caps.
		o.emitBevel(v, n1, n2)
	case JoinRound:
		o.emitArc(v, n1.scale(o.delta), n2.scale(o.delta))
	}
}

// emitBisector emits the single corner point along the normalized
// bisector of the two outward normals, at distance delta over the
// cosine of the half angle. Parallel edges fall back to projecting
// along the first normal alone.
func (o *Offsetter) emitBisector(v Point, n1, n2 vec) {
	m := n1.add(n2)
	if l := m.length(); l > degenerateEps {
		m = m.scale(1 / l)
		if denom := n1.dot(m); math.Abs(denom) > degenerateEps {
			o.emit(v, m.scale(o.delta/denom))
			return
		}
	}
	o.emit(v, n1.scale(o.delta))
}

// emitMiter emits the bisector point when it lies within
// MiterLimit*|delta| of the vertex, reporting false when the join must
// fall back to a bevel.
func (o *Offsetter) emitMiter(v Point, n1, n2 vec) bool {
	m := n1.add(n2)
	l := m.length()
	if l <= degenerateEps {
		return false
	}
	m = m.scale(1 / l)
	denom := n1.dot(m)
	// The miter point sits at |delta|/denom from the vertex.
	if denom <= degenerateEps || 1/denom > o.MiterLimit {
		return false
	}
	o.emit(v, m.scale(o.delta/denom))
	return true
}

func (o *Offsetter) emitBevel(v Point, n1, n2 vec) {
	o.emit(v, n1.scale(o.delta))
	o.emit(v, n2.scale(o.delta))
}

// emitArc emits an arc around v from offset direction d1 to d2 at
// radius |delta|, sweeping the shorter way around.
func (o *Offsetter) emitArc(v Point, d1, d2 vec) {
	a1 := math.Atan2(d1.Y, d1.X)
	sweep := math.Atan2(d2.Y, d2.X) - a1
	if sweep <= -math.Pi {
		sweep += 2 * math.Pi
	} else if sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	o.arc(v, a1, sweep)
}

// arc emits points at equal angular increments from the start angle
// through the full sweep, endpoints inclusive.
func (o *Offsetter) arc(v Point, from, sweep float64) {
	steps := int(math.Ceil(math.Abs(sweep) / o.arcStep))
	if steps < 2 {
		steps = 2
	}
	r := math.Abs(o.delta)
	for i := 0; i <= steps; i++ {
		a := from + sweep*float64(i)/float64(steps)
		o.emit(v, vec{r * math.Cos(a), r * math.Sin(a)})
	}
}

// halfTurn is the cap arc sweep, signed so the arc bulges past the
// endpoint rather than back over the path.
func (o *Offsetter) halfTurn() float64 {
	if o.delta < 0 {
		return -math.Pi
	}
	return math.Pi
}

// capStart emits the cap at the first point of an open path, ahead of
// the interior vertex loop. e is the first edge's unit direction.
func (o *Offsetter) capStart(v Point, e vec) {
	n := outNormal(e)
	switch o.End {
	case EndButt:
		o.emit(v, n.scale(o.delta))
	case EndSquare:
		// Flat flag |delta| behind the start point.
		back := e.scale(-math.Abs(o.delta))
		o.emit(v, back)
		o.emit(v, n.scale(o.delta).add(back))
	case EndRound:
		d := n.scale(o.delta)
		o.arc(v, math.Atan2(-d.Y, -d.X), o.halfTurn())
	}
}

// capEnd emits the cap at the last point of an open path. e is the last
// edge's unit direction.
func (o *Offsetter) capEnd(v Point, e vec) {
	n := outNormal(e)
	switch o.End {
	case EndButt:
		o.emit(v, n.scale(o.delta))
	case EndSquare:
		// Flat flag |delta| beyond the end point.
		fwd := e.scale(math.Abs(o.delta))
		o.emit(v, n.scale(o.delta).add(fwd))
		o.emit(v, fwd)
	case EndRound:
		d := n.scale(o.delta)
		o.arc(v, math.Atan2(d.Y, d.X), o.halfTurn())
	}
}
