package pathoffset

import "math"

// FlattenTolerance is the maximum deviation between a Bezier curve and
// its polyline approximation, in user-space units. It is fixed: the
// configurable arc tolerance governs join and cap arcs, not curves.
const FlattenTolerance = 0.1

// maxFlattenDepth bounds the subdivision recursion. Pathological control
// points stop subdividing here and emit the endpoint as-is.
const maxFlattenDepth = 24

// Flatten converts a subpath into a polyline. Curves are subdivided
// until they satisfy the flatness tolerance; the polyline starts at the
// subpath's MoveTo point and contains one point per accepted segment.
func Flatten(sub Subpath) []Point {
	points := make([]Point, 0, 16)
	var current Point

	for _, elem := range sub.Elements {
		switch e := elem.(type) {
		case MoveTo:
			points = append(points, e.Point)
			current = e.Point
		case LineTo:
			points = append(points, e.Point)
			current = e.Point
		case QuadTo:
			q := QuadBez{P0: current, P1: e.Control, P2: e.Point}
			flattenCubic(q.Raise(), 0, &points)
			current = e.Point
		case CubicTo:
			c := CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			flattenCubic(c, 0, &points)
			current = e.Point
		}
	}
	return points
}

// flattenCubic recursively subdivides c at the midpoint until flat,
// appending only each accepted leaf's endpoint (the start point is the
// previous segment's end).
func flattenCubic(c CubicBez, depth int, points *[]Point) {
	if depth >= maxFlattenDepth || isFlat(c, FlattenTolerance) {
		*points = append(*points, c.P3)
		return
	}
	left, right := c.Subdivide()
	flattenCubic(left, depth+1, points)
	flattenCubic(right, depth+1, points)
}

// isFlat reports whether the cubic deviates from the chord P0-P3 by at
// most tol. Uses the control-polygon flatness test: with
// u = 3*P1 - 2*P0 - P3 and v = 3*P2 - 2*P3 - P0, the curve is flat when
// max(ux^2, vx^2) + max(uy^2, vy^2) <= 16*tol^2.
func isFlat(c CubicBez, tol float64) bool {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - 2*c.P3.X - c.P0.X
	vy := 3*c.P2.Y - 2*c.P3.Y - c.P0.Y
	return math.Max(ux*ux, vx*vx)+math.Max(uy*uy, vy*vy) <= 16*tol*tol
}
