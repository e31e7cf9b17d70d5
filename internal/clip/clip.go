// Package clip implements fixed-point polygon offsetting.
//
// Coordinates are integers obtained by scaling user-space values by
// Scale and rounding, which keeps the offset arithmetic free of
// floating-point drift. Polygons are normalized so that each directed
// edge's outward normal is (dy, -dx) of its unit direction; the engine
// offsets every vertex along corner bisectors or join geometry.
package clip

import "math"

// Scale is the fixed factor between user space and integer space.
const Scale = 1000

// Point is a point in integer scaled space.
type Point struct {
	X, Y int64
}

// Polygon is an ordered sequence of scaled points.
type Polygon []Point

// Round rounds half away from zero, matching the precision contract of
// the offset arithmetic.
func Round(value float64) int64 {
	if value < 0 {
		return int64(value - 0.5)
	}
	return int64(value + 0.5)
}

// Area returns the signed area sum of the polygon:
// sum of (x[i+1]-x[i])*(y[i+1]+y[i]) over all edges including the
// closing one. A positive sum means the winding must be reversed before
// offsetting.
func Area(p Polygon) float64 {
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += float64(p[j].X-p[i].X) * float64(p[j].Y+p[i].Y)
	}
	return sum
}

// Reverse reverses the point order in place.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Normalize prepares a raw point sequence for offsetting: consecutive
// duplicate points and a trailing point equal to the first are dropped,
// and the winding is normalized so the offset engine's outward normals
// point outward. Reports false if fewer than three points remain.
func Normalize(p Polygon) (Polygon, bool) {
	out := make(Polygon, 0, len(p))
	for _, pt := range p {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil, false
	}
	if Area(out) > 0 {
		out.Reverse()
	}
	return out, true
}

// Bounds is an axis-aligned bounding box in scaled space.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int64
}

// BoundsOf returns the bounding box of the points.
func BoundsOf(p Polygon) Bounds {
	b := Bounds{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}
	for _, pt := range p[1:] {
		if pt.X < b.MinX {
			b.MinX = pt.X
		}
		if pt.X > b.MaxX {
			b.MaxX = pt.X
		}
		if pt.Y < b.MinY {
			b.MinY = pt.Y
		}
		if pt.Y > b.MaxY {
			b.MaxY = pt.Y
		}
	}
	return b
}

// AnchorX returns the X coordinate at the given fraction across the box.
func (b Bounds) AnchorX(fraction float64) float64 {
	return float64(b.MinX) + fraction*float64(b.MaxX-b.MinX)
}

// AnchorY returns the Y coordinate at the given fraction down the box.
func (b Bounds) AnchorY(fraction float64) float64 {
	return float64(b.MinY) + fraction*float64(b.MaxY-b.MinY)
}

// Translate shifts every point by (dx, dy) in place.
func (p Polygon) Translate(dx, dy int64) {
	for i := range p {
		p[i].X += dx
		p[i].Y += dy
	}
}

// vec is a float vector used for unit edge directions and normals.
type vec struct {
	X, Y float64
}

func (v vec) add(w vec) vec       { return vec{v.X + w.X, v.Y + w.Y} }
func (v vec) scale(s float64) vec { return vec{v.X * s, v.Y * s} }
func (v vec) dot(w vec) float64   { return v.X*w.X + v.Y*w.Y }
func (v vec) cross(w vec) float64 { return v.X*w.Y - v.Y*w.X }
func (v vec) length() float64     { return math.Hypot(v.X, v.Y) }

// unitDir returns the unit direction from a to b, or the zero vector for
// coincident points.
func unitDir(a, b Point) vec {
	d := vec{float64(b.X - a.X), float64(b.Y - a.Y)}
	l := d.length()
	if l == 0 {
		return vec{}
	}
	return d.scale(1 / l)
}

// outNormal returns the outward normal of a unit edge direction for a
// polygon in normalized winding.
func outNormal(e vec) vec {
	return vec{e.Y, -e.X}
}
