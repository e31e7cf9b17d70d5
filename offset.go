package pathoffset

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/pathoffset/internal/clip"
)

// MinOffset is the magnitude below which an offset is treated as too
// small to matter and the input is returned unchanged.
const MinOffset = 0.001

// ComputeOffsetPath parses pathData, offsets it by the given distance
// and returns the result as path data. Positive offsets expand the
// shape, negative offsets shrink it.
//
// Offsets that are not finite or smaller than MinOffset return pathData
// unchanged. If the shape yields fewer than three usable points at any
// stage, or fully collapses under the offset, the empty string is
// returned.
func ComputeOffsetPath(pathData string, offset float64, cfg Config) string {
	if math.IsNaN(offset) || math.IsInf(offset, 0) || math.Abs(offset) < MinOffset {
		return pathData
	}
	return OffsetPath(ParseSVGPath(pathData), offset, cfg)
}

// OffsetPath offsets an already-built path, returning the contour as
// path data. Only the first subpath is offset; shapes with holes are
// out of scope. Small or non-finite offsets serialize the flattened
// input contour unchanged.
func OffsetPath(p *Path, offset float64, cfg Config) string {
	subs := p.Subpaths()
	if len(subs) == 0 {
		return ""
	}
	pts := Flatten(subs[0])

	raw := make(clip.Polygon, len(pts))
	for i, pt := range pts {
		raw[i] = clip.Point{
			X: clip.Round(pt.X * clip.Scale),
			Y: clip.Round(pt.Y * clip.Scale),
		}
	}
	poly, ok := clip.Normalize(raw)
	if !ok {
		Logger().Debug("offset input degenerate", "points", len(raw))
		return ""
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) || math.Abs(offset) < MinOffset {
		return serialize(poly)
	}

	off := clip.Offsetter{
		Join:         joinKind(cfg.Join),
		End:          endKind(cfg.End),
		MiterLimit:   cfg.MiterLimit,
		ArcTolerance: cfg.ArcTolerance * clip.Scale,
	}
	out := off.Execute(poly, offset*clip.Scale)
	if len(out) < 3 {
		Logger().Debug("offset contour collapsed",
			"offset", offset, "sourcePoints", len(poly))
		return ""
	}
	if cfg.OriginX.Valid || cfg.OriginY.Valid {
		reanchor(poly, out, cfg)
	}
	return serialize(out)
}

// reanchor translates dst so that, per configured axis, the anchor
// point of the source bounding box keeps its absolute position.
func reanchor(src, dst clip.Polygon, cfg Config) {
	sb, db := clip.BoundsOf(src), clip.BoundsOf(dst)
	var dx, dy int64
	if cfg.OriginX.Valid {
		dx = clip.Round(sb.AnchorX(cfg.OriginX.Fraction) - db.AnchorX(cfg.OriginX.Fraction))
	}
	if cfg.OriginY.Valid {
		dy = clip.Round(sb.AnchorY(cfg.OriginY.Fraction) - db.AnchorY(cfg.OriginY.Fraction))
	}
	dst.Translate(dx, dy)
}

func joinKind(j JoinType) clip.JoinType {
	switch j {
	case JoinBevel:
		return clip.JoinBevel
	case JoinRound:
		return clip.JoinRound
	case JoinSquare:
		return clip.JoinSquare
	default:
		return clip.JoinMiter
	}
}

func endKind(e EndType) clip.EndType {
	switch e {
	case EndJoined:
		return clip.EndJoined
	case EndButt:
		return clip.EndButt
	case EndSquare:
		return clip.EndSquare
	case EndRound:
		return clip.EndRound
	default:
		return clip.EndPolygon
	}
}

// serialize renders scaled points as path data, "M x0 y0 L x1 y1 ... Z",
// with coordinates divided back to user space at two decimals. The
// contour is always closed for rendering purposes.
func serialize(p clip.Polygon) string {
	var b strings.Builder
	b.Grow(len(p)*16 + 1)
	for i, pt := range p {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString("L ")
		}
		b.WriteString(formatCoord(pt.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(pt.Y))
		b.WriteByte(' ')
	}
	b.WriteString("Z")
	return b.String()
}

func formatCoord(v int64) string {
	return strconv.FormatFloat(float64(v)/clip.Scale, 'f', 2, 64)
}
