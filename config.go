package pathoffset

// JoinType specifies how convex corners of the offset contour are shaped.
// Concave corners always receive a single bisector point regardless of
// the configured join.
type JoinType int

const (
	// JoinMiter extends the corner to a sharp point, falling back to a
	// bevel when the point would exceed the miter limit.
	JoinMiter JoinType = iota
	// JoinBevel truncates the corner with a straight segment.
	JoinBevel
	// JoinRound rounds the corner with an arc.
	JoinRound
	// JoinSquare behaves like JoinBevel at interior joins; its distinct
	// shape applies only to open-path end caps.
	JoinSquare
)

// String returns the join type name.
func (j JoinType) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinBevel:
		return "bevel"
	case JoinRound:
		return "round"
	case JoinSquare:
		return "square"
	}
	return "unknown"
}

// EndType specifies how the ends of the path are treated.
type EndType int

const (
	// EndPolygon treats the path as a closed polygon, offsetting the
	// closing edge like any other.
	EndPolygon EndType = iota
	// EndJoined also treats the path as closed.
	EndJoined
	// EndButt leaves open-path ends flat at the endpoint.
	EndButt
	// EndSquare extends open-path ends by the offset distance.
	EndSquare
	// EndRound caps open-path ends with a half-turn arc.
	EndRound
)

// String returns the end type name.
func (e EndType) String() string {
	switch e {
	case EndPolygon:
		return "polygon"
	case EndJoined:
		return "joined"
	case EndButt:
		return "butt"
	case EndSquare:
		return "square"
	case EndRound:
		return "round"
	}
	return "unknown"
}

// Anchor is an optional normalized position along one bounding-box axis.
// Fraction 0 is the box minimum, 1 the maximum; values are not clamped.
type Anchor struct {
	Fraction float64
	Valid    bool
}

// AnchorAt returns a valid anchor at the given fraction.
func AnchorAt(fraction float64) Anchor {
	return Anchor{Fraction: fraction, Valid: true}
}

// Config defines how an offset contour is constructed.
// It follows the value-plus-With-methods pattern: the zero value is not
// useful, start from DefaultConfig.
type Config struct {
	// Join is the corner shape for convex corners. Default: JoinMiter
	Join JoinType

	// End is the end treatment. Default: EndPolygon
	End EndType

	// MiterLimit is the maximum ratio of the miter point's distance to
	// the offset amount before the join falls back to a bevel.
	// Default: 2.0
	MiterLimit float64

	// ArcTolerance is the maximum chordal deviation of round join and
	// cap arcs. Default: 0.25
	ArcTolerance float64

	// OriginX and OriginY optionally pin a bounding-box anchor point:
	// for each valid axis, the point at min + fraction*(max-min) of the
	// source shape keeps its absolute position in the offset result.
	OriginX Anchor
	OriginY Anchor
}

// DefaultConfig returns a Config with default settings.
func DefaultConfig() Config {
	return Config{
		Join:         JoinMiter,
		End:          EndPolygon,
		MiterLimit:   2.0,
		ArcTolerance: 0.25,
	}
}

// WithJoin returns a copy of the Config with the given join type.
func (c Config) WithJoin(j JoinType) Config {
	c.Join = j
	return c
}

// WithEnd returns a copy of the Config with the given end type.
func (c Config) WithEnd(e EndType) Config {
	c.End = e
	return c
}

// WithMiterLimit returns a copy of the Config with the given miter limit.
func (c Config) WithMiterLimit(limit float64) Config {
	c.MiterLimit = limit
	return c
}

// WithArcTolerance returns a copy of the Config with the given arc
// tolerance.
func (c Config) WithArcTolerance(tol float64) Config {
	c.ArcTolerance = tol
	return c
}

// WithOrigin returns a copy of the Config anchored on both axes.
func (c Config) WithOrigin(x, y float64) Config {
	c.OriginX = AnchorAt(x)
	c.OriginY = AnchorAt(y)
	return c
}

// WithOriginX returns a copy of the Config anchored on the X axis.
func (c Config) WithOriginX(x float64) Config {
	c.OriginX = AnchorAt(x)
	return c
}

// WithOriginY returns a copy of the Config anchored on the Y axis.
func (c Config) WithOriginY(y float64) Config {
	c.OriginY = AnchorAt(y)
	return c
}
