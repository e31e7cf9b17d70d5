package pathoffset

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squarePath = "M 0 0 L 100 0 L 100 100 L 0 100 Z"

func TestComputeOffsetPathIdentity(t *testing.T) {
	cfg := DefaultConfig()
	for _, offset := range []float64{0, 0.0005, -0.0005, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, squarePath, ComputeOffsetPath(squarePath, offset, cfg),
			"offset %v must be an identity", offset)
	}
}

func TestComputeOffsetPathBevelSquare(t *testing.T) {
	cfg := DefaultConfig().WithJoin(JoinBevel)
	got := ComputeOffsetPath(squarePath, 10, cfg)
	want := "M -10.00 0.00 L 0.00 -10.00 L 100.00 -10.00 L 110.00 0.00 " +
		"L 110.00 100.00 L 100.00 110.00 L 0.00 110.00 L -10.00 100.00 Z"
	assert.Equal(t, want, got)
}

func TestComputeOffsetPathMiterSquare(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t,
		"M -5.00 -5.00 L 105.00 -5.00 L 105.00 105.00 L -5.00 105.00 Z",
		ComputeOffsetPath(squarePath, 5, cfg))
	assert.Equal(t,
		"M 5.00 5.00 L 95.00 5.00 L 95.00 95.00 L 5.00 95.00 Z",
		ComputeOffsetPath(squarePath, -5, cfg))
}

func TestComputeOffsetPathWindingNormalized(t *testing.T) {
	// The same square wound the other way: the contour is reversed to
	// the canonical winding before offsetting, so a positive offset
	// still expands.
	cw := "M 0 0 L 0 100 L 100 100 L 100 0 Z"
	got := ComputeOffsetPath(cw, 10, DefaultConfig())
	assert.Equal(t,
		"M 110.00 -10.00 L 110.00 110.00 L -10.00 110.00 L -10.00 -10.00 Z",
		got)
}

func TestComputeOffsetPathCollapse(t *testing.T) {
	assert.Empty(t, ComputeOffsetPath(squarePath, -60, DefaultConfig()),
		"inward offset past the inradius must collapse to the empty sentinel")
}

func TestComputeOffsetPathDegenerate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, ComputeOffsetPath("", 10, cfg))
	assert.Empty(t, ComputeOffsetPath("M 0 0 L 10 10 Z", 10, cfg), "two points")
	assert.Empty(t, ComputeOffsetPath("M 5 5", 10, cfg), "single point")
}

func TestComputeOffsetPathRoundJoin(t *testing.T) {
	cfg := DefaultConfig().WithJoin(JoinRound)
	got := ComputeOffsetPath(squarePath, 10, cfg)
	require.NotEmpty(t, got)
	// Four quarter arcs of 4 steps each: 20 points, 1 M and 19 L.
	assert.Equal(t, 19, strings.Count(got, "L "))
	assert.True(t, strings.HasSuffix(got, "Z"))
}

func TestComputeOffsetPathOpenButt(t *testing.T) {
	cfg := DefaultConfig().WithJoin(JoinBevel).WithEnd(EndButt)
	got := ComputeOffsetPath("M 0 0 L 100 0 L 100 100", 10, cfg)
	assert.Equal(t, "M 0.00 -10.00 L 100.00 -10.00 L 110.00 0.00 L 110.00 100.00 Z", got)
}

func TestComputeOffsetPathAnchored(t *testing.T) {
	// Anchor the bottom-center of the bounding box: the result keeps
	// x centered and its bottom edge at y=100.
	cfg := DefaultConfig().WithOrigin(0.5, 1.0)
	got := ComputeOffsetPath(squarePath, 10, cfg)
	assert.Equal(t,
		"M -10.00 -20.00 L 110.00 -20.00 L 110.00 100.00 L -10.00 100.00 Z",
		got)
}

func TestComputeOffsetPathMonotonicBounds(t *testing.T) {
	grow := ComputeOffsetPath(squarePath, 5, DefaultConfig())
	shrink := ComputeOffsetPath(squarePath, -5, DefaultConfig())

	gb := pathBounds(t, grow)
	sb := pathBounds(t, shrink)
	ob := pathBounds(t, squarePath)

	assert.Less(t, gb[0], ob[0])
	assert.Less(t, gb[1], ob[1])
	assert.Greater(t, gb[2], ob[2])
	assert.Greater(t, gb[3], ob[3])

	assert.Greater(t, sb[0], ob[0])
	assert.Greater(t, sb[1], ob[1])
	assert.Less(t, sb[2], ob[2])
	assert.Less(t, sb[3], ob[3])
}

// pathBounds returns [minX, minY, maxX, maxY] of the path's polyline.
func pathBounds(t *testing.T, data string) [4]float64 {
	t.Helper()
	subs := ParseSVGPath(data).Subpaths()
	require.NotEmpty(t, subs)
	pts := Flatten(subs[0])
	require.NotEmpty(t, pts)
	b := [4]float64{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		b[0] = math.Min(b[0], p.X)
		b[1] = math.Min(b[1], p.Y)
		b[2] = math.Max(b[2], p.X)
		b[3] = math.Max(b[3], p.Y)
	}
	return b
}

func TestOffsetPathSmallOffsetSerializes(t *testing.T) {
	// Below the minimum offset OffsetPath still normalizes and
	// serializes the contour instead of echoing the input string.
	p := ParseSVGPath(squarePath)
	got := OffsetPath(p, 0.0001, DefaultConfig())
	assert.Equal(t, "M 0.00 0.00 L 100.00 0.00 L 100.00 100.00 L 0.00 100.00 Z", got)
}

func TestOffsetPathCurvedShape(t *testing.T) {
	// A curved blob survives the whole pipeline.
	blob := "M 0 0 C 0 60 40 60 40 0 Q 20 -30 0 0 Z"
	got := ComputeOffsetPath(blob, 4, DefaultConfig().WithJoin(JoinRound))
	require.NotEmpty(t, got)
	assert.True(t, strings.HasPrefix(got, "M "))
	assert.True(t, strings.HasSuffix(got, "Z"))
}
