// Package pathoffset computes geometric offsets of SVG paths.
//
// # Overview
//
// pathoffset takes an SVG path-data string and produces a new path at a
// signed perpendicular distance from the original: positive offsets expand
// the shape outward, negative offsets shrink it inward. Corner joins, end
// caps, and an optional fixed anchor point are configurable.
//
// # Quick Start
//
//	import "github.com/gogpu/pathoffset"
//
//	cfg := pathoffset.DefaultConfig().WithJoin(pathoffset.JoinRound)
//	out := pathoffset.ComputeOffsetPath("M 0 0 L 100 0 L 100 100 L 0 100 Z", 10, cfg)
//
// # Pipeline
//
// The computation is a single synchronous pass with no shared state:
//   - Parse: path data string to typed segments (parse.go)
//   - Flatten: Bezier curves to line segments within tolerance (flatten.go)
//   - Offset: fixed-point polygon offsetting with joins and caps (internal/clip)
//   - Serialize: offset contour back to path data (offset.go)
//
// # Boundary Contract
//
// Offsets that are not finite or smaller than 0.001 return the input
// unchanged. Inputs that collapse below three usable points at any stage
// return the empty string, the caller's convention for "hide this shape".
// Malformed path data never panics; unknown commands are skipped.
//
// # Coordinate System
//
// Uses standard SVG coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package pathoffset

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
