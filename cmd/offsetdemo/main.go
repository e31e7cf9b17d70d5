// Command offsetdemo renders an SVG path and its offset contour to a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/pathoffset"
	"golang.org/x/image/vector"
)

func main() {
	var (
		pathData = flag.String("path", "M 60 60 L 260 60 L 260 260 L 60 260 Z", "SVG path data")
		offset   = flag.Float64("offset", 25, "offset distance (positive expands)")
		join     = flag.String("join", "round", "join type: miter|bevel|round|square")
		end      = flag.String("end", "polygon", "end type: polygon|joined|butt|square|round")
		miter    = flag.Float64("miter-limit", 2.0, "miter limit")
		arcTol   = flag.Float64("arc-tolerance", 0.25, "round arc tolerance")
		width    = flag.Int("width", 320, "image width")
		height   = flag.Int("height", 320, "image height")
		output   = flag.String("output", "offset.png", "output file")
	)
	flag.Parse()

	cfg := pathoffset.DefaultConfig().
		WithJoin(parseJoin(*join)).
		WithEnd(parseEnd(*end)).
		WithMiterLimit(*miter).
		WithArcTolerance(*arcTol)

	result := pathoffset.ComputeOffsetPath(*pathData, *offset, cfg)
	if result == "" {
		log.Fatal("shape collapsed under the requested offset")
	}
	log.Printf("offset path: %s", result)

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	// Offset contour behind, source shape on top.
	fill(img, result, color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0x90})
	fill(img, *pathData, color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xc0})

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)", *output, *width, *height)
}

// fill rasterizes the first subpath of the given path data.
func fill(dst *image.RGBA, pathData string, col color.RGBA) {
	subs := pathoffset.ParseSVGPath(pathData).Subpaths()
	if len(subs) == 0 {
		return
	}
	pts := pathoffset.Flatten(subs[0])
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		r.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(col), image.Point{})
}

func parseJoin(s string) pathoffset.JoinType {
	switch s {
	case "miter":
		return pathoffset.JoinMiter
	case "bevel":
		return pathoffset.JoinBevel
	case "round":
		return pathoffset.JoinRound
	case "square":
		return pathoffset.JoinSquare
	}
	log.Fatalf("unknown join type %q", s)
	return 0
}

func parseEnd(s string) pathoffset.EndType {
	switch s {
	case "polygon":
		return pathoffset.EndPolygon
	case "joined":
		return pathoffset.EndJoined
	case "butt":
		return pathoffset.EndButt
	case "square":
		return pathoffset.EndSquare
	case "round":
		return pathoffset.EndRound
	}
	log.Fatalf("unknown end type %q", s)
	return 0
}
