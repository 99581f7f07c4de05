package render

import (
	"image/color"
	"math"
)

// Canvas is a 2D drawing surface. All coordinates are pixels from the
// top-left corner. Ebiten images and headless RGBA images both implement it.
type Canvas interface {
	Size() (w, h int)
	Clear()
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h, width float32, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	// DrawText draws a single line with its top-left corner at (x, y).
	DrawText(s string, x, y int, c color.Color)
	// DrawCanvas composites src onto the canvas at the origin. src must come
	// from the same backend.
	DrawCanvas(src Canvas)
}

// SurfaceFactory allocates an off-screen canvas of the given size.
type SurfaceFactory func(w, h int) Canvas

// releaser is implemented by canvases holding resources that should be freed
// when a cache entry is replaced.
type releaser interface {
	Release()
}

// arcSegments is the number of straight segments used for a full circle.
const arcSegments = 48

// StrokeArc approximates an elliptical arc from angle a0 to a1 (radians,
// clockwise from +x in screen space) with straight segments.
func StrokeArc(dst Canvas, cx, cy, rx, ry float32, a0, a1 float64, width float32, c color.Color) {
	span := a1 - a0
	n := int(math.Ceil(math.Abs(span) / (2 * math.Pi) * arcSegments))
	if n < 2 {
		n = 2
	}
	px := cx + rx*float32(math.Cos(a0))
	py := cy + ry*float32(math.Sin(a0))
	for i := 1; i <= n; i++ {
		a := a0 + span*float64(i)/float64(n)
		x := cx + rx*float32(math.Cos(a))
		y := cy + ry*float32(math.Sin(a))
		dst.StrokeLine(px, py, x, y, width, c)
		px, py = x, y
	}
}
