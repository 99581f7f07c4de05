package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RGBACanvas is a CPU canvas backed by *image.RGBA. Shapes are rasterised
// with golang.org/x/image/vector and composited with draw.Over.
type RGBACanvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewRGBACanvas allocates a transparent canvas. It satisfies SurfaceFactory.
func NewRGBACanvas(w, h int) Canvas {
	return &RGBACanvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(w, h),
	}
}

// Image exposes the backing image.
func (c *RGBACanvas) Image() *image.RGBA {
	return c.img
}

// EncodePNG writes the canvas as a PNG.
func (c *RGBACanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *RGBACanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *RGBACanvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (c *RGBACanvas) FillRect(x, y, w, h float32, clr color.Color) {
	c.fillPolygon(clr, x, y, x+w, y, x+w, y+h, x, y+h)
}

func (c *RGBACanvas) StrokeRect(x, y, w, h, width float32, clr color.Color) {
	c.StrokeLine(x, y, x+w, y, width, clr)
	c.StrokeLine(x+w, y, x+w, y+h, width, clr)
	c.StrokeLine(x+w, y+h, x, y+h, width, clr)
	c.StrokeLine(x, y+h, x, y, width, clr)
}

func (c *RGBACanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	// Offset perpendicular to the line by half the width.
	nx := -dy / l * width / 2
	ny := dx / l * width / 2
	c.fillPolygon(clr, x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, x0-nx, y0-ny)
}

func (c *RGBACanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	pts := make([]float32, 0, arcSegments*2)
	for i := 0; i < arcSegments; i++ {
		a := 2 * math.Pi * float64(i) / arcSegments
		pts = append(pts, cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)))
	}
	c.fillPolygon(clr, pts...)
}

func (c *RGBACanvas) DrawText(s string, x, y int, clr color.Color) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (c *RGBACanvas) DrawCanvas(src Canvas) {
	s, ok := src.(*RGBACanvas)
	if !ok {
		return
	}
	draw.Draw(c.img, s.img.Bounds(), s.img, image.Point{}, draw.Over)
}

// fillPolygon fills the closed polygon given as x,y pairs.
func (c *RGBACanvas) fillPolygon(clr color.Color, pts ...float32) {
	if len(pts) < 6 {
		return
	}
	w, h := c.Size()
	c.ras.Reset(w, h)
	c.ras.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		c.ras.LineTo(pts[i], pts[i+1])
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{})
}
