package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// labelFace is the fixed 7x13 bitmap face used for grid labels.
var labelFace = text.NewGoXFace(basicfont.Face7x13)

// ImageCanvas adapts an *ebiten.Image to Canvas.
type ImageCanvas struct {
	Img *ebiten.Image
}

// NewImageCanvas allocates an off-screen Ebiten image. It satisfies
// SurfaceFactory.
func NewImageCanvas(w, h int) Canvas {
	return &ImageCanvas{Img: ebiten.NewImage(w, h)}
}

// WrapImage wraps an existing image, typically the screen.
func WrapImage(img *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{Img: img}
}

func (c *ImageCanvas) Size() (int, int) {
	b := c.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ImageCanvas) Clear() {
	c.Img.Clear()
}

func (c *ImageCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	vector.FillRect(c.Img, x, y, w, h, clr, false)
}

func (c *ImageCanvas) StrokeRect(x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(c.Img, x, y, w, h, width, clr, false)
}

func (c *ImageCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.Img, x0, y0, x1, y1, width, clr, true)
}

func (c *ImageCanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	vector.FillCircle(c.Img, cx, cy, r, clr, true)
}

func (c *ImageCanvas) DrawText(s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.Img, s, labelFace, op)
}

func (c *ImageCanvas) DrawCanvas(src Canvas) {
	s, ok := src.(*ImageCanvas)
	if !ok {
		return
	}
	c.Img.DrawImage(s.Img, &ebiten.DrawImageOptions{})
}

// Release frees the GPU image.
func (c *ImageCanvas) Release() {
	c.Img.Deallocate()
}
