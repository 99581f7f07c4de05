package match

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/pitch-grid/internal/grid"
	"github.com/Garsondee/pitch-grid/internal/render"
)

var (
	homeColor = color.RGBA{R: 210, G: 60, B: 50, A: 255}
	awayColor = color.RGBA{R: 50, G: 90, B: 210, A: 255}
	ballColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

// View draws match snapshots: the shared pitch background, players and the
// ball. It is a simpler consumer of the same pitch geometry than the grid
// overlay and keeps its own background cache.
type View struct {
	Width, Height int
	Style         render.Style
	ShowClock     bool

	cache *render.BackgroundCache
}

// NewView creates a view drawing at w x h pixels.
func NewView(w, h int, f render.SurfaceFactory) *View {
	return &View{
		Width:     w,
		Height:    h,
		Style:     render.DefaultStyle,
		ShowClock: true,
		cache:     render.NewBackgroundCache(f),
	}
}

// Cache exposes the background cache.
func (v *View) Cache() *render.BackgroundCache {
	return v.cache
}

// Draw renders s onto dst.
func (v *View) Draw(dst render.Canvas, s Snapshot) {
	fw, fh := float32(v.Width), float32(v.Height)
	v.cache.Draw(dst, v.Width, v.Height, func(bg render.Canvas) {
		bg.FillRect(0, 0, fw, fh, v.Style.Grass)
		render.DrawPitch(bg, fw, fh, v.Style.Line)
	})

	r := fh / 60
	if r < 3 {
		r = 3
	}
	for _, p := range s.Players {
		c := homeColor
		if p.Team == TeamAway {
			c = awayColor
		}
		x, y := v.toPixel(p.Pos)
		dst.FillCircle(x, y, r, c)
	}
	bx, by := v.toPixel(s.Ball)
	dst.FillCircle(bx, by, r*0.6, ballColor)

	if v.ShowClock {
		m := int(s.Clock.Minutes())
		sec := int(s.Clock.Seconds()) % 60
		dst.DrawText(fmt.Sprintf("%02d:%02d %s", m, sec, s.Phase), 4, 4, v.Style.Label)
	}
}

func (v *View) toPixel(p grid.Point) (float32, float32) {
	return float32(p.X) * float32(v.Width), float32(p.Y) * float32(v.Height)
}

// BallCell returns the grid cell currently occupied by the ball.
func BallCell(g grid.Grid, s Snapshot) grid.Cell {
	return g.CellAt(s.Ball)
}
