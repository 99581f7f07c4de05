package render

import (
	"image/color"

	"github.com/Garsondee/pitch-grid/internal/grid"
)

// ColoredCell is an explicit per-cell colour override.
type ColoredCell struct {
	Cell  grid.Cell
	Color color.Color
}

// Style holds the colours used by the overlay renderer.
type Style struct {
	Grass       color.RGBA
	GrassStripe color.RGBA
	Line        color.RGBA
	GridLine    color.RGBA
	Mapped      color.RGBA // shared by mapped and pending cells
	Highlight   color.RGBA
	Label       color.RGBA
}

// DefaultStyle is the stock pitch palette.
var DefaultStyle = Style{
	Grass:       color.RGBA{R: 38, G: 110, B: 46, A: 255},
	GrassStripe: color.RGBA{R: 44, G: 122, B: 52, A: 255},
	Line:        color.RGBA{R: 235, G: 240, B: 235, A: 230},
	GridLine:    color.RGBA{R: 0, G: 0, B: 0, A: 50},
	Mapped:      color.RGBA{R: 40, G: 120, B: 230, A: 90},
	Highlight:   color.RGBA{R: 255, G: 210, B: 40, A: 120},
	Label:       color.RGBA{R: 255, G: 255, B: 255, A: 200},
}

// grassStripes is the number of mowing stripes across the pitch length.
const grassStripes = 12

// Frame is the per-frame input of an OverlayRenderer.
type Frame struct {
	CellW, CellH float32

	// Colored takes total precedence: when non-empty, Mapped and Pending
	// are not drawn.
	Colored []ColoredCell
	Mapped  []grid.Cell
	Pending []grid.Cell

	Highlight  *grid.Cell
	ShowLabels bool
}

// OverlayRenderer draws the grid view: the cached static background followed
// by the dynamic cell overlays, in a fixed z-order.
type OverlayRenderer struct {
	Grid      grid.Grid
	Style     Style
	GridLines bool

	cache *BackgroundCache
}

// NewOverlayRenderer creates a renderer for g. The grid is fixed for the
// renderer's lifetime; build a new renderer to change it.
func NewOverlayRenderer(g grid.Grid, f SurfaceFactory, gridLines bool) *OverlayRenderer {
	return &OverlayRenderer{
		Grid:      g,
		Style:     DefaultStyle,
		GridLines: gridLines,
		cache:     NewBackgroundCache(f),
	}
}

// Cache exposes the background cache.
func (r *OverlayRenderer) Cache() *BackgroundCache {
	return r.cache
}

// PixelSize returns the surface size for the given cell size.
func (r *OverlayRenderer) PixelSize(cellW, cellH float32) (int, int) {
	return int(cellW * float32(r.Grid.Cols)), int(cellH * float32(r.Grid.Rows))
}

// Draw renders one frame onto dst:
//  1. cached background (grass, pitch lines, grid lines)
//  2. coloured cells, or else mapped and pending cells in one shared colour
//  3. the highlight cell
//  4. row and column labels
func (r *OverlayRenderer) Draw(dst Canvas, f Frame) {
	w, h := r.PixelSize(f.CellW, f.CellH)
	r.cache.Draw(dst, w, h, func(bg Canvas) {
		r.buildBackground(bg, w, h, f.CellW, f.CellH)
	})

	if len(f.Colored) > 0 {
		for _, cc := range f.Colored {
			r.fillCell(dst, cc.Cell, f, cc.Color)
		}
	} else {
		for _, c := range f.Mapped {
			r.fillCell(dst, c, f, r.Style.Mapped)
		}
		for _, c := range f.Pending {
			r.fillCell(dst, c, f, r.Style.Mapped)
		}
	}

	if f.Highlight != nil {
		r.fillCell(dst, *f.Highlight, f, r.Style.Highlight)
	}

	if f.ShowLabels {
		for row := 0; row < r.Grid.Rows; row++ {
			dst.DrawText(grid.RowLabel(row), 2, int(float32(row)*f.CellH)+1, r.Style.Label)
		}
		for col := 0; col < r.Grid.Cols; col++ {
			dst.DrawText(grid.ColLabel(col), int(float32(col)*f.CellW)+2, 1, r.Style.Label)
		}
	}
}

func (r *OverlayRenderer) fillCell(dst Canvas, c grid.Cell, f Frame, clr color.Color) {
	if !r.Grid.Contains(c) {
		return
	}
	dst.FillRect(float32(c.C)*f.CellW, float32(c.R)*f.CellH, f.CellW, f.CellH, clr)
}

func (r *OverlayRenderer) buildBackground(bg Canvas, w, h int, cellW, cellH float32) {
	fw, fh := float32(w), float32(h)
	bg.FillRect(0, 0, fw, fh, r.Style.Grass)
	stripe := fw / grassStripes
	for i := 1; i < grassStripes; i += 2 {
		bg.FillRect(float32(i)*stripe, 0, stripe, fh, r.Style.GrassStripe)
	}

	DrawPitch(bg, fw, fh, r.Style.Line)

	if r.GridLines {
		for c := 1; c < r.Grid.Cols; c++ {
			x := float32(c) * cellW
			bg.StrokeLine(x, 0, x, fh, 1, r.Style.GridLine)
		}
		for row := 1; row < r.Grid.Rows; row++ {
			y := float32(row) * cellH
			bg.StrokeLine(0, y, fw, y, 1, r.Style.GridLine)
		}
	}
}
