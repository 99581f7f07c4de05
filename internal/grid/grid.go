package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Grid is the discretisation of the pitch surface into cols x rows cells.
type Grid struct {
	Cols int
	Rows int
}

// Cell addresses one grid cell by column and row.
type Cell struct {
	C int
	R int
}

// Point is a normalised position on the pitch; [0,1] x [0,1] covers the surface.
type Point struct {
	X float64
	Y float64
}

// Valid reports whether the grid has at least one cell.
func (g Grid) Valid() bool {
	return g.Cols > 0 && g.Rows > 0
}

// Contains reports whether c lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.C >= 0 && c.C < g.Cols && c.R >= 0 && c.R < g.Rows
}

// Key returns the canonical "{c}_{r}" set-membership key.
func (c Cell) Key() string {
	return strconv.Itoa(c.C) + "_" + strconv.Itoa(c.R)
}

func (c Cell) String() string {
	return c.Key()
}

// CellAt maps a normalised point to a cell. Out-of-range coordinates are
// clamped to the nearest edge cell; x == 1 lands in the last column.
func (g Grid) CellAt(p Point) Cell {
	x := clampUnit(p.X)
	y := clampUnit(p.Y)
	col := floorIndex(x*float64(g.Cols), g.Cols)
	row := floorIndex(y*float64(g.Rows), g.Rows)
	return Cell{C: col, R: row}
}

// CellKey is CellAt followed by Key.
func (g Grid) CellKey(p Point) string {
	return g.CellAt(p).Key()
}

// CellAtPixel resolves a pixel position relative to the surface origin,
// given the pixel size of one cell. ok is false when the input cannot be
// measured: an empty grid, a non-positive or non-finite cell size, or
// non-finite pixel coordinates.
func (g Grid) CellAtPixel(px, py, cellW, cellH float64) (cell Cell, ok bool) {
	if !g.Valid() {
		return Cell{}, false
	}
	if !finite(px) || !finite(py) || !finite(cellW) || !finite(cellH) {
		return Cell{}, false
	}
	if cellW <= 0 || cellH <= 0 {
		return Cell{}, false
	}
	col := floorIndex(px/cellW, g.Cols)
	row := floorIndex(py/cellH, g.Rows)
	return Cell{C: col, R: row}, true
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Cell {
	if !g.Valid() {
		return nil
	}
	out := make([]Cell, 0, g.Cols*g.Rows)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out = append(out, Cell{C: c, R: r})
		}
	}
	return out
}

// ParseKey is the inverse of Cell.Key.
func ParseKey(key string) (Cell, error) {
	cs, rs, found := strings.Cut(key, "_")
	if !found {
		return Cell{}, fmt.Errorf("cell key %q: missing separator", key)
	}
	c, err := strconv.Atoi(cs)
	if err != nil {
		return Cell{}, fmt.Errorf("cell key %q: column: %w", key, err)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return Cell{}, fmt.Errorf("cell key %q: row: %w", key, err)
	}
	return Cell{C: c, R: r}, nil
}

// RowLabel returns the letter label for a row: A..Z, then AA, AB, ...
func RowLabel(r int) string {
	if r < 0 {
		return ""
	}
	var b []byte
	for n := r + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

// ColLabel returns the 1-based column number label.
func ColLabel(c int) string {
	return strconv.Itoa(c + 1)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// floorIndex floors v and clamps it to [0, n-1] before converting, so huge
// finite inputs cannot overflow int.
func floorIndex(v float64, n int) int {
	f := math.Floor(v)
	if f < 0 {
		return 0
	}
	if f > float64(n-1) {
		return n - 1
	}
	return int(f)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
