package app

import (
	"image/color"
	"strings"
	"testing"

	"github.com/Garsondee/pitch-grid/internal/grid"
	"github.com/Garsondee/pitch-grid/internal/paint"
)

func TestBuildFrame_Uniform(t *testing.T) {
	b := paint.NewSession(grid.Grid{Cols: 4, Rows: 3},
		paint.WithMapped(0, grid.Cell{C: 1, R: 1}),
		paint.WithPending(1, grid.Cell{C: 2, R: 0}),
	).Board

	f := buildFrame(b, nil, false, 20)
	if f.CellW != 20 || f.CellH != 20 {
		t.Fatalf("unexpected cell size %vx%v", f.CellW, f.CellH)
	}
	if len(f.Colored) != 0 {
		t.Fatal("uniform mode must not emit coloured cells")
	}
	if len(f.Mapped) != 1 || f.Mapped[0] != (grid.Cell{C: 1, R: 1}) {
		t.Fatalf("mapped = %v", f.Mapped)
	}
	if len(f.Pending) != 1 || f.Pending[0] != (grid.Cell{C: 2, R: 0}) {
		t.Fatalf("pending = %v", f.Pending)
	}
}

func TestBuildFrame_ColoredHalvesPending(t *testing.T) {
	b := paint.NewSession(grid.Grid{Cols: 4, Rows: 3},
		paint.WithMapped(0, grid.Cell{C: 0, R: 0}),
		paint.WithPending(0, grid.Cell{C: 3, R: 2}),
		paint.WithPending(7, grid.Cell{C: 1, R: 2}),
	).Board

	palette := []color.RGBA{{R: 200, G: 100, B: 50, A: 200}}
	f := buildFrame(b, palette, true, 10)
	if len(f.Mapped) != 0 || len(f.Pending) != 0 {
		t.Fatal("coloured mode must not emit uniform cells")
	}
	if len(f.Colored) != 3 {
		t.Fatalf("expected 3 coloured cells, got %d", len(f.Colored))
	}

	byKey := map[string]color.RGBA{}
	for _, cc := range f.Colored {
		byKey[cc.Cell.Key()] = cc.Color
	}
	if byKey["0_0"] != palette[0] {
		t.Fatalf("committed cell should use zone colour, got %v", byKey["0_0"])
	}
	if got := byKey["3_2"]; got != (color.RGBA{R: 100, G: 50, B: 25, A: 100}) {
		t.Fatalf("pending cell should be half strength, got %v", got)
	}
	if got := byKey["1_2"]; got.R != 64 || got.A != 80 {
		t.Fatalf("unknown zone should fall back to half grey, got %v", got)
	}
}

func TestHUDLines(t *testing.T) {
	lines := hudLines(hudState{
		mode:       paint.ModeCopy,
		hover:      grid.Cell{C: 2, R: 1},
		hovering:   true,
		zone:       "wing",
		mapped:     3,
		pending:    2,
		clearWired: true,
		status:     "committed 2 cells",
	})
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "B3 (2_1)") || !strings.Contains(lines[0], "wing") {
		t.Fatalf("first line missing hover or zone: %q", lines[0])
	}
	if !strings.Contains(lines[1], "mapped: 3") || !strings.Contains(lines[1], "pending: 2") {
		t.Fatalf("unexpected counts line %q", lines[1])
	}
	if !strings.Contains(lines[2], "RMB drag=clear") {
		t.Fatal("clear hint missing when clear is wired")
	}
	if lines[3] != "committed 2 cells" {
		t.Fatalf("unexpected status %q", lines[3])
	}
}

func TestHUDLines_NoClearNoHover(t *testing.T) {
	lines := hudLines(hudState{mode: paint.ModeIdle})
	if len(lines) != 3 {
		t.Fatalf("empty status should be omitted, got %d lines", len(lines))
	}
	if strings.Contains(lines[2], "RMB") {
		t.Fatal("clear hint shown without a clear callback")
	}
	if !strings.Contains(lines[0], "cell: -") || !strings.Contains(lines[0], "zone: none") {
		t.Fatalf("unexpected idle line %q", lines[0])
	}
}
