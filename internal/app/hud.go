package app

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/pitch-grid/internal/grid"
	"github.com/Garsondee/pitch-grid/internal/paint"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hudState is the subset of editor state shown in the status strip.
type hudState struct {
	mode       paint.Mode
	hover      grid.Cell
	hovering   bool
	zone       string
	mapped     int
	pending    int
	clearWired bool
	tracking   bool
	status     string
}

// hudLines formats the status strip. Kept free of ebiten so it can be tested.
func hudLines(s hudState) []string {
	hover := "-"
	if s.hovering {
		hover = fmt.Sprintf("%s%s (%s)", grid.RowLabel(s.hover.R), grid.ColLabel(s.hover.C), s.hover.Key())
	}
	zone := s.zone
	if zone == "" {
		zone = "none"
	}
	track := "off"
	if s.tracking {
		track = "on"
	}

	hints := "LMB=paint"
	if s.clearWired {
		hints += "  RMB drag=clear"
	}
	hints += "  1-9/0=zone  Enter=commit  Bksp=discard  C=copy  L=labels  M=colour  T=ball"

	lines := []string{
		fmt.Sprintf("MODE: %-5s  cell: %s  zone: %s  ball: %s", s.mode, hover, zone, track),
		fmt.Sprintf("mapped: %d  pending: %d", s.mapped, s.pending),
		hints,
	}
	if s.status != "" {
		lines = append(lines, s.status)
	}
	return lines
}

func (g *Game) drawHUD(screen *ebiten.Image, x, y int) {
	const lineH = 14
	const padX = 5
	const padY = 3

	mapped, pending := g.session.Board.Counts()
	zone := ""
	if g.session.ActiveZone != paint.NoZone {
		zone = g.cfg.ZoneName(g.session.ActiveZone)
	}
	lines := hudLines(hudState{
		mode:       g.session.Controller.Mode(),
		hover:      g.hover,
		hovering:   g.hovering,
		zone:       zone,
		mapped:     mapped,
		pending:    pending,
		clearWired: g.session.Controller.SuppressContextMenu(),
		tracking:   g.tracking,
		status:     g.status,
	})

	bx, by := float32(x), float32(y)
	boxW := float32(g.pitchW)
	boxH := float32(len(lines)*lineH + padY*2)
	vector.FillRect(screen, bx, by, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	vector.StrokeLine(screen, bx+1, by+1, bx+boxW-1, by+1, 1.0, color.RGBA{R: 80, G: 140, B: 80, A: 80}, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+padX, y+padY+i*lineH)
	}
}
