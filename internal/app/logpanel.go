package app

import (
	"image/color"

	"github.com/Garsondee/pitch-grid/internal/paint"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 260
	logMaxEntries = 60
	logLineHeight = 14
)

// kindColors tints the marker next to each log line.
var kindColors = map[string]color.RGBA{
	paint.EventClick:  {R: 160, G: 160, B: 160, A: 255},
	paint.EventAssign: {R: 90, G: 200, B: 120, A: 255},
	paint.EventCopy:   {R: 70, G: 130, B: 230, A: 255},
	paint.EventClear:  {R: 220, G: 140, B: 60, A: 255},
	paint.EventCommit: {R: 240, G: 220, B: 80, A: 255},
	paint.EventError:  {R: 230, G: 60, B: 60, A: 255},
}

// drawLogPanel renders the paint event log on the right side of the screen,
// newest entries at the bottom.
func drawLogPanel(screen *ebiten.Image, l *paint.EventLog, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "PAINT LOG", panelX+8, 1)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := l.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, kindColors[e.Kind], false)
		ebitenutil.DebugPrintAt(screen, e.String(), panelX+12, y-1)
		y += logLineHeight
	}
}
