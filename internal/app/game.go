package app

import (
	"image/color"
	"log"
	"time"

	"github.com/Garsondee/pitch-grid/internal/config"
	"github.com/Garsondee/pitch-grid/internal/grid"
	"github.com/Garsondee/pitch-grid/internal/match"
	"github.com/Garsondee/pitch-grid/internal/paint"
	"github.com/Garsondee/pitch-grid/internal/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the pitch.
const borderWidth = 24

// hudHeight is the strip below the pitch reserved for the status lines.
const hudHeight = 72

// tickDuration is the match clock advance per Update at the default TPS.
const tickDuration = time.Second / 60

// Game is the pitch grid editor.
type Game struct {
	cfg     *config.Config
	prefs   *config.PrefsStore
	palette []color.RGBA

	width   int
	height  int
	pitchW  int
	pitchH  int
	offX    int
	offY    int
	grid    grid.Grid
	session *paint.Session
	overlay *render.OverlayRenderer

	// Offscreen buffer for the pitch view; blitted at (offX, offY).
	pitchBuf *ebiten.Image

	prevKeys map[ebiten.Key]bool
	cursorX  int
	cursorY  int
	hover    grid.Cell
	hovering bool

	// Match replay driving the highlight cell.
	track    *match.Track
	tracking bool
	clock    time.Duration

	status string
}

// New creates the editor from a validated config and a preference store.
func New(cfg *config.Config, prefs *config.PrefsStore) *Game {
	g := &Game{
		cfg:      cfg,
		prefs:    prefs,
		palette:  cfg.ZoneColors(),
		grid:     grid.Grid{Cols: cfg.Cols, Rows: cfg.Rows},
		pitchW:   cfg.Cols * cfg.CellSize,
		pitchH:   cfg.Rows * cfg.CellSize,
		offX:     borderWidth,
		offY:     borderWidth,
		prevKeys: make(map[ebiten.Key]bool),
		track:    match.DemoTrack(),
	}
	g.width = borderWidth + g.pitchW + borderWidth + logPanelWidth
	g.height = borderWidth + g.pitchH + hudHeight

	active := prefs.Get().ActiveZone
	if active >= len(cfg.Zones) {
		active = paint.NoZone
	}
	cs := float64(cfg.CellSize)
	g.session = paint.NewSession(g.grid,
		paint.WithCellSize(cs, cs),
		paint.WithActiveZone(active),
		paint.WithLogSize(logMaxEntries),
	)
	g.overlay = render.NewOverlayRenderer(g.grid, render.NewImageCanvas, cfg.GridLines)
	g.pitchBuf = ebiten.NewImage(g.pitchW, g.pitchH)
	return g
}

// Size returns the window size the game lays out to.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

func (g *Game) Update() error {
	g.handleInput()
	if g.tracking {
		g.clock += tickDuration
		if d := g.track.Duration(); d > 0 && g.clock > d {
			g.clock = 0
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	g.overlay.Draw(render.WrapImage(g.pitchBuf), g.frame())

	var blit ebiten.DrawImageOptions
	blit.GeoM.Translate(float64(g.offX), float64(g.offY))
	screen.DrawImage(g.pitchBuf, &blit)

	// Pitch border frame.
	ox, oy := float32(g.offX), float32(g.offY)
	pw, ph := float32(g.pitchW), float32(g.pitchH)
	vector.StrokeRect(screen, ox-1, oy-1, pw+2, ph+2, 2.0, color.RGBA{R: 65, G: 90, B: 65, A: 255}, false)

	// Hovered cell outline, drawn on the screen so it never touches the cache.
	if g.hovering {
		cs := float32(g.cfg.CellSize)
		vector.StrokeRect(screen, ox+float32(g.hover.C)*cs, oy+float32(g.hover.R)*cs, cs, cs, 1.0,
			color.RGBA{R: 255, G: 255, B: 255, A: 140}, false)
	}

	drawLogPanel(screen, g.session.Log, g.offX+g.pitchW+borderWidth, g.height)
	g.drawHUD(screen, g.offX, g.offY+g.pitchH+6)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// frame assembles this tick's overlay input from the board and preferences.
func (g *Game) frame() render.Frame {
	p := g.prefs.Get()
	cs := float32(g.cfg.CellSize)
	f := buildFrame(g.session.Board, g.palette, p.ColoredMode, cs)
	f.ShowLabels = p.ShowLabels
	if g.tracking {
		hl := match.BallCell(g.grid, g.track.At(g.clock))
		f.Highlight = &hl
	}
	return f
}

// buildFrame converts the board into overlay input. In coloured mode every
// assignment is drawn in its zone colour; otherwise mapped and pending cells
// get the uniform highlight.
func buildFrame(b *paint.Board, palette []color.RGBA, colored bool, cellSize float32) render.Frame {
	f := render.Frame{CellW: cellSize, CellH: cellSize}
	if !colored {
		f.Mapped = b.MappedCells()
		f.Pending = b.PendingCells()
		return f
	}
	for _, a := range b.Assignments() {
		c := color.RGBA{R: 128, G: 128, B: 128, A: 160}
		if a.Zone >= 0 && a.Zone < len(palette) {
			c = palette[a.Zone]
		}
		if a.Pending {
			c = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A / 2}
		}
		f.Colored = append(f.Colored, render.ColoredCell{Cell: a.Cell, Color: c})
	}
	return f
}

func (g *Game) setStatus(msg string, err error) {
	if err != nil {
		log.Printf("[Game] %s: %v", msg, err)
		g.status = msg + ": " + err.Error()
		return
	}
	g.status = msg
}
