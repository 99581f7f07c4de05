package app

import (
	"fmt"
	"log"

	"github.com/Garsondee/pitch-grid/internal/config"
	"github.com/Garsondee/pitch-grid/internal/paint"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// zoneKeys select zones 1-9; Key0 deselects.
var zoneKeys = [...]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// handleInput processes pointer gestures and edge-triggered key toggles.
func (g *Game) handleInput() {
	g.handlePointer()

	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	for i, k := range zoneKeys {
		if pressed(k) && i < len(g.cfg.Zones) {
			g.selectZone(i)
		}
	}
	if pressed(ebiten.Key0) {
		g.selectZone(paint.NoZone)
	}

	// L: labels. M: coloured/uniform overlay.
	if pressed(ebiten.KeyL) {
		g.updatePrefs(func(p *config.Prefs) { p.ShowLabels = !p.ShowLabels })
	}
	if pressed(ebiten.KeyM) {
		g.updatePrefs(func(p *config.Prefs) { p.ColoredMode = !p.ColoredMode })
	}

	// Enter commits pending paint, Backspace discards it.
	if pressed(ebiten.KeyEnter) {
		n := g.session.Commit()
		g.setStatus(fmt.Sprintf("committed %d cells", n), nil)
	}
	if pressed(ebiten.KeyBackspace) {
		n := g.session.Board.Discard()
		g.setStatus(fmt.Sprintf("discarded %d cells", n), nil)
	}

	// C: copy the board as text.
	if pressed(ebiten.KeyC) {
		g.copyBoard()
	}

	// T: toggle ball tracking highlight.
	if pressed(ebiten.KeyT) {
		g.tracking = !g.tracking
		g.clock = 0
	}

	g.prevKeys = currentKeys
}

// handlePointer translates mouse state into controller gestures. Leaving the
// pitch area while a button is held ends the gesture.
func (g *Game) handlePointer() {
	ctl := g.session.Controller
	mx, my := ebiten.CursorPosition()
	moved := mx != g.cursorX || my != g.cursorY
	g.cursorX, g.cursorY = mx, my

	px := float64(mx - g.offX)
	py := float64(my - g.offY)
	inside := px >= 0 && py >= 0 && px < float64(g.pitchW) && py < float64(g.pitchH)

	g.hovering = false
	if inside {
		g.hover, g.hovering = ctl.Surface.Resolve(px, py)
	}

	if inside {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.report(ctl.Press(paint.ButtonPrimary, px, py))
		} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && ctl.SuppressContextMenu() {
			g.report(ctl.Press(paint.ButtonSecondary, px, py))
		}
	}

	if ctl.Mode() == paint.ModeIdle {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		ctl.Release()
		return
	}
	if !inside {
		ctl.Leave()
		return
	}
	if moved {
		g.report(ctl.Move(px, py))
	}
}

// report records a callback failure; the controller is already idle.
func (g *Game) report(err error) {
	if err == nil {
		return
	}
	g.session.RecordError(err)
	g.setStatus("paint failed", err)
}

func (g *Game) selectZone(zone int) {
	g.session.ActiveZone = zone
	g.updatePrefs(func(p *config.Prefs) { p.ActiveZone = zone })
	if zone == paint.NoZone {
		g.setStatus("no zone selected", nil)
		return
	}
	g.setStatus("zone: "+g.cfg.ZoneName(zone), nil)
}

func (g *Game) updatePrefs(fn func(*config.Prefs)) {
	if err := g.prefs.Update(fn); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}
