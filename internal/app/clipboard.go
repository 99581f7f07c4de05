package app

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// copyBoard puts the board listing on the system clipboard.
func (g *Game) copyBoard() {
	text := g.session.Board.Text(g.cfg.ZoneName)
	if err := clipboard.WriteAll(text); err != nil {
		g.setStatus("clipboard copy failed", err)
		return
	}
	g.setStatus(fmt.Sprintf("copied %d cells to clipboard", len(g.session.Board.Assignments())), nil)
}
