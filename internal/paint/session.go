package paint

import (
	"fmt"

	"github.com/Garsondee/pitch-grid/internal/grid"
)

// NoZone means primary clicks on empty cells do not assign anything.
const NoZone = -1

// Session wires a Controller to a Board and records every callback in an
// EventLog. It is what the window, the report CLI and the tests drive.
type Session struct {
	Board      *Board
	Controller *Controller
	Log        *EventLog

	// ActiveZone is assigned by a primary click on an unassociated cell.
	ActiveZone int

	cellW, cellH float64
	logSize      int
	clearWired   bool
	seeds        []Assignment
}

// SessionOption configures a Session during construction.
type SessionOption func(*Session)

// WithCellSize sets the pixel size of one cell.
func WithCellSize(w, h float64) SessionOption {
	return func(s *Session) {
		s.cellW = w
		s.cellH = h
	}
}

// WithLogSize sets the number of retained log entries.
func WithLogSize(n int) SessionOption {
	return func(s *Session) {
		s.logSize = n
	}
}

// WithActiveZone sets the zone assigned by clicks on empty cells.
func WithActiveZone(zone int) SessionOption {
	return func(s *Session) {
		s.ActiveZone = zone
	}
}

// WithoutClear leaves the clear callback unwired, so secondary presses do
// nothing and the context menu is not suppressed.
func WithoutClear() SessionOption {
	return func(s *Session) {
		s.clearWired = false
	}
}

// WithMapped seeds committed assignments.
func WithMapped(zone int, cells ...grid.Cell) SessionOption {
	return func(s *Session) {
		for _, c := range cells {
			s.seeds = append(s.seeds, Assignment{Cell: c, Zone: zone})
		}
	}
}

// WithPending seeds uncommitted assignments.
func WithPending(zone int, cells ...grid.Cell) SessionOption {
	return func(s *Session) {
		for _, c := range cells {
			s.seeds = append(s.seeds, Assignment{Cell: c, Zone: zone, Pending: true})
		}
	}
}

// NewSession builds a session over g. Seeds outside the grid are ignored.
func NewSession(g grid.Grid, opts ...SessionOption) *Session {
	s := &Session{
		ActiveZone: NoZone,
		cellW:      32,
		cellH:      32,
		logSize:    64,
		clearWired: true,
	}
	for _, o := range opts {
		o(s)
	}
	s.Board = NewBoard(g)
	s.Log = NewEventLog(s.logSize)
	for _, a := range s.seeds {
		if !g.Contains(a.Cell) {
			continue
		}
		if a.Pending {
			s.Board.pending[a.Cell.Key()] = a
		} else {
			s.Board.mapped[a.Cell.Key()] = a
		}
	}

	cb := Callbacks{
		OnCellClick: s.onCellClick,
		OnCopyPaint: s.onCopyPaint,
		IsPaintable: s.Board.IsPaintable,
	}
	if s.clearWired {
		cb.OnClearPaint = s.onClearPaint
	}
	s.Controller = NewController(Surface{Grid: g, CellW: s.cellW, CellH: s.cellH}, cb)
	return s
}

// CellCenter returns the pixel centre of cell under the current surface.
func (s *Session) CellCenter(c grid.Cell) (float64, float64) {
	sf := s.Controller.Surface
	return (float64(c.C) + 0.5) * sf.CellW, (float64(c.R) + 0.5) * sf.CellH
}

// PressCell presses button over the centre of cell.
func (s *Session) PressCell(button Button, c grid.Cell) error {
	x, y := s.CellCenter(c)
	return s.Controller.Press(button, x, y)
}

// MoveCell moves the pointer to the centre of cell.
func (s *Session) MoveCell(c grid.Cell) error {
	x, y := s.CellCenter(c)
	return s.Controller.Move(x, y)
}

// Drag presses button on the first cell, moves through the rest and releases.
// The gesture is always released, even when a callback fails.
func (s *Session) Drag(button Button, cells ...grid.Cell) error {
	if len(cells) == 0 {
		return nil
	}
	defer s.Controller.Release()
	if err := s.PressCell(button, cells[0]); err != nil {
		return err
	}
	for _, c := range cells[1:] {
		if err := s.MoveCell(c); err != nil {
			return err
		}
	}
	return nil
}

// Commit promotes pending assignments and logs the result.
func (s *Session) Commit() int {
	n := s.Board.Commit()
	s.Log.Add(Event{Kind: EventCommit, Detail: fmt.Sprintf("%d cells", n)})
	return n
}

// RecordError logs a callback failure surfaced by the controller.
func (s *Session) RecordError(err error) {
	if err == nil {
		return
	}
	s.Log.Add(Event{Kind: EventError, Detail: err.Error()})
}

func (s *Session) onCellClick(c grid.Cell) error {
	s.Log.Add(Event{Kind: EventClick, Target: c})
	if s.ActiveZone == NoZone || s.Board.IsPaintable(c) {
		return nil
	}
	if err := s.Board.Assign(c, s.ActiveZone); err != nil {
		return err
	}
	s.Log.Add(Event{Kind: EventAssign, Target: c, Detail: fmt.Sprintf("zone %d", s.ActiveZone)})
	return nil
}

func (s *Session) onCopyPaint(target, source grid.Cell) error {
	s.Log.Add(Event{Kind: EventCopy, Target: target, Source: source})
	return s.Board.Copy(target, source)
}

func (s *Session) onClearPaint(target grid.Cell) error {
	s.Log.Add(Event{Kind: EventClear, Target: target})
	return s.Board.Clear(target)
}
