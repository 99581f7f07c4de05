package paint

import (
	"errors"
	"testing"

	"github.com/Garsondee/pitch-grid/internal/grid"
)

func TestSession_CopyDragPaintsPending(t *testing.T) {
	src := grid.Cell{C: 1, R: 1}
	s := NewSession(grid.Grid{Cols: 6, Rows: 4}, WithMapped(3, src))

	path := []grid.Cell{src, {C: 2, R: 1}, {C: 3, R: 1}, {C: 3, R: 1}, {C: 3, R: 2}}
	if err := s.Drag(ButtonPrimary, path...); err != nil {
		t.Fatal(err)
	}
	if got := s.Log.Count(EventCopy); got != 3 {
		t.Fatalf("expected 3 copy events, got %d", got)
	}
	if got := s.Board.PendingCells(); len(got) != 3 {
		t.Fatalf("expected 3 pending cells, got %v", got)
	}
	if s.Controller.Mode() != ModeIdle {
		t.Fatalf("Drag must release, got %s", s.Controller.Mode())
	}
}

func TestSession_ClearDrag(t *testing.T) {
	cells := []grid.Cell{{C: 0, R: 0}, {C: 1, R: 0}, {C: 2, R: 0}}
	s := NewSession(grid.Grid{Cols: 3, Rows: 1}, WithMapped(0, cells...))
	if err := s.Drag(ButtonSecondary, cells[0], cells[1]); err != nil {
		t.Fatal(err)
	}
	if got := s.Board.MappedCells(); len(got) != 1 || got[0] != cells[2] {
		t.Fatalf("expected only %v left, got %v", cells[2], got)
	}
}

func TestSession_ClickAssignsActiveZone(t *testing.T) {
	s := NewSession(grid.Grid{Cols: 3, Rows: 3}, WithActiveZone(4))
	c := grid.Cell{C: 1, R: 2}
	if err := s.PressCell(ButtonPrimary, c); err != nil {
		t.Fatal(err)
	}
	a, ok := s.Board.Lookup(c)
	if !ok || a.Zone != 4 || a.Pending {
		t.Fatalf("expected committed zone 4, got %+v ok=%v", a, ok)
	}
	// The freshly assigned cell is a valid copy source.
	if s.Controller.Mode() != ModeCopy {
		t.Fatalf("expected copy drag from assigned cell, got %s", s.Controller.Mode())
	}
	s.Controller.Release()
}

func TestSession_NoSourceAfterClearMidDrag(t *testing.T) {
	src := grid.Cell{C: 0, R: 0}
	s := NewSession(grid.Grid{Cols: 3, Rows: 1}, WithMapped(1, src))
	if err := s.PressCell(ButtonPrimary, src); err != nil {
		t.Fatal(err)
	}
	// The source association disappears while the drag is held.
	_ = s.Board.Clear(src)
	err := s.MoveCell(grid.Cell{C: 1, R: 0})
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	s.RecordError(err)
	if s.Controller.Mode() != ModeIdle {
		t.Fatalf("expected idle after failed copy, got %s", s.Controller.Mode())
	}
	if s.Log.Count(EventError) != 1 {
		t.Fatal("expected the error to be logged")
	}
}

func TestSession_WithoutClear(t *testing.T) {
	c := grid.Cell{C: 0, R: 0}
	s := NewSession(grid.Grid{Cols: 2, Rows: 2}, WithMapped(0, c), WithoutClear())
	if s.Controller.SuppressContextMenu() {
		t.Fatal("context menu should not be suppressed without clear")
	}
	if err := s.Drag(ButtonSecondary, c); err != nil {
		t.Fatal(err)
	}
	if !s.Board.IsPaintable(c) {
		t.Fatal("secondary press must not clear when clear is unwired")
	}
}

func TestEventLog_RingAndTotals(t *testing.T) {
	l := NewEventLog(2)
	for i := 0; i < 5; i++ {
		l.Add(Event{Kind: EventClear, Target: grid.Cell{C: i}})
	}
	recent := l.Recent()
	if len(recent) != 2 || recent[0].Target.C != 3 || recent[1].Target.C != 4 {
		t.Fatalf("expected last two entries oldest first, got %v", recent)
	}
	if recent[1].Seq != 5 {
		t.Fatalf("expected seq 5, got %d", recent[1].Seq)
	}
	if l.Count(EventClear) != 5 {
		t.Fatalf("totals must survive eviction, got %d", l.Count(EventClear))
	}
}
