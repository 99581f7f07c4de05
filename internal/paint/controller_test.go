package paint

import (
	"errors"
	"math"
	"testing"

	"github.com/Garsondee/pitch-grid/internal/grid"
)

type copyCall struct {
	target, source grid.Cell
}

// recorder collects callback invocations.
type recorder struct {
	clicks    []grid.Cell
	copies    []copyCall
	clears    []grid.Cell
	paintable map[grid.Cell]bool
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnCellClick: func(c grid.Cell) error {
			r.clicks = append(r.clicks, c)
			return nil
		},
		OnCopyPaint: func(target, source grid.Cell) error {
			r.copies = append(r.copies, copyCall{target, source})
			return nil
		},
		OnClearPaint: func(target grid.Cell) error {
			r.clears = append(r.clears, target)
			return nil
		},
		IsPaintable: func(c grid.Cell) bool { return r.paintable[c] },
	}
}

const testCell = 10.0

func newTestController(r *recorder) *Controller {
	return NewController(Surface{Grid: grid.Grid{Cols: 20, Rows: 15}, CellW: testCell, CellH: testCell}, r.callbacks())
}

func center(c grid.Cell) (float64, float64) {
	return (float64(c.C) + 0.5) * testCell, (float64(c.R) + 0.5) * testCell
}

func press(t *testing.T, c *Controller, b Button, cell grid.Cell) {
	t.Helper()
	x, y := center(cell)
	if err := c.Press(b, x, y); err != nil {
		t.Fatalf("press %v: %v", cell, err)
	}
}

func move(t *testing.T, c *Controller, cell grid.Cell) {
	t.Helper()
	x, y := center(cell)
	if err := c.Move(x, y); err != nil {
		t.Fatalf("move %v: %v", cell, err)
	}
}

func TestCopyDrag_DedupConsecutiveCells(t *testing.T) {
	src := grid.Cell{C: 2, R: 2}
	a := grid.Cell{C: 3, R: 2}
	b := grid.Cell{C: 4, R: 2}
	r := &recorder{paintable: map[grid.Cell]bool{src: true}}
	c := newTestController(r)

	press(t, c, ButtonPrimary, src)
	if c.Mode() != ModeCopy {
		t.Fatalf("expected copy mode, got %s", c.Mode())
	}
	for _, cell := range []grid.Cell{a, a, b, b, a} {
		move(t, c, cell)
	}
	c.Release()

	want := []grid.Cell{a, b, a}
	if len(r.copies) != len(want) {
		t.Fatalf("expected %d copy calls, got %d: %v", len(want), len(r.copies), r.copies)
	}
	for i, call := range r.copies {
		if call.target != want[i] || call.source != src {
			t.Fatalf("copy %d: got %v<-%v, want %v<-%v", i, call.target, call.source, want[i], src)
		}
	}
	if c.Mode() != ModeIdle {
		t.Fatalf("expected idle after release, got %s", c.Mode())
	}
}

func TestCopyDrag_FirstMoveOntoSourceDispatches(t *testing.T) {
	src := grid.Cell{C: 5, R: 5}
	r := &recorder{paintable: map[grid.Cell]bool{src: true}}
	c := newTestController(r)

	press(t, c, ButtonPrimary, src)
	if len(r.copies) != 0 {
		t.Fatalf("press alone must not copy, got %v", r.copies)
	}
	move(t, c, src)
	move(t, c, src)
	if len(r.copies) != 1 || r.copies[0].target != src {
		t.Fatalf("expected one self-copy dispatch, got %v", r.copies)
	}
}

func TestPrimaryPress_ClickFiresRegardlessOfPaintability(t *testing.T) {
	r := &recorder{}
	c := newTestController(r)
	cell := grid.Cell{C: 1, R: 1}

	press(t, c, ButtonPrimary, cell)
	if len(r.clicks) != 1 || r.clicks[0] != cell {
		t.Fatalf("expected click on %v, got %v", cell, r.clicks)
	}
	if c.Mode() != ModeIdle {
		t.Fatalf("non-paintable press must stay idle, got %s", c.Mode())
	}
	move(t, c, grid.Cell{C: 2, R: 1})
	if len(r.copies) != 0 {
		t.Fatalf("idle move must not copy, got %v", r.copies)
	}
}

func TestClearDrag_FiresOnPressWithoutDuplicate(t *testing.T) {
	r := &recorder{}
	c := newTestController(r)
	cell := grid.Cell{C: 7, R: 3}

	press(t, c, ButtonSecondary, cell)
	move(t, c, cell)
	c.Release()

	if len(r.clears) != 1 || r.clears[0] != cell {
		t.Fatalf("expected a single clear of %v, got %v", cell, r.clears)
	}
	if len(r.clicks) != 0 {
		t.Fatalf("secondary press must not click, got %v", r.clicks)
	}
}

func TestClearDrag_NewCells(t *testing.T) {
	r := &recorder{}
	c := newTestController(r)
	start := grid.Cell{C: 0, R: 0}
	next := grid.Cell{C: 1, R: 0}

	press(t, c, ButtonSecondary, start)
	move(t, c, next)
	move(t, c, next)
	move(t, c, start)
	c.Leave()

	want := []grid.Cell{start, next, start}
	if len(r.clears) != len(want) {
		t.Fatalf("expected %v, got %v", want, r.clears)
	}
	for i := range want {
		if r.clears[i] != want[i] {
			t.Fatalf("clear %d: got %v, want %v", i, r.clears[i], want[i])
		}
	}
}

func TestModesDoNotCrossContaminate(t *testing.T) {
	src := grid.Cell{C: 2, R: 2}
	other := grid.Cell{C: 9, R: 9}
	r := &recorder{paintable: map[grid.Cell]bool{src: true, other: true}}
	c := newTestController(r)

	press(t, c, ButtonPrimary, src)
	move(t, c, grid.Cell{C: 3, R: 2})
	c.Release()

	press(t, c, ButtonSecondary, src)
	st := c.State()
	if st.Mode != ModeClear || st.HasSource {
		t.Fatalf("clear drag must not carry a copy source: %+v", st)
	}
	if st.LastKey != src.Key() {
		t.Fatalf("clear drag last key: got %q, want %q", st.LastKey, src.Key())
	}
	c.Leave()

	press(t, c, ButtonPrimary, other)
	st = c.State()
	if st.Mode != ModeCopy || st.Source != other || st.HasLast {
		t.Fatalf("fresh copy drag expected, got %+v", st)
	}
	move(t, c, src)
	last := r.copies[len(r.copies)-1]
	if last.source != other || last.target != src {
		t.Fatalf("expected %v<-%v, got %v<-%v", src, other, last.target, last.source)
	}
}

func TestUnresolvablePointer_NoTransition(t *testing.T) {
	r := &recorder{paintable: map[grid.Cell]bool{{C: 0, R: 0}: true}}
	c := NewController(Surface{}, r.callbacks())
	if err := c.Press(ButtonSecondary, 5, 5); err != nil {
		t.Fatal(err)
	}
	if c.Mode() != ModeIdle || len(r.clears) != 0 {
		t.Fatalf("unmeasured surface must not start a gesture: mode=%s clears=%v", c.Mode(), r.clears)
	}

	c = newTestController(r)
	press(t, c, ButtonPrimary, grid.Cell{C: 0, R: 0})
	if err := c.Move(math.NaN(), 3); err != nil {
		t.Fatal(err)
	}
	if err := c.Move(math.Inf(-1), 3); err != nil {
		t.Fatal(err)
	}
	if len(r.copies) != 0 {
		t.Fatalf("non-finite moves must not dispatch, got %v", r.copies)
	}
	if c.Mode() != ModeCopy {
		t.Fatalf("non-finite move must not end the drag, got %s", c.Mode())
	}
}

func TestCallbackError_ResetsToIdle(t *testing.T) {
	boom := errors.New("boom")
	src := grid.Cell{C: 1, R: 1}
	cb := Callbacks{
		OnCopyPaint: func(target, source grid.Cell) error { return boom },
		IsPaintable: func(grid.Cell) bool { return true },
	}
	c := NewController(Surface{Grid: grid.Grid{Cols: 4, Rows: 4}, CellW: testCell, CellH: testCell}, cb)
	press(t, c, ButtonPrimary, src)
	x, y := center(grid.Cell{C: 2, R: 1})
	err := c.Move(x, y)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if c.Mode() != ModeIdle {
		t.Fatalf("expected idle after failed dispatch, got %s", c.Mode())
	}
}

func TestCallbackPanic_ResetsToIdleAndPropagates(t *testing.T) {
	cb := Callbacks{
		OnClearPaint: func(grid.Cell) error { panic("callback exploded") },
	}
	c := NewController(Surface{Grid: grid.Grid{Cols: 4, Rows: 4}, CellW: testCell, CellH: testCell}, cb)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("expected the panic to propagate")
			}
		}()
		_ = c.Press(ButtonSecondary, 5, 5)
	}()
	if c.Mode() != ModeIdle {
		t.Fatalf("expected idle after panic, got %s", c.Mode())
	}
}

func TestSuppressContextMenu(t *testing.T) {
	if NewController(Surface{}, Callbacks{}).SuppressContextMenu() {
		t.Fatal("no clear callback: context menu should not be suppressed")
	}
	cb := Callbacks{OnClearPaint: func(grid.Cell) error { return nil }}
	if !NewController(Surface{}, cb).SuppressContextMenu() {
		t.Fatal("clear callback wired: context menu should be suppressed")
	}
}

func TestSecondaryPress_NoClearCallback(t *testing.T) {
	c := NewController(Surface{Grid: grid.Grid{Cols: 4, Rows: 4}, CellW: testCell, CellH: testCell}, Callbacks{})
	if err := c.Press(ButtonSecondary, 5, 5); err != nil {
		t.Fatal(err)
	}
	if c.Mode() != ModeIdle {
		t.Fatalf("expected idle without clear callback, got %s", c.Mode())
	}
}
