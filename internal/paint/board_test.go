package paint

import (
	"errors"
	"strings"
	"testing"

	"github.com/Garsondee/pitch-grid/internal/grid"
)

func TestBoard_CopyCreatesPending(t *testing.T) {
	b := NewBoard(grid.Grid{Cols: 4, Rows: 3})
	src := grid.Cell{C: 0, R: 0}
	dst := grid.Cell{C: 1, R: 0}
	if err := b.Assign(src, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.Copy(dst, src); err != nil {
		t.Fatal(err)
	}
	a, ok := b.Lookup(dst)
	if !ok || a.Zone != 2 || !a.Pending {
		t.Fatalf("expected pending zone 2 at %v, got %+v ok=%v", dst, a, ok)
	}
	if m, p := b.Counts(); m != 1 || p != 1 {
		t.Fatalf("expected 1 mapped 1 pending, got %d/%d", m, p)
	}
	if n := b.Commit(); n != 1 {
		t.Fatalf("expected to commit 1, got %d", n)
	}
	if got := b.MappedCells(); len(got) != 2 || got[1] != dst {
		t.Fatalf("expected both cells mapped, got %v", got)
	}
}

func TestBoard_CopyErrors(t *testing.T) {
	b := NewBoard(grid.Grid{Cols: 2, Rows: 2})
	if err := b.Copy(grid.Cell{C: 1, R: 1}, grid.Cell{C: 0, R: 0}); !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	if err := b.Copy(grid.Cell{C: 5, R: 1}, grid.Cell{C: 0, R: 0}); !errors.Is(err, ErrOutOfGrid) {
		t.Fatalf("expected ErrOutOfGrid, got %v", err)
	}
}

func TestBoard_SelfCopyIsNoop(t *testing.T) {
	b := NewBoard(grid.Grid{Cols: 2, Rows: 2})
	c := grid.Cell{C: 1, R: 1}
	_ = b.Assign(c, 1)
	if err := b.Copy(c, c); err != nil {
		t.Fatal(err)
	}
	if _, p := b.Counts(); p != 0 {
		t.Fatalf("self copy must not create pending entries, got %d", p)
	}
}

func TestBoard_ClearRemovesBoth(t *testing.T) {
	b := NewBoard(grid.Grid{Cols: 3, Rows: 1})
	src := grid.Cell{C: 0, R: 0}
	dst := grid.Cell{C: 1, R: 0}
	_ = b.Assign(src, 1)
	_ = b.Copy(dst, src)
	_ = b.Clear(dst)
	_ = b.Clear(src)
	if m, p := b.Counts(); m != 0 || p != 0 {
		t.Fatalf("expected empty board, got %d/%d", m, p)
	}
	if err := b.Clear(grid.Cell{C: 2, R: 0}); err != nil {
		t.Fatalf("clearing an empty cell should be a no-op, got %v", err)
	}
}

func TestBoard_PendingShadowsMapped(t *testing.T) {
	b := NewBoard(grid.Grid{Cols: 3, Rows: 1})
	a := grid.Cell{C: 0, R: 0}
	c := grid.Cell{C: 1, R: 0}
	_ = b.Assign(a, 1)
	_ = b.Assign(c, 2)
	_ = b.Copy(c, a)
	if got := b.MappedCells(); len(got) != 1 || got[0] != a {
		t.Fatalf("shadowed cell must not be listed as mapped, got %v", got)
	}
	if got := b.PendingCells(); len(got) != 1 || got[0] != c {
		t.Fatalf("expected %v pending, got %v", c, got)
	}
	if n := b.Discard(); n != 1 {
		t.Fatalf("expected to discard 1, got %d", n)
	}
	if got, _ := b.Lookup(c); got.Zone != 2 {
		t.Fatalf("discard should restore committed zone 2, got %d", got.Zone)
	}
}

func TestBoard_Text(t *testing.T) {
	b := NewBoard(grid.Grid{Cols: 3, Rows: 2})
	_ = b.Assign(grid.Cell{C: 2, R: 1}, 0)
	_ = b.Copy(grid.Cell{C: 0, R: 0}, grid.Cell{C: 2, R: 1})
	text := b.Text(func(z int) string { return []string{"defence"}[z] })
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", text)
	}
	if lines[0] != "A1 0_0 defence *" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "B3 2_1 defence" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}
