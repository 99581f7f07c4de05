package paint

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/pitch-grid/internal/grid"
)

// ErrNoSource is returned when a copy is requested from a cell without an
// association.
var ErrNoSource = errors.New("source cell has no association")

// ErrOutOfGrid is returned for cells outside the board's grid.
var ErrOutOfGrid = errors.New("cell outside grid")

// Assignment links a cell to a zone. Pending assignments have not been
// committed yet.
type Assignment struct {
	Cell    grid.Cell
	Zone    int
	Pending bool
}

// Board holds the per-cell associations painted by the operator. It is the
// consumer side of the Controller callbacks and lives only in memory.
type Board struct {
	grid    grid.Grid
	mapped  map[string]Assignment
	pending map[string]Assignment
}

// NewBoard creates an empty board for g.
func NewBoard(g grid.Grid) *Board {
	return &Board{
		grid:    g,
		mapped:  make(map[string]Assignment),
		pending: make(map[string]Assignment),
	}
}

// Grid returns the board's grid.
func (b *Board) Grid() grid.Grid {
	return b.grid
}

// Assign maps cell to zone directly, replacing any pending change.
func (b *Board) Assign(cell grid.Cell, zone int) error {
	if !b.grid.Contains(cell) {
		return fmt.Errorf("assign %s: %w", cell, ErrOutOfGrid)
	}
	key := cell.Key()
	delete(b.pending, key)
	b.mapped[key] = Assignment{Cell: cell, Zone: zone}
	return nil
}

// Lookup returns the effective association of a cell. Pending changes shadow
// committed ones.
func (b *Board) Lookup(cell grid.Cell) (Assignment, bool) {
	key := cell.Key()
	if a, ok := b.pending[key]; ok {
		return a, true
	}
	a, ok := b.mapped[key]
	return a, ok
}

// IsPaintable reports whether cell can be the source of a copy drag.
func (b *Board) IsPaintable(cell grid.Cell) bool {
	_, ok := b.Lookup(cell)
	return ok
}

// Copy gives target the source's zone as a pending assignment. Copying a
// cell onto itself leaves the board unchanged.
func (b *Board) Copy(target, source grid.Cell) error {
	if !b.grid.Contains(target) {
		return fmt.Errorf("copy to %s: %w", target, ErrOutOfGrid)
	}
	src, ok := b.Lookup(source)
	if !ok {
		return fmt.Errorf("copy from %s: %w", source, ErrNoSource)
	}
	if target == source {
		return nil
	}
	if cur, ok := b.mapped[target.Key()]; ok && cur.Zone == src.Zone {
		delete(b.pending, target.Key())
		return nil
	}
	b.pending[target.Key()] = Assignment{Cell: target, Zone: src.Zone, Pending: true}
	return nil
}

// Clear removes any association from cell. Clearing an empty cell is a no-op.
func (b *Board) Clear(cell grid.Cell) error {
	if !b.grid.Contains(cell) {
		return fmt.Errorf("clear %s: %w", cell, ErrOutOfGrid)
	}
	key := cell.Key()
	delete(b.mapped, key)
	delete(b.pending, key)
	return nil
}

// Commit promotes every pending assignment and returns how many there were.
func (b *Board) Commit() int {
	n := len(b.pending)
	for key, a := range b.pending {
		a.Pending = false
		b.mapped[key] = a
		delete(b.pending, key)
	}
	return n
}

// Discard drops every pending assignment.
func (b *Board) Discard() int {
	n := len(b.pending)
	clear(b.pending)
	return n
}

// Counts returns the number of committed and pending cells.
func (b *Board) Counts() (mapped, pending int) {
	return len(b.mapped), len(b.pending)
}

// MappedCells returns committed cells that have no pending change, sorted.
func (b *Board) MappedCells() []grid.Cell {
	out := make([]grid.Cell, 0, len(b.mapped))
	for key, a := range b.mapped {
		if _, shadowed := b.pending[key]; shadowed {
			continue
		}
		out = append(out, a.Cell)
	}
	sortCells(out)
	return out
}

// PendingCells returns cells with uncommitted assignments, sorted.
func (b *Board) PendingCells() []grid.Cell {
	out := make([]grid.Cell, 0, len(b.pending))
	for _, a := range b.pending {
		out = append(out, a.Cell)
	}
	sortCells(out)
	return out
}

// Assignments returns every effective assignment in row-major order.
func (b *Board) Assignments() []Assignment {
	out := make([]Assignment, 0, len(b.mapped)+len(b.pending))
	for key, a := range b.mapped {
		if _, shadowed := b.pending[key]; shadowed {
			continue
		}
		out = append(out, a)
	}
	for _, a := range b.pending {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return cellLess(out[i].Cell, out[j].Cell) })
	return out
}

// Text renders the board as one line per assignment, e.g. "C7 6_2 midfield *"
// where a trailing star marks a pending change.
func (b *Board) Text(zoneName func(zone int) string) string {
	var sb strings.Builder
	for _, a := range b.Assignments() {
		name := fmt.Sprintf("zone%d", a.Zone)
		if zoneName != nil {
			name = zoneName(a.Zone)
		}
		fmt.Fprintf(&sb, "%s%s %s %s", grid.RowLabel(a.Cell.R), grid.ColLabel(a.Cell.C), a.Cell.Key(), name)
		if a.Pending {
			sb.WriteString(" *")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sortCells(cells []grid.Cell) {
	sort.Slice(cells, func(i, j int) bool { return cellLess(cells[i], cells[j]) })
}

func cellLess(a, b grid.Cell) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	return a.C < b.C
}
