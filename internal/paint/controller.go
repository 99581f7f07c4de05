package paint

import (
	"fmt"

	"github.com/Garsondee/pitch-grid/internal/grid"
)

// Mode is the drag gesture currently in progress.
type Mode int

const (
	ModeIdle Mode = iota
	ModeCopy
	ModeClear
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeCopy:
		return "copy"
	case ModeClear:
		return "clear"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Button identifies a pointer button using DOM-style numbering.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonSecondary Button = 2
)

// Callbacks are the consumer hooks invoked by a Controller. Any of them may be
// nil. IsPaintable decides whether a primary press may start a copy drag.
type Callbacks struct {
	OnCellClick  func(cell grid.Cell) error
	OnCopyPaint  func(target, source grid.Cell) error
	OnClearPaint func(target grid.Cell) error
	IsPaintable  func(cell grid.Cell) bool
}

// Surface describes how pixel coordinates map onto the grid. The zero value
// is unmeasured and resolves no cells.
type Surface struct {
	Grid  grid.Grid
	CellW float64
	CellH float64
}

// Resolve maps a surface-relative pixel to a cell.
func (s Surface) Resolve(px, py float64) (grid.Cell, bool) {
	return s.Grid.CellAtPixel(px, py, s.CellW, s.CellH)
}

// DragState is the controller's gesture state. It is only non-idle while a
// pointer button is held.
type DragState struct {
	Mode      Mode
	Source    grid.Cell
	HasSource bool
	LastKey   string
	HasLast   bool
}

// Controller turns pointer gestures into deduplicated per-cell callbacks.
//
// A copy drag starts with a primary press on a paintable cell and calls
// OnCopyPaint(target, source) for every new cell entered. A clear drag starts
// with a secondary press anywhere, calls OnClearPaint for the pressed cell
// immediately and for every new cell entered afterwards. A callback fires at
// most once per consecutive run of the same cell key.
type Controller struct {
	Surface   Surface
	callbacks Callbacks
	state     DragState
}

// NewController creates an idle controller.
func NewController(surface Surface, cb Callbacks) *Controller {
	return &Controller{Surface: surface, callbacks: cb}
}

// State returns a copy of the current drag state.
func (c *Controller) State() DragState {
	return c.state
}

// Mode returns the current gesture mode.
func (c *Controller) Mode() Mode {
	return c.state.Mode
}

// SuppressContextMenu reports whether a secondary-button context menu over
// the surface should be swallowed so the button can drive a clear drag.
func (c *Controller) SuppressContextMenu() bool {
	return c.callbacks.OnClearPaint != nil
}

// Press handles a button going down at a surface-relative pixel. Any gesture
// already in progress is abandoned first.
func (c *Controller) Press(button Button, px, py float64) error {
	cell, ok := c.Surface.Resolve(px, py)
	if !ok {
		return nil
	}
	c.reset()

	switch button {
	case ButtonPrimary:
		if c.callbacks.OnCellClick != nil {
			if err := c.dispatch(func() error { return c.callbacks.OnCellClick(cell) }); err != nil {
				return fmt.Errorf("cell click %s: %w", cell, err)
			}
		}
		if c.callbacks.OnCopyPaint == nil || c.callbacks.IsPaintable == nil || !c.callbacks.IsPaintable(cell) {
			return nil
		}
		c.state = DragState{Mode: ModeCopy, Source: cell, HasSource: true}
	case ButtonSecondary:
		if c.callbacks.OnClearPaint == nil {
			return nil
		}
		c.state = DragState{Mode: ModeClear, LastKey: cell.Key(), HasLast: true}
		if err := c.dispatch(func() error { return c.callbacks.OnClearPaint(cell) }); err != nil {
			return fmt.Errorf("clear paint %s: %w", cell, err)
		}
	}
	return nil
}

// Move handles pointer motion. Outside a drag, or when the pixel cannot be
// resolved, it does nothing.
func (c *Controller) Move(px, py float64) error {
	if c.state.Mode == ModeIdle {
		return nil
	}
	cell, ok := c.Surface.Resolve(px, py)
	if !ok {
		return nil
	}
	key := cell.Key()
	if c.state.HasLast && c.state.LastKey == key {
		return nil
	}

	var err error
	switch c.state.Mode {
	case ModeCopy:
		source := c.state.Source
		if c.callbacks.OnCopyPaint != nil {
			err = c.dispatch(func() error { return c.callbacks.OnCopyPaint(cell, source) })
		}
		if err != nil {
			return fmt.Errorf("copy paint %s from %s: %w", cell, source, err)
		}
	case ModeClear:
		if c.callbacks.OnClearPaint != nil {
			err = c.dispatch(func() error { return c.callbacks.OnClearPaint(cell) })
		}
		if err != nil {
			return fmt.Errorf("clear paint %s: %w", cell, err)
		}
	}
	c.state.LastKey = key
	c.state.HasLast = true
	return nil
}

// Release ends the gesture when the button goes up.
func (c *Controller) Release() {
	c.reset()
}

// Leave ends the gesture when the pointer exits the surface.
func (c *Controller) Leave() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = DragState{}
}

// dispatch runs a consumer callback. A returned error or a panic drops the
// controller back to idle before the failure reaches the caller.
func (c *Controller) dispatch(fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			c.reset()
			panic(r)
		}
	}()
	if err := fn(); err != nil {
		c.reset()
		return err
	}
	return nil
}
