package grid

import (
	"fmt"

	"github.com/grindlemire/go-grid/internal/layout"
)

// Position places one child on the grid: its top-left cell and the number of
// columns and rows it spans.
type Position struct {
	Column, Row   uint16
	Width, Height uint16
}

// NewPosition returns a Position at (column, row) spanning width×height cells.
func NewPosition(column, row, width, height uint16) Position {
	return Position{Column: column, Row: row, Width: width, Height: height}
}

// At returns a Position covering the single cell (column, row).
func At(column, row uint16) Position {
	return NewPosition(column, row, 1, 1)
}

// Validate returns ErrInvalidSpan if the position covers no cells.
func (p Position) Validate() error {
	if p.Width == 0 || p.Height == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSpan, p)
	}
	return nil
}

// Cell returns the top-left cell as a Point.
func (p Position) Cell() Point {
	return Point{X: int(p.Column), Y: int(p.Row)}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", p.Column, p.Row, p.Width, p.Height)
}

// columns and rows compute the end line in int so a span reaching past
// 65535 does not wrap.
func (p Position) columns() layout.Line {
	return layout.Span(int(p.Column), int(p.Width))
}

func (p Position) rows() layout.Line {
	return layout.Span(int(p.Row), int(p.Height))
}
