package grid

import (
	"fmt"
	"math"
)

// Config holds the grid-wide settings.
type Config struct {
	// HorizontalAlignment and VerticalAlignment place content inside its
	// cell. Children whose policy on an axis is fill-like stretch across the
	// cell on that axis regardless.
	HorizontalAlignment Align
	VerticalAlignment   Align

	ColumnSpacing int // Cells between adjacent columns
	RowSpacing    int // Cells between adjacent rows
	Padding       Edges

	// Width and Height are the sizing policy of the grid container itself.
	Width  Length
	Height Length

	// ColumnWidths and RowHeights are per-track policies, reused cyclically
	// when the grid has more tracks than entries.
	ColumnWidths []Length
	RowHeights   []Length
}

// DefaultConfig returns the settings of a new Grid.
func DefaultConfig() Config {
	return Config{
		HorizontalAlignment: AlignStart,
		VerticalAlignment:   AlignCenter,
		ColumnSpacing:       1,
		RowSpacing:          1,
		Width:               Shrink(),
		Height:              Shrink(),
		ColumnWidths:        []Length{Fill()},
		RowHeights:          []Length{Fill()},
	}
}

// ColumnWidth returns the policy of column i. With no policies set, every
// column fills.
func (c Config) ColumnWidth(i int) Length {
	return cyclic(c.ColumnWidths, i)
}

// RowHeight returns the policy of row i. With no policies set, every row
// fills.
func (c Config) RowHeight(i int) Length {
	return cyclic(c.RowHeights, i)
}

func cyclic(lengths []Length, i int) Length {
	if len(lengths) == 0 {
		return Fill()
	}
	return lengths[i%len(lengths)]
}

var _ Widget = (*Grid)(nil)

// Grid arranges child widgets into rows and columns.
//
// A Grid is built once per render: push children, adjust settings with the
// Set* methods (each returns the grid for chaining), then lay it out. The
// grid owns its children; nothing else should lay them out.
type Grid struct {
	children  []Widget
	positions []Position
	config    Config

	// Builder cursor: where the next Push lands. It may pass the last
	// addressable cell; Push checks before converting.
	column, row int

	// err is the first builder failure; Layout reports it.
	err error
}

// New returns an empty grid with DefaultConfig, then applies opts.
func New(opts ...Option) *Grid {
	g := &Grid{config: DefaultConfig()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Push adds w at the cursor, spanning one cell, and moves the cursor one
// column right. A cursor past the last addressable cell drops w and makes
// Layout fail with ErrCursorOverflow.
func (g *Grid) Push(w Widget) *Grid {
	if g.column > math.MaxUint16 || g.row > math.MaxUint16 {
		if g.err == nil {
			g.err = fmt.Errorf("%w: child %d at (%d,%d)", ErrCursorOverflow, len(g.children), g.column, g.row)
		}
		return g
	}
	g.children = append(g.children, w)
	g.positions = append(g.positions, At(uint16(g.column), uint16(g.row)))
	g.column++
	return g
}

// PushAt adds w at pos. The cursor moves to the cell diagonally past pos,
// (column+width, row+height). Overlapping an existing child is allowed;
// later children are drawn on top.
func (g *Grid) PushAt(w Widget, pos Position) *Grid {
	g.children = append(g.children, w)
	g.positions = append(g.positions, pos)
	g.column = int(pos.Column) + int(pos.Width)
	g.row = int(pos.Row) + int(pos.Height)
	return g
}

// Err returns the first builder failure, or nil.
func (g *Grid) Err() error {
	return g.err
}

// EndRow moves the cursor to the first column of the next row.
func (g *Grid) EndRow() *Grid {
	g.column = 0
	g.row++
	return g
}

// SetHorizontalAlignment sets where content sits horizontally in its cell.
func (g *Grid) SetHorizontalAlignment(a Align) *Grid {
	g.config.HorizontalAlignment = a
	return g
}

// SetVerticalAlignment sets where content sits vertically in its cell.
func (g *Grid) SetVerticalAlignment(a Align) *Grid {
	g.config.VerticalAlignment = a
	return g
}

// SetSpacing sets the spacing between both columns and rows.
func (g *Grid) SetSpacing(cells int) *Grid {
	return g.SetColumnSpacing(cells).SetRowSpacing(cells)
}

// SetColumnSpacing sets the spacing between columns. Negative values become 0.
func (g *Grid) SetColumnSpacing(cells int) *Grid {
	g.config.ColumnSpacing = max(0, cells)
	return g
}

// SetRowSpacing sets the spacing between rows. Negative values become 0.
func (g *Grid) SetRowSpacing(cells int) *Grid {
	g.config.RowSpacing = max(0, cells)
	return g
}

// SetPadding sets the padding around the grid content. Negative sides
// become 0.
func (g *Grid) SetPadding(p Edges) *Grid {
	g.config.Padding = p.NonNegative()
	return g
}

// SetWidth sets the sizing policy of the grid's width.
func (g *Grid) SetWidth(l Length) *Grid {
	g.config.Width = l
	return g
}

// SetHeight sets the sizing policy of the grid's height.
func (g *Grid) SetHeight(l Length) *Grid {
	g.config.Height = l
	return g
}

// SetColumnWidth applies one policy to every column.
func (g *Grid) SetColumnWidth(l Length) *Grid {
	g.config.ColumnWidths = []Length{l}
	return g
}

// SetRowHeight applies one policy to every row.
func (g *Grid) SetRowHeight(l Length) *Grid {
	g.config.RowHeights = []Length{l}
	return g
}

// SetColumnWidths sets per-column policies, reused cyclically.
func (g *Grid) SetColumnWidths(ls ...Length) *Grid {
	g.config.ColumnWidths = append([]Length(nil), ls...)
	return g
}

// SetRowHeights sets per-row policies, reused cyclically.
func (g *Grid) SetRowHeights(ls ...Length) *Grid {
	g.config.RowHeights = append([]Length(nil), ls...)
	return g
}

// Children returns the children in insertion order.
func (g *Grid) Children() []Widget {
	return g.children
}

// Positions returns the children's positions in insertion order.
func (g *Grid) Positions() []Position {
	return g.positions
}

// Config returns a copy of the grid's settings.
func (g *Grid) Config() Config {
	c := g.config
	c.ColumnWidths = append([]Length(nil), c.ColumnWidths...)
	c.RowHeights = append([]Length(nil), c.RowHeights...)
	return c
}

// Len returns the number of children.
func (g *Grid) Len() int {
	return len(g.children)
}

// Cursor returns the cell where the next Push lands. It can lie past the
// last addressable cell after PushAt near the edge.
func (g *Grid) Cursor() (column, row int) {
	return g.column, g.row
}

// ColumnCount returns the number of columns the children reach.
func (g *Grid) ColumnCount() int {
	n := 0
	for _, p := range g.positions {
		n = max(n, p.columns().End)
	}
	return n
}

// RowCount returns the number of rows the children reach.
func (g *Grid) RowCount() int {
	n := 0
	for _, p := range g.positions {
		n = max(n, p.rows().End)
	}
	return n
}

// Width returns the grid's horizontal policy.
func (g *Grid) Width() Length {
	return g.config.Width
}

// Height returns the grid's vertical policy.
func (g *Grid) Height() Length {
	return g.config.Height
}
