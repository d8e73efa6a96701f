package grid

// Option configures a Grid.
type Option func(*Grid)

// --- Alignment Options ---

// WithHorizontalAlignment sets where content sits horizontally in its cell.
func WithHorizontalAlignment(a Align) Option {
	return func(g *Grid) {
		g.SetHorizontalAlignment(a)
	}
}

// WithVerticalAlignment sets where content sits vertically in its cell.
func WithVerticalAlignment(a Align) Option {
	return func(g *Grid) {
		g.SetVerticalAlignment(a)
	}
}

// --- Spacing Options ---

// WithSpacing sets the spacing between both columns and rows.
func WithSpacing(cells int) Option {
	return func(g *Grid) {
		g.SetSpacing(cells)
	}
}

// WithColumnSpacing sets the spacing between columns.
func WithColumnSpacing(cells int) Option {
	return func(g *Grid) {
		g.SetColumnSpacing(cells)
	}
}

// WithRowSpacing sets the spacing between rows.
func WithRowSpacing(cells int) Option {
	return func(g *Grid) {
		g.SetRowSpacing(cells)
	}
}

// WithPadding sets the padding around the grid content.
func WithPadding(p Edges) Option {
	return func(g *Grid) {
		g.SetPadding(p)
	}
}

// --- Sizing Options ---

// WithWidth sets the sizing policy of the grid's width.
func WithWidth(l Length) Option {
	return func(g *Grid) {
		g.SetWidth(l)
	}
}

// WithHeight sets the sizing policy of the grid's height.
func WithHeight(l Length) Option {
	return func(g *Grid) {
		g.SetHeight(l)
	}
}

// WithColumnWidth applies one policy to every column.
func WithColumnWidth(l Length) Option {
	return func(g *Grid) {
		g.SetColumnWidth(l)
	}
}

// WithRowHeight applies one policy to every row.
func WithRowHeight(l Length) Option {
	return func(g *Grid) {
		g.SetRowHeight(l)
	}
}

// WithColumnWidths sets per-column policies, reused cyclically.
func WithColumnWidths(ls ...Length) Option {
	return func(g *Grid) {
		g.SetColumnWidths(ls...)
	}
}

// WithRowHeights sets per-row policies, reused cyclically.
func WithRowHeights(ls ...Length) Option {
	return func(g *Grid) {
		g.SetRowHeights(ls...)
	}
}
