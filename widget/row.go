package widget

import (
	"fmt"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/layout"
)

var (
	_ grid.Widget  = (*Row)(nil)
	_ grid.Painter = (*Row)(nil)
)

// Row lays its children out left to right. Children with a fill-like width
// share the space left over by weight; the rest keep their measured width.
// Children with a fill-like height take the row's height.
// A Shrink row has no space left over, so its fill children get none.
type Row struct {
	sizing
	children []grid.Widget
	spacing  int
	align    grid.Align
}

// NewRow returns a Row holding children, vertically aligned to the top.
func NewRow(children []grid.Widget, opts ...Option) *Row {
	return &Row{
		sizing:   newSizing(opts),
		children: children,
		align:    grid.AlignStart,
	}
}

// Push appends a child and returns the row.
func (r *Row) Push(w grid.Widget) *Row {
	r.children = append(r.children, w)
	return r
}

// Spacing sets the cells between adjacent children. Negative values become 0.
func (r *Row) Spacing(cells int) *Row {
	r.spacing = max(0, cells)
	return r
}

// Align sets the vertical alignment of children shorter than the row.
func (r *Row) Align(a grid.Align) *Row {
	r.align = a
	return r
}

// Children returns the row's children.
func (r *Row) Children() []grid.Widget {
	return r.children
}

// Measure implements grid.Widget.
func (r *Row) Measure(limits grid.Limits) (*grid.Node, error) {
	childLimits := limits.Loosen()
	measured := make([]*grid.Node, len(r.children))
	for i, child := range r.children {
		n, err := measureChild(child, childLimits)
		if err != nil {
			return nil, fmt.Errorf("row child %d: %w", i, err)
		}
		measured[i] = n
	}

	style := layout.DefaultStyle()
	style.Direction = layout.Row
	style.Gap = r.spacing
	style.AlignItems = r.align
	var width, height layout.Space
	width, style.Width = axis(r.width, limits.Min.Width, limits.Max.Width)
	height, style.Height = axis(r.height, limits.Min.Height, limits.Max.Height)
	root := layout.NewNode(style)

	leaves := make([]*layout.Node, len(r.children))
	for i, child := range r.children {
		size := measured[i].Size()
		leaf := layout.NewNode(layout.DefaultStyle())
		leaf.Style.FlexShrink = 0
		leaf.Content = size
		if w := child.Width(); w.IsFill() {
			leaf.Style.Width = layout.Fixed(0)
			leaf.Style.FlexGrow = float64(w.Portion())
		} else {
			leaf.Style.Width = layout.Fixed(size.Width)
		}
		if child.Height().IsFill() {
			stretch := layout.AlignStretch
			leaf.Style.AlignSelf = &stretch
			leaf.Content.Height = 0
		} else {
			leaf.Style.Height = layout.Fixed(size.Height)
		}
		leaves[i] = leaf
		root.AddChild(leaf)
	}

	if err := layout.Calculate(root, width, height); err != nil {
		return nil, err
	}

	nodes := make([]*grid.Node, len(r.children))
	for i, child := range r.children {
		slot := leaves[i].Layout.Rect
		n := measured[i]
		if fillW, fillH := child.Width().IsFill(), child.Height().IsFill(); fillW || fillH {
			slotLimits := childLimits
			if fillW {
				slotLimits = slotLimits.WithWidth(slot.Width)
			}
			if fillH {
				slotLimits = slotLimits.WithHeight(slot.Height)
			}
			var err error
			if n, err = measureChild(child, slotLimits); err != nil {
				return nil, fmt.Errorf("row child %d: %w", i, err)
			}
		}
		nodes[i] = n.MoveTo(slot.Position())
	}
	rect := root.Layout.Rect
	size := limits.Resolve(grid.Fixed(rect.Width), grid.Fixed(rect.Height), grid.Size{})
	return grid.NewNodeWithChildren(size, nodes), nil
}

// measureChild measures w, treating a nil node as an empty one.
func measureChild(w grid.Widget, limits grid.Limits) (*grid.Node, error) {
	n, err := w.Measure(limits)
	if err != nil {
		return nil, err
	}
	if n == nil {
		n = grid.NewNode(grid.Size{})
	}
	return n, nil
}

// axis maps a sizing policy to the space offered to the solver and the
// root's own size. Shrink axes are solved without a bound so the row takes
// its content size.
func axis(l grid.Length, lo, hi int) (layout.Space, layout.Value) {
	switch {
	case l.Kind == grid.LengthFixed:
		n := max(min(l.Amount, hi), lo)
		return layout.Definite(n), layout.Fixed(n)
	case l.IsFill() && hi != grid.Unbounded:
		return layout.Definite(hi), layout.Auto()
	default:
		return layout.Indefinite(), layout.Auto()
	}
}

// Paint implements grid.Painter.
func (r *Row) Paint(s grid.Surface, n *grid.Node, origin grid.Point) {
	nodes := n.Children()
	for i, child := range r.children {
		if i >= len(nodes) {
			return
		}
		if p, ok := child.(grid.Painter); ok {
			p.Paint(s, nodes[i], origin.Add(nodes[i].Position()))
		}
	}
}
