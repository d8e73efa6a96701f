package layout

import "fmt"

// Edges holds per-side cell counts, used for padding and margin.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll uses n on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric uses v above and below, h left and right.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL takes sides clockwise from the top.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// IsZero reports whether no side is set.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// NonNegative returns a copy with every negative side raised to zero.
func (e Edges) NonNegative() Edges {
	return Edges{
		Top:    max(0, e.Top),
		Right:  max(0, e.Right),
		Bottom: max(0, e.Bottom),
		Left:   max(0, e.Left),
	}
}

// String implements fmt.Stringer in CSS order.
func (e Edges) String() string {
	return fmt.Sprintf("%d %d %d %d", e.Top, e.Right, e.Bottom, e.Left)
}
