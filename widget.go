package grid

//go:generate mockgen -source=widget.go -destination=mock_widget_test.go -package=grid

// Widget is anything a Grid can lay out.
type Widget interface {
	// Width returns the widget's horizontal sizing policy.
	Width() Length

	// Height returns the widget's vertical sizing policy.
	Height() Length

	// Measure lays the widget out within limits. It may be called more than
	// once per layout pass and must return the same result for the same
	// limits.
	Measure(limits Limits) (*Node, error)
}

// Surface is a cell canvas that widgets paint text onto.
type Surface interface {
	SetString(x, y int, s string)
}

// Painter is implemented by widgets that can draw themselves. origin is the
// absolute position of n on the surface.
type Painter interface {
	Paint(s Surface, n *Node, origin Point)
}
