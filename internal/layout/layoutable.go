package layout

// Layoutable is a box the solver can place. Node is the stock
// implementation; grid and row widgets build Node trees from their children.
type Layoutable interface {
	LayoutStyle() Style
	LayoutChildren() []Layoutable

	// SetLayout records the solved rects; GetLayout reads them back.
	SetLayout(Layout)
	GetLayout() Layout

	// Clean boxes keep their previous rects when solved against the same
	// space.
	IsDirty() bool
	SetDirty(dirty bool)

	// IntrinsicSize is the padded content size used for Auto dimensions
	// and for indefinite space.
	IntrinsicSize() (width, height int)
}
