package layout

// Layout is a solved box.
type Layout struct {
	// Rect is the border box in the parent's coordinates, margin already
	// removed.
	Rect Rect

	// ContentRect is Rect inset by padding. Children are placed inside it.
	ContentRect Rect
}
