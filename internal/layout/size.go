package layout

// Size represents a width/height pair in terminal cells.
type Size struct {
	Width, Height int
}

// Pad returns the size grown by the given edges on every side.
func (s Size) Pad(edges Edges) Size {
	return Size{
		Width:  s.Width + edges.Horizontal(),
		Height: s.Height + edges.Vertical(),
	}
}

// Max returns the component-wise maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}
