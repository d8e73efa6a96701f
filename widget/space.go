package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	grid "github.com/grindlemire/go-grid"
)

var (
	_ grid.Widget  = (*Space)(nil)
	_ grid.Painter = (*Space)(nil)
)

// Space is a widget with no content. It takes whatever its sizing policies
// give it and, with a pattern, paints that pattern across its box.
type Space struct {
	sizing
	pattern string
}

// NewSpace returns an empty Space. Without options it shrinks to nothing.
func NewSpace(opts ...Option) *Space {
	return &Space{sizing: newSizing(opts)}
}

// Filled returns s painting pattern repeated across every row of its box.
func (s *Space) Filled(pattern string) *Space {
	s.pattern = pattern
	return s
}

// Measure implements grid.Widget.
func (s *Space) Measure(limits grid.Limits) (*grid.Node, error) {
	return grid.NewNode(limits.Resolve(s.width, s.height, grid.Size{})), nil
}

// Paint implements grid.Painter.
func (s *Space) Paint(surface grid.Surface, n *grid.Node, origin grid.Point) {
	size := n.Size()
	w := runewidth.StringWidth(s.pattern)
	if w == 0 || size.Width <= 0 {
		return
	}
	line := runewidth.Truncate(strings.Repeat(s.pattern, size.Width/w+1), size.Width, "")
	for y := 0; y < size.Height; y++ {
		surface.SetString(origin.X, origin.Y+y, line)
	}
}
