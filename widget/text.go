package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"

	grid "github.com/grindlemire/go-grid"
)

var (
	_ grid.Widget  = (*Text)(nil)
	_ grid.Painter = (*Text)(nil)
)

// Text is a label of one or more lines. Its intrinsic size is the display
// width of its widest line by the number of lines.
type Text struct {
	sizing
	lines []string
}

// NewText returns a Text showing content. Lines are split on '\n'.
func NewText(content string, opts ...Option) *Text {
	return &Text{
		sizing: newSizing(opts),
		lines:  strings.Split(content, "\n"),
	}
}

// Content returns the text shown.
func (t *Text) Content() string {
	return strings.Join(t.lines, "\n")
}

// Measure implements grid.Widget.
func (t *Text) Measure(limits grid.Limits) (*grid.Node, error) {
	intrinsic := grid.Size{Height: len(t.lines)}
	for _, line := range t.lines {
		intrinsic.Width = max(intrinsic.Width, runewidth.StringWidth(line))
	}
	return grid.NewNode(limits.Resolve(t.width, t.height, intrinsic)), nil
}

// Paint implements grid.Painter. Lines are clipped to the node's box.
func (t *Text) Paint(s grid.Surface, n *grid.Node, origin grid.Point) {
	size := n.Size()
	for i, line := range t.lines {
		if i >= size.Height {
			return
		}
		s.SetString(origin.X, origin.Y+i, runewidth.Truncate(line, size.Width, ""))
	}
}
