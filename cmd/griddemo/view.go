package main

import (
	"fmt"
	"strings"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/widget"
)

const helpText = "↑/↓ select  ←/→ change  q quit"

var labels = [rowCount]string{
	"Horizontal alignment",
	"Vertical alignment",
	"Row spacing",
	"Column spacing",
	"Fill space",
	"Padding",
	"Debug layout",
}

// slider is a one-line bar with a knob at value out of limit.
type slider struct {
	*widget.Space
	value, limit int
}

func newSlider(width grid.Length, value, limit int) *slider {
	return &slider{
		Space: widget.NewSpace(widget.WithWidth(width), widget.WithHeight(grid.Fixed(1))),
		value: value,
		limit: limit,
	}
}

func (s *slider) Paint(surface grid.Surface, n *grid.Node, origin grid.Point) {
	w := n.Size().Width
	if w <= 0 || n.Size().Height <= 0 {
		return
	}
	knob := 0
	if s.limit > 0 {
		knob = s.value * (w - 1) / s.limit
	}
	surface.SetString(origin.X, origin.Y, strings.Repeat("━", knob)+"●"+strings.Repeat("─", w-knob-1))
}

func checkbox(label string, checked bool) *widget.Text {
	mark := " "
	if checked {
		mark = "x"
	}
	if label == "" {
		return widget.NewText("[" + mark + "]")
	}
	return widget.NewText(fmt.Sprintf("[%s] %s", mark, label))
}

func picker(value string) *widget.Text {
	return widget.NewText("< " + value + " >")
}

// numbered puts the numeric value in front of a bar. The row fills when the
// bar does.
func numbered(value int, bar grid.Widget) *widget.Row {
	width := grid.Shrink()
	if bar.Width().IsFill() {
		width = grid.Fill()
	}
	return widget.NewRow([]grid.Widget{widget.NewText(fmt.Sprintf("%2d", value)), bar},
		widget.WithWidth(width)).Spacing(1)
}

// buildGrid lays the settings form out as a two-column grid configured by s.
// The label of the selected row is highlighted.
func buildGrid(s Settings, selected int) *grid.Grid {
	values := [rowCount]grid.Widget{
		picker(s.HorizontalAlignment),
		picker(s.VerticalAlignment),
		numbered(s.RowSpacing, newSlider(grid.Fill(), s.RowSpacing, maxSpacing)),
		numbered(s.ColumnSpacing, newSlider(grid.Fill(), s.ColumnSpacing, maxSpacing)),
		widget.NewRow([]grid.Widget{checkbox("Width", s.FillWidth), checkbox("Height", s.FillHeight)}).Spacing(2),
		numbered(s.Padding, newSlider(grid.Fixed(30), s.Padding, maxPadding)),
		checkbox("", s.DebugLayout),
	}

	g := grid.New(
		grid.WithHorizontalAlignment(s.horizontal()),
		grid.WithVerticalAlignment(s.vertical()),
		grid.WithColumnSpacing(s.ColumnSpacing),
		grid.WithRowSpacing(s.RowSpacing),
		grid.WithPadding(grid.EdgeAll(s.Padding)),
	)
	if s.FillWidth {
		g.SetWidth(grid.Fill())
	}
	if s.FillHeight {
		g.SetHeight(grid.Fill())
	}

	for i, label := range labels {
		var w grid.Widget = widget.NewText(label)
		if i == selected {
			w = styled{Widget: w, pen: penSelected}
		}
		g.Push(w).Push(values[i]).EndRow()
	}
	return g
}

// render draws one frame of the demo into a width x height screen. The grid
// is centered above a help line.
func render(s Settings, selected, width, height int) (string, error) {
	c := newCanvas(width, height)
	limits := grid.Loose(grid.Size{Width: c.width, Height: max(0, c.height-1)})

	g := buildGrid(s, selected)
	res, err := g.Layout(limits)
	if err != nil {
		return "", err
	}
	node := grid.NewNodeWithChildren(res.Size, res.Children)
	origin := grid.Point{
		X: max(0, (limits.Max.Width-res.Size.Width)/2),
		Y: max(0, (limits.Max.Height-res.Size.Height)/2),
	}
	g.Paint(c, node, origin)
	if s.DebugLayout {
		c.outline(node, origin)
	}

	c.pen = penHelp
	c.SetString(0, c.height-1, helpText)
	c.pen = penNormal
	return c.Render(), nil
}
