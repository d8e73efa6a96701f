package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	grid "github.com/grindlemire/go-grid"
)

// pen selects how painted cells are styled.
type pen uint8

const (
	penNormal pen = iota
	penSelected
	penDebug
	penHelp
)

var styles = map[pen]lipgloss.Style{
	penSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	penDebug:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	penHelp:     lipgloss.NewStyle().Faint(true),
}

type cell struct {
	text    string // Empty for the trailing half of a wide rune
	pen     pen
	painted bool
}

var _ grid.Surface = (*canvas)(nil)

// canvas is a fixed-size cell buffer that widgets paint onto.
type canvas struct {
	width, height int
	cells         [][]cell
	pen           pen
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(0, width), height: max(0, height)}
	c.cells = make([][]cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]cell, c.width)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{text: " "}
		}
	}
	return c
}

// SetString implements grid.Surface. Text outside the canvas is clipped.
func (c *canvas) SetString(x, y int, s string) {
	if y < 0 || y >= c.height {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= c.width {
			c.cells[y][x] = cell{text: string(r), pen: c.pen, painted: true}
			for i := 1; i < w; i++ {
				c.cells[y][x+i] = cell{pen: c.pen, painted: true}
			}
		}
		x += w
	}
}

// outline dots the cells no widget painted inside every box below root, so
// the space each widget received is visible. root itself is not outlined.
// origin is the absolute position of root.
func (c *canvas) outline(root *grid.Node, origin grid.Point) {
	for _, child := range root.Children() {
		c.outlineBox(child, origin.Add(child.Position()))
	}
}

func (c *canvas) outlineBox(n *grid.Node, origin grid.Point) {
	for _, child := range n.Children() {
		c.outlineBox(child, origin.Add(child.Position()))
	}
	size := n.Size()
	for y := max(0, origin.Y); y < min(c.height, origin.Y+size.Height); y++ {
		for x := max(0, origin.X); x < min(c.width, origin.X+size.Width); x++ {
			if !c.cells[y][x].painted {
				c.cells[y][x] = cell{text: "·", pen: penDebug}
			}
		}
	}
}

// lines returns the canvas as plain text, trailing blanks trimmed.
func (c *canvas) lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteString(cl.text)
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Render returns the canvas as styled text, one line per row.
func (c *canvas) Render() string {
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		end := len(row)
		for end > 0 && row[end-1].text == " " && row[end-1].pen == penNormal {
			end--
		}
		for x := 0; x < end; {
			p := row[x].pen
			var run strings.Builder
			for ; x < end && row[x].pen == p; x++ {
				run.WriteString(row[x].text)
			}
			if style, ok := styles[p]; ok {
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
		}
	}
	return b.String()
}

// styled paints its widget with a pen when the surface is a canvas.
type styled struct {
	grid.Widget
	pen pen
}

func (s styled) Paint(surface grid.Surface, n *grid.Node, origin grid.Point) {
	p, ok := s.Widget.(grid.Painter)
	if !ok {
		return
	}
	if c, ok := surface.(*canvas); ok {
		prev := c.pen
		c.pen = s.pen
		defer func() { c.pen = prev }()
	}
	p.Paint(surface, n, origin)
}
