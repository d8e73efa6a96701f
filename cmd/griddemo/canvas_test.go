package main

import (
	"testing"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/widget"
)

func TestCanvas_SetString(t *testing.T) {
	type tc struct {
		x, y     int
		text     string
		expected []string
	}

	tests := map[string]tc{
		"inside":           {x: 1, y: 0, text: "ab", expected: []string{" ab", ""}},
		"clipped right":    {x: 4, y: 1, text: "abc", expected: []string{"", "    a"}},
		"clipped left":     {x: -1, y: 0, text: "abc", expected: []string{"bc", ""}},
		"outside rows":     {x: 0, y: 2, text: "abc", expected: []string{"", ""}},
		"wide rune":        {x: 0, y: 0, text: "日x", expected: []string{"日x", ""}},
		"wide rune at end": {x: 4, y: 0, text: "日", expected: []string{"", ""}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newCanvas(5, 2)
			c.SetString(tt.x, tt.y, tt.text)

			got := c.lines()
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("line %d = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func TestCanvas_Outline(t *testing.T) {
	type tc struct {
		paint    string
		box      *grid.Node
		expected []string
	}

	tests := map[string]tc{
		"leaf": {
			paint:    "ab",
			box:      grid.NewNode(grid.Size{Width: 4, Height: 1}).MoveTo(grid.Point{X: 1}),
			expected: []string{" ab··", ""},
		},
		"painted blanks stay blank": {
			paint:    "a b",
			box:      grid.NewNode(grid.Size{Width: 4, Height: 1}).MoveTo(grid.Point{X: 1}),
			expected: []string{" a b·", ""},
		},
		"nested box gaps": {
			paint: "a",
			box: grid.NewNodeWithChildren(grid.Size{Width: 3, Height: 1}, []*grid.Node{
				grid.NewNode(grid.Size{Width: 1, Height: 1}),
			}).MoveTo(grid.Point{X: 1}),
			expected: []string{" a··", ""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newCanvas(6, 2)
			c.SetString(1, 0, tt.paint)
			root := grid.NewNodeWithChildren(grid.Size{Width: 6, Height: 2}, []*grid.Node{tt.box})

			c.outline(root, grid.Point{})

			got := c.lines()
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("line %d = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func TestCanvas_RenderPlainRows(t *testing.T) {
	c := newCanvas(4, 2)
	c.SetString(0, 1, "hi")

	if got, want := c.Render(), "\nhi"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestStyled_SetsPenWhilePainting(t *testing.T) {
	c := newCanvas(3, 1)
	w := styled{Widget: widget.NewText("ab"), pen: penSelected}

	w.Paint(c, grid.NewNode(grid.Size{Width: 2, Height: 1}), grid.Point{})

	if c.cells[0][0].pen != penSelected || c.cells[0][1].pen != penSelected {
		t.Error("styled text not painted with its pen")
	}
	if c.pen != penNormal {
		t.Errorf("canvas pen = %v after paint, want penNormal", c.pen)
	}
}
