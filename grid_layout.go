package grid

import (
	"fmt"

	"github.com/grindlemire/go-grid/internal/debug"
	"github.com/grindlemire/go-grid/internal/layout"
)

// Result is the outcome of one layout pass.
type Result struct {
	// Size is the grid's outer size, padding included.
	Size Size

	// Children holds one node per child in insertion order. Positions are
	// relative to the grid's outer top-left corner.
	Children []*Node
}

// Layout resolves the grid within limits.
func (g *Grid) Layout(limits Limits) (Result, error) {
	if g.err != nil {
		return Result{}, fail(g.err)
	}
	return Resolve(g.children, g.positions, g.config, limits)
}

// Measure resolves the grid and returns its node, so a Grid can be laid out
// by a parent like any other widget.
func (g *Grid) Measure(limits Limits) (*Node, error) {
	res, err := g.Layout(limits)
	if err != nil {
		return nil, err
	}
	return NewNodeWithChildren(res.Size, res.Children), nil
}

// Resolve lays out children at their positions within limits.
//
// Every child is measured against limits, then a style tree mirroring the
// grid is solved once. Children whose policy is fill-like on an axis stretch
// across their cell on that axis and are measured a second time with that
// axis pinned to the cell size; other children keep their measured size and
// are aligned inside the cell.
//
// On failure the error wraps ErrLayoutFailed and the cause, and no nodes are
// returned.
func Resolve(children []Widget, positions []Position, cfg Config, limits Limits) (Result, error) {
	if err := validate(children, positions); err != nil {
		return Result{}, fail(err)
	}

	measured := make([]*Node, len(children))
	for i, child := range children {
		n, err := measure(child, limits)
		if err != nil {
			return Result{}, fail(fmt.Errorf("measure child %d: %w", i, err))
		}
		measured[i] = n
	}

	root, leaves := buildTree(children, positions, measured, cfg, limits)

	width := availableSpace(limits.WidthBounded(), limits.Max.Width)
	height := availableSpace(limits.HeightBounded(), limits.Max.Height)
	if err := layout.Calculate(root, width, height); err != nil {
		return Result{}, fail(err)
	}

	nodes := make([]*Node, len(children))
	for i, child := range children {
		cell := leaves[i].Layout.Rect
		n := measured[i]

		if fillW, fillH := child.Width().IsFill(), child.Height().IsFill(); fillW || fillH {
			cellLimits := limits.Loosen()
			if fillW {
				cellLimits = cellLimits.WithWidth(cell.Width)
			}
			if fillH {
				cellLimits = cellLimits.WithHeight(cell.Height)
			}
			var err error
			if n, err = measure(child, cellLimits); err != nil {
				return Result{}, fail(fmt.Errorf("re-measure child %d: %w", i, err))
			}
		}
		nodes[i] = n.MoveTo(cell.Position())
	}

	size := root.Layout.Rect.Size()
	debug.Log("grid: %d children in %v -> %dx%d", len(children), limits, size.Width, size.Height)
	return Result{Size: size, Children: nodes}, nil
}

func validate(children []Widget, positions []Position) error {
	if len(children) != len(positions) {
		return fmt.Errorf("%w: %d children, %d positions", ErrMismatchedChildren, len(children), len(positions))
	}
	for i, p := range positions {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

func fail(err error) error {
	debug.Log("grid: %v", err)
	return fmt.Errorf("%w: %w", ErrLayoutFailed, err)
}

func measure(w Widget, limits Limits) (*Node, error) {
	n, err := w.Measure(limits)
	if err != nil {
		return nil, err
	}
	if n == nil {
		n = NewNode(Size{})
	}
	return n, nil
}

// buildTree mirrors the grid as a solver tree: a grid container with one
// leaf per child, in child order.
func buildTree(children []Widget, positions []Position, measured []*Node, cfg Config, limits Limits) (*layout.Node, []*layout.Node) {
	columns, rows := 0, 0
	for _, p := range positions {
		columns = max(columns, p.columns().End)
		rows = max(rows, p.rows().End)
	}

	style := layout.DefaultStyle()
	style.Display = layout.DisplayGrid
	style.Padding = cfg.Padding.NonNegative()
	style.ColumnGap = max(0, cfg.ColumnSpacing)
	style.RowGap = max(0, cfg.RowSpacing)
	style.JustifyItems = cfg.HorizontalAlignment
	style.AlignItems = cfg.VerticalAlignment
	style.Width = containerSize(cfg.Width, limits.Min.Width, limits.Max.Width)
	style.Height = containerSize(cfg.Height, limits.Min.Height, limits.Max.Height)
	style.GridTemplateColumns = trackSizes(columns, cfg.ColumnWidth)
	style.GridTemplateRows = trackSizes(rows, cfg.RowHeight)
	root := layout.NewNode(style)

	leaves := make([]*layout.Node, len(children))
	for i, child := range children {
		size := measured[i].Size()
		leaf := layout.NewNode(layout.DefaultStyle())
		leaf.Style.GridColumn = positions[i].columns()
		leaf.Style.GridRow = positions[i].rows()

		// Fill-like axes are left to the tracks; the rest are pinned to the
		// measured size.
		if child.Width().IsFill() {
			stretch := layout.AlignStretch
			leaf.Style.JustifySelf = &stretch
		} else {
			leaf.Style.Width = layout.Fixed(size.Width)
		}
		if child.Height().IsFill() {
			stretch := layout.AlignStretch
			leaf.Style.AlignSelf = &stretch
		} else {
			leaf.Style.Height = layout.Fixed(size.Height)
		}

		leaves[i] = leaf
		root.AddChild(leaf)
	}
	return root, leaves
}

// containerSize maps the grid's own policy on one axis. Shrink sizes to
// content. Fill-like policies take the whole axis when it is bounded and
// size to content otherwise.
func containerSize(l Length, lo, hi int) layout.Value {
	switch {
	case l.Kind == LengthFixed:
		return layout.Fixed(resolveAxis(l, 0, lo, hi))
	case l.IsFill() && hi != Unbounded:
		return layout.Percent(100)
	default:
		return layout.Auto()
	}
}

func trackSizes(n int, policy func(int) Length) []layout.TrackSize {
	tracks := make([]layout.TrackSize, n)
	for i := range tracks {
		tracks[i] = trackSize(policy(i))
	}
	return tracks
}

// trackSize maps a track policy: Shrink fits content, Fixed reserves at
// least its cells, and fill-like policies share the free space by weight.
func trackSize(l Length) layout.TrackSize {
	switch l.Kind {
	case LengthFixed:
		return layout.TrackFixed(l.Amount)
	case LengthFill:
		return layout.TrackFr(1)
	case LengthFillPortion:
		return layout.TrackFr(float64(l.Amount))
	default:
		return layout.TrackAuto()
	}
}

func availableSpace(bounded bool, amount int) layout.Space {
	if !bounded {
		return layout.Indefinite()
	}
	return layout.Definite(amount)
}
