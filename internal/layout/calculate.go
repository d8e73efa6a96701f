package layout

import "fmt"

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout field populated.
// Only dirty nodes are recalculated (incremental layout).
//
// width and height specify the root constraint. An Auto-sized flex root
// fills definite space; an Auto-sized grid root, or any Auto root on an
// indefinite axis, takes its intrinsic size instead.
//
// The whole tree is validated before any layout is stored, so a failed call
// leaves every node's previous Layout untouched.
func Calculate(root Layoutable, width, height Space) error {
	if root == nil {
		return ErrNilRoot
	}
	if err := validateTree(root); err != nil {
		return err
	}

	// For the root node, resolve its width/height constraints against
	// the available space. This is different from child nodes, which
	// receive their size from the parent's flex or grid calculations.
	style := root.LayoutStyle()
	intrinsic := func() Size {
		w, h := root.IntrinsicSize()
		return Size{Width: w, Height: h}
	}

	w := resolveRootAxis(style.Width, width, style.Display, func() int { return intrinsic().Width })
	h := resolveRootAxis(style.Height, height, style.Display, func() int { return intrinsic().Height })

	calculateNode(root, NewRect(0, 0, w, h))
	return nil
}

func resolveRootAxis(v Value, space Space, display Display, intrinsic func() int) int {
	if v.IsAuto() {
		if display == DisplayGrid || !space.Definite {
			return intrinsic()
		}
		return space.Amount
	}
	if !space.Definite && v.Unit == UnitPercent {
		return intrinsic()
	}
	return v.Resolve(space.Amount, space.Amount)
}

// validateTree checks every grid container's tracks and item placements.
func validateTree(node Layoutable) error {
	style := node.LayoutStyle()
	children := node.LayoutChildren()

	if style.Display == DisplayGrid {
		for _, defs := range [][]TrackSize{
			style.GridTemplateColumns,
			style.GridTemplateRows,
			{style.GridAutoColumns, style.GridAutoRows},
		} {
			for _, track := range defs {
				if err := track.validate(); err != nil {
					return err
				}
			}
		}
		for i, child := range children {
			cs := child.LayoutStyle()
			if !cs.GridColumn.Valid() || !cs.GridRow.Valid() {
				return fmt.Errorf("%w: item %d at column %v row %v",
					ErrInvalidPlacement, i, cs.GridColumn, cs.GridRow)
			}
		}
	}

	for _, child := range children {
		if err := validateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// calculateNode computes the layout for a single node within the available space.
// The available rect represents the border box space allocated by the parent
// (after the parent has already applied this node's margin).
func calculateNode(node Layoutable, available Rect) {
	// Dirty propagates up, so a clean node guarantees a clean subtree
	if !node.IsDirty() {
		return
	}

	style := node.LayoutStyle()

	// 1. Compute this node's border box within available space
	borderBox := computeBorderBox(style, available)

	// 2. Compute content rect (border box minus padding)
	contentRect := borderBox.Inset(style.Padding)

	// 3. Layout children within content rect
	if len(node.LayoutChildren()) > 0 {
		switch style.Display {
		case DisplayGrid:
			layoutGrid(node, contentRect)
		default:
			layoutFlex(node, contentRect)
		}
	}

	// 4. Store computed layout
	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})

	// 5. Clear dirty flag
	node.SetDirty(false)
}

// computeBorderBox calculates the border box dimensions for a node.
// The available rect is the space allocated by the parent (after margin and
// flex or grid sizing), so this function just uses the available dimensions
// directly. Only min/max constraints are applied.
func computeBorderBox(style Style, available Rect) Rect {
	width := clampAxis(available.Width, style.MinWidth, style.MaxWidth, Definite(available.Width))
	height := clampAxis(available.Height, style.MinHeight, style.MaxHeight, Definite(available.Height))

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  width,
		Height: height,
	}
}

// clampAxis restricts v to the min/max values resolved against space.
// An Auto maximum means no maximum. If min > max, min wins (matches CSS
// behavior). The result is never negative.
func clampAxis(v int, minVal, maxVal Value, space Space) int {
	lo := minVal.ResolveSpace(space, 0)
	if !maxVal.IsAuto() {
		hi := maxVal.ResolveSpace(space, v)
		if v > hi {
			v = hi
		}
	}
	if v < lo {
		v = lo
	}
	return max(0, v)
}

// outerSize returns a child's preferred border-box size plus its margin,
// resolving percentages against the given space. Auto dimensions come from
// the child's intrinsic size.
func outerSize(child Layoutable, width, height Space) Size {
	style := child.LayoutStyle()

	var iw, ih int
	if needsIntrinsic(style.Width, width) || needsIntrinsic(style.Height, height) {
		iw, ih = child.IntrinsicSize()
	}

	w := clampAxis(style.Width.ResolveSpace(width, iw), style.MinWidth, style.MaxWidth, width)
	h := clampAxis(style.Height.ResolveSpace(height, ih), style.MinHeight, style.MaxHeight, height)

	return Size{
		Width:  w + style.Margin.Horizontal(),
		Height: h + style.Margin.Vertical(),
	}
}

func needsIntrinsic(v Value, space Space) bool {
	return v.IsAuto() || (v.Unit == UnitPercent && !space.Definite)
}
