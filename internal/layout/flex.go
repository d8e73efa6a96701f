package layout

// flexItem is one child's state during a flex pass. Sizes include the
// child's margin.
type flexItem struct {
	node     Layoutable
	style    Style
	base     int
	main     int
	cross    int
	mainPos  int
	crossPos int
}

// axes maps main/cross quantities onto width/height for one direction.
type axes struct {
	row bool
}

func (a axes) main(s Size) int {
	if a.row {
		return s.Width
	}
	return s.Height
}

func (a axes) cross(s Size) int {
	if a.row {
		return s.Height
	}
	return s.Width
}

func (a axes) size(main, cross int) Size {
	if a.row {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (a axes) mainValue(s Style) Value {
	if a.row {
		return s.Width
	}
	return s.Height
}

func (a axes) crossValue(s Style) Value {
	if a.row {
		return s.Height
	}
	return s.Width
}

func (a axes) mainMargin(e Edges) int {
	if a.row {
		return e.Horizontal()
	}
	return e.Vertical()
}

func (a axes) crossMargin(e Edges) int {
	if a.row {
		return e.Vertical()
	}
	return e.Horizontal()
}

func (a axes) clampMain(v int, s Style, space Space) int {
	if a.row {
		return clampAxis(v, s.MinWidth, s.MaxWidth, space)
	}
	return clampAxis(v, s.MinHeight, s.MaxHeight, space)
}

// slot returns the rect at main/cross offsets inside content.
func (a axes) slot(content Rect, mainPos, crossPos, mainSize, crossSize int) Rect {
	pos := a.size(mainPos, crossPos)
	size := a.size(mainSize, crossSize)
	return Rect{X: content.X + pos.Width, Y: content.Y + pos.Height, Width: size.Width, Height: size.Height}
}

// layoutFlex places the children of a flex container within contentRect:
// base sizes, grow/shrink, min/max, justify along the main axis, then
// align on the cross axis.
func layoutFlex(node Layoutable, contentRect Rect) {
	children := node.LayoutChildren()
	if len(children) == 0 {
		return
	}

	style := node.LayoutStyle()
	ax := axes{row: style.Direction == Row}
	mainSize, crossSize := ax.main(contentRect.Size()), ax.cross(contentRect.Size())
	gaps := style.Gap * (len(children) - 1)

	items := make([]flexItem, len(children))
	used, grow, shrink := 0, 0.0, 0.0
	for i, child := range children {
		s := child.LayoutStyle()
		intrinsic := 0
		if ax.mainValue(s).IsAuto() {
			w, h := child.IntrinsicSize()
			intrinsic = ax.main(Size{Width: w, Height: h})
		}
		base := ax.mainValue(s).Resolve(mainSize, intrinsic) + ax.mainMargin(s.Margin)
		items[i] = flexItem{node: child, style: s, base: base}
		used += base
		grow += s.FlexGrow
		shrink += s.FlexShrink
	}

	flexLengths(items, mainSize-used-gaps, grow, shrink)

	used = 0
	for i := range items {
		items[i].main = ax.clampMain(items[i].main, items[i].style, Definite(mainSize))
		used += items[i].main
	}
	free := mainSize - used - gaps
	offset := calculateJustifyOffset(style.JustifyContent, free, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, free, len(items))

	for i := range items {
		it := &items[i]
		it.mainPos = offset
		offset += it.main + style.Gap + spacing
		it.cross, it.crossPos = crossPlacement(ax, style.AlignItems, it, crossSize)

		// The child receives its border box; margin is not applied again.
		slot := ax.slot(contentRect, it.mainPos, it.crossPos, it.main, it.cross)
		calculateNode(it.node, slot.Inset(it.style.Margin))
	}
}

// flexLengths shares positive free space by grow factor, or a deficit by
// shrink factor. Shrinking never goes below zero.
func flexLengths(items []flexItem, free int, grow, shrink float64) {
	for i := range items {
		it := &items[i]
		it.main = it.base
		switch {
		case free > 0 && grow > 0 && it.style.FlexGrow > 0:
			it.main += int(float64(free) * it.style.FlexGrow / grow)
		case free < 0 && shrink > 0 && it.style.FlexShrink > 0:
			it.main = max(0, it.base-int(float64(-free)*it.style.FlexShrink/shrink))
		}
	}
}

// crossPlacement returns an item's cross size and offset, margin included.
// An Auto cross size spans the whole line.
func crossPlacement(ax axes, alignItems Align, it *flexItem, crossSize int) (size, pos int) {
	align := alignItems
	if it.style.AlignSelf != nil {
		align = *it.style.AlignSelf
	}
	value := ax.crossValue(it.style)
	margin := ax.crossMargin(it.style.Margin)
	available := crossSize - margin

	if value.IsAuto() {
		if align == AlignStretch {
			return crossSize, 0
		}
		size = crossSize
	} else {
		size = value.Resolve(available, available) + margin
	}
	return size, calculateAlignOffset(align, crossSize, size)
}

// flexContentSize returns the intrinsic size of a flex container: children
// stacked along the main axis with gaps, the largest child on the cross axis,
// plus the container's padding.
func flexContentSize(node Layoutable) Size {
	style := node.LayoutStyle()
	ax := axes{row: style.Direction == Row}

	main, cross := 0, 0
	for i, child := range node.LayoutChildren() {
		outer := outerSize(child, Indefinite(), Indefinite())
		if i > 0 {
			main += style.Gap
		}
		main += ax.main(outer)
		cross = max(cross, ax.cross(outer))
	}
	return ax.size(main, cross).Pad(style.Padding)
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
