package layout

import (
	"math"
	"sort"
)

// gridItem holds per-child placement and sizing state for one grid pass.
type gridItem struct {
	node  Layoutable
	style Style
	outer Size // Preferred border-box size plus margin
}

func (it gridItem) placed() bool {
	return it.style.GridColumn.Valid() && it.style.GridRow.Valid()
}

// trackSpan is one item's demand on an axis: it needs size cells spread
// across tracks [start, end).
type trackSpan struct {
	start, end int
	size       int
}

// layoutGrid places the children of a grid container within the given
// content rect. Items overlapping the same cells are all placed; later
// siblings come later in paint order.
//
// An axis whose container size is Auto is content-sized: flexible tracks
// take the size their content asks for rather than sharing the rect.
func layoutGrid(node Layoutable, contentRect Rect) {
	style := node.LayoutStyle()
	items := collectGridItems(node)
	columns, rows := gridTracks(style, items)

	columnSpace := Definite(contentRect.Width)
	if style.Width.IsAuto() {
		columnSpace = Indefinite()
	}
	rowSpace := Definite(contentRect.Height)
	if style.Height.IsAuto() {
		rowSpace = Indefinite()
	}

	columnGap, rowGap := max(0, style.ColumnGap), max(0, style.RowGap)
	columnSizes := sizeTracks(columns, itemSpans(items, true), columnGap, columnSpace)
	rowSizes := sizeTracks(rows, itemSpans(items, false), rowGap, rowSpace)
	columnOffsets := trackOffsets(columnSizes, columnGap)
	rowOffsets := trackOffsets(rowSizes, rowGap)

	for _, item := range items {
		if !item.placed() {
			continue
		}
		x, w := spanExtent(columnOffsets, columnSizes, item.style.GridColumn)
		y, h := spanExtent(rowOffsets, rowSizes, item.style.GridRow)
		cell := Rect{X: contentRect.X + x, Y: contentRect.Y + y, Width: w, Height: h}
		calculateNode(item.node, placeInCell(item, cell, style))
	}
}

// gridContentSize returns the size of a content-sized grid container,
// padding included.
func gridContentSize(node Layoutable) Size {
	style := node.LayoutStyle()
	items := collectGridItems(node)
	columns, rows := gridTracks(style, items)

	columnGap, rowGap := max(0, style.ColumnGap), max(0, style.RowGap)
	columnSizes := sizeTracks(columns, itemSpans(items, true), columnGap, Indefinite())
	rowSizes := sizeTracks(rows, itemSpans(items, false), rowGap, Indefinite())

	size := Size{
		Width:  sumTracks(columnSizes, columnGap),
		Height: sumTracks(rowSizes, rowGap),
	}
	return size.Pad(style.Padding)
}

func collectGridItems(node Layoutable) []gridItem {
	children := node.LayoutChildren()
	items := make([]gridItem, len(children))
	for i, child := range children {
		items[i] = gridItem{
			node:  child,
			style: child.LayoutStyle(),
			outer: outerSize(child, Indefinite(), Indefinite()),
		}
	}
	return items
}

// gridTracks returns the sizing function of every column and row. The grid
// has as many tracks as the template lists or the items reach, whichever is
// larger; tracks past the template use the auto track size.
func gridTracks(style Style, items []gridItem) (columns, rows []TrackSize) {
	columnCount, rowCount := len(style.GridTemplateColumns), len(style.GridTemplateRows)
	for _, item := range items {
		if !item.placed() {
			continue
		}
		columnCount = max(columnCount, item.style.GridColumn.End)
		rowCount = max(rowCount, item.style.GridRow.End)
	}
	columns = trackDefs(style.GridTemplateColumns, style.GridAutoColumns, columnCount)
	rows = trackDefs(style.GridTemplateRows, style.GridAutoRows, rowCount)
	return columns, rows
}

func trackDefs(template []TrackSize, auto TrackSize, count int) []TrackSize {
	defs := make([]TrackSize, count)
	for i := range defs {
		if i < len(template) {
			defs[i] = template[i]
		} else {
			defs[i] = auto
		}
	}
	return defs
}

func itemSpans(items []gridItem, columns bool) []trackSpan {
	spans := make([]trackSpan, 0, len(items))
	for _, item := range items {
		if !item.placed() {
			continue
		}
		if columns {
			line := item.style.GridColumn
			spans = append(spans, trackSpan{start: line.Start, end: line.End, size: item.outer.Width})
		} else {
			line := item.style.GridRow
			spans = append(spans, trackSpan{start: line.Start, end: line.End, size: item.outer.Height})
		}
	}
	return spans
}

// sizeTracks resolves the size of every track on one axis.
//
//  1. Fixed tracks start at their size, others at zero.
//  2. Items spanning a single track raise it to fit.
//  3. Items spanning several tracks, narrowest first, spread any shortfall
//     over the auto tracks they cross (else the flexible ones, else all).
//  4. With definite space, flexible tracks share what is left ("find the
//     size of an fr"), or, with no flexible tracks, auto tracks stretch into
//     it. With indefinite space, every flexible track grows to the largest
//     per-fr content size.
func sizeTracks(defs []TrackSize, spans []trackSpan, gap int, space Space) []int {
	sizes := make([]int, len(defs))
	if len(defs) == 0 {
		return sizes
	}

	for i, def := range defs {
		if def.Kind == TrackKindFixed {
			sizes[i] = int(def.Amount)
		}
	}

	var multi []trackSpan
	for _, s := range spans {
		if s.end-s.start == 1 {
			sizes[s.start] = max(sizes[s.start], s.size)
			continue
		}
		multi = append(multi, s)
	}

	sort.SliceStable(multi, func(i, j int) bool {
		return multi[i].end-multi[i].start < multi[j].end-multi[j].start
	})
	for _, s := range multi {
		have := gap * (s.end - s.start - 1)
		for i := s.start; i < s.end; i++ {
			have += sizes[i]
		}
		if need := s.size - have; need > 0 {
			distribute(sizes, spanTargets(defs, s), need)
		}
	}

	if !space.Definite {
		expandFlexibleIndefinite(defs, sizes)
		return sizes
	}

	free := space.Amount - sumTracks(sizes, gap)
	if free <= 0 {
		return sizes
	}

	var flexible, auto []int
	for i, def := range defs {
		switch def.Kind {
		case TrackKindFr:
			flexible = append(flexible, i)
		case TrackKindAuto:
			auto = append(auto, i)
		}
	}
	if len(flexible) > 0 {
		expandFlexible(defs, sizes, space.Amount-gap*(len(defs)-1))
		return sizes
	}
	distribute(sizes, auto, free)
	return sizes
}

func spanTargets(defs []TrackSize, s trackSpan) []int {
	var auto, flexible, all []int
	for i := s.start; i < s.end; i++ {
		all = append(all, i)
		switch defs[i].Kind {
		case TrackKindAuto:
			auto = append(auto, i)
		case TrackKindFr:
			flexible = append(flexible, i)
		}
	}
	if len(auto) > 0 {
		return auto
	}
	if len(flexible) > 0 {
		return flexible
	}
	return all
}

// distribute adds amount to the tracks at indices as evenly as possible,
// giving the remainder to the earliest tracks.
func distribute(sizes []int, indices []int, amount int) {
	if len(indices) == 0 || amount <= 0 {
		return
	}
	share, extra := amount/len(indices), amount%len(indices)
	for k, i := range indices {
		sizes[i] += share
		if k < extra {
			sizes[i]++
		}
	}
}

// expandFlexible sizes the flexible tracks against a definite space (the
// axis size minus gaps). A track whose share would fall below its base size
// keeps its base size and drops out of the share, and the fr size is
// recomputed until it is stable.
func expandFlexible(defs []TrackSize, sizes []int, space int) {
	flexible := make([]bool, len(defs))
	for i, def := range defs {
		flexible[i] = def.IsFlexible()
	}

	var frSize float64
	for {
		leftover := space
		flexSum := 0.0
		for i, def := range defs {
			if flexible[i] {
				flexSum += def.Amount
			} else {
				leftover -= sizes[i]
			}
		}
		frSize = float64(leftover) / math.Max(1, flexSum)

		stable := true
		for i, def := range defs {
			if flexible[i] && frSize*def.Amount < float64(sizes[i]) {
				flexible[i] = false
				stable = false
			}
		}
		if stable {
			break
		}
	}

	// Round cumulatively so the shares add up to exactly the space handed out.
	acc, prev := 0.0, 0
	for i, def := range defs {
		if !flexible[i] {
			continue
		}
		acc += frSize * def.Amount
		next := int(math.Round(acc))
		sizes[i] = max(sizes[i], next-prev)
		prev = next
	}
}

func expandFlexibleIndefinite(defs []TrackSize, sizes []int) {
	frSize := 0.0
	for i, def := range defs {
		if !def.IsFlexible() {
			continue
		}
		perFr := float64(sizes[i])
		if def.Amount > 1 {
			perFr /= def.Amount
		}
		frSize = math.Max(frSize, perFr)
	}
	for i, def := range defs {
		if def.IsFlexible() {
			sizes[i] = max(sizes[i], int(math.Round(frSize*def.Amount)))
		}
	}
}

func trackOffsets(sizes []int, gap int) []int {
	offsets := make([]int, len(sizes))
	pos := 0
	for i, size := range sizes {
		offsets[i] = pos
		pos += size + gap
	}
	return offsets
}

func sumTracks(sizes []int, gap int) int {
	if len(sizes) == 0 {
		return 0
	}
	total := gap * (len(sizes) - 1)
	for _, size := range sizes {
		total += size
	}
	return total
}

// spanExtent returns the offset and size of the area covering line's tracks,
// including the gaps between them.
func spanExtent(offsets, sizes []int, line Line) (pos, size int) {
	last := line.End - 1
	pos = offsets[line.Start]
	return pos, offsets[last] + sizes[last] - pos
}

// placeInCell sizes and aligns an item inside its grid area.
func placeInCell(item gridItem, cell Rect, container Style) Rect {
	area := cell.Inset(item.style.Margin)

	justify := container.JustifyItems
	if item.style.JustifySelf != nil {
		justify = *item.style.JustifySelf
	}
	align := container.AlignItems
	if item.style.AlignSelf != nil {
		align = *item.style.AlignSelf
	}

	preferred := Size{
		Width:  item.outer.Width - item.style.Margin.Horizontal(),
		Height: item.outer.Height - item.style.Margin.Vertical(),
	}
	x, w := alignInArea(justify, item.style.Width, preferred.Width, area.X, area.Width)
	y, h := alignInArea(align, item.style.Height, preferred.Height, area.Y, area.Height)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// alignInArea sizes an item along one axis of its grid area and returns its
// start position and size. Auto items stretch when asked to; everything else
// keeps its preferred size and is aligned.
func alignInArea(align Align, value Value, preferred, start, areaSize int) (int, int) {
	size := preferred
	switch {
	case value.IsAuto() && align == AlignStretch:
		size = areaSize
	case value.Unit == UnitPercent:
		size = value.Resolve(areaSize, preferred)
	}
	size = max(0, size)
	return start + calculateAlignOffset(align, areaSize, size), size
}
