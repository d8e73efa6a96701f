// Package grid provides a grid-layout container for terminal UI widgets.
//
// A [Grid] arranges child widgets into rows and columns. Children are placed
// either implicitly, with [Grid.Push] and [Grid.EndRow] moving a cursor
// through the cells, or explicitly with [Grid.PushAt]. Each track is sized by
// a [Length] policy: shrink to its content, a fixed number of cells, or a
// weighted share of the space left over.
//
// Layout runs in one synchronous pass per call to [Grid.Layout] or
// [Resolve]: every child is measured, a style tree mirroring the grid is
// solved, children that fill their cells are measured again at the solved
// cell size, and the resulting [Node] tree is returned in insertion order.
//
// A Grid is itself a [Widget], so grids nest.
package grid
