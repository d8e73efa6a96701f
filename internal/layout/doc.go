// Package layout implements a pure-Go layout engine for terminal UIs.
//
// Containers lay out their children either as a flexbox (row/column
// directions, justify and align modes, gap, grow and shrink) or as a grid
// (explicit line placement, auto/fixed/fr tracks, row and column gaps, and
// per-item alignment inside the cell). Both modes support padding, margin,
// min/max constraints, and percentage and fixed dimensions.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// the [Space] available on each axis and computes absolute [Rect] positions
// for each node. Types are re-exported through the root grid package for
// public consumption.
package layout
