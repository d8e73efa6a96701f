// Package widget provides small widgets for building grids: text labels,
// empty or patterned space, and horizontal rows.
package widget
