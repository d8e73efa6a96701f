package grid

import "errors"

var (
	// ErrLayoutFailed is returned by every failed layout pass. The error also
	// wraps the cause, so errors.Is works against the cause as well.
	ErrLayoutFailed = errors.New("grid: layout failed")

	// ErrInvalidSpan is returned for a Position spanning zero columns or rows.
	ErrInvalidSpan = errors.New("grid: span must cover at least one column and one row")

	// ErrCursorOverflow is returned when Push is called with the builder
	// cursor past the last addressable column or row.
	ErrCursorOverflow = errors.New("grid: cursor past the last addressable cell")

	// ErrMismatchedChildren is returned when the children and positions given
	// to Resolve differ in length.
	ErrMismatchedChildren = errors.New("grid: children and positions differ in length")
)
