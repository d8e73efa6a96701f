package layout

import "errors"

var (
	// ErrNilRoot is returned when Calculate is given no tree.
	ErrNilRoot = errors.New("layout: nil root")

	// ErrInvalidPlacement is returned when a grid item's lines do not
	// describe at least one track.
	ErrInvalidPlacement = errors.New("layout: invalid grid placement")

	// ErrInvalidTrack is returned for a negative or NaN track size.
	ErrInvalidTrack = errors.New("layout: invalid track size")
)
