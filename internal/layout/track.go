package layout

import (
	"fmt"
	"math"
)

// TrackKind specifies how a grid track is sized.
type TrackKind uint8

const (
	TrackKindAuto  TrackKind = iota // Sized to the items it holds
	TrackKindFixed                  // At least Amount cells, more if content needs it
	TrackKindFr                     // Share of the free space, weighted by Amount
)

// TrackSize is the sizing function of one grid row or column.
type TrackSize struct {
	Kind   TrackKind
	Amount float64
}

// TrackAuto returns a content-sized track.
func TrackAuto() TrackSize {
	return TrackSize{Kind: TrackKindAuto}
}

// TrackFixed returns a track of n cells. The track still grows to fit
// content wider than n.
func TrackFixed(n int) TrackSize {
	return TrackSize{Kind: TrackKindFixed, Amount: float64(n)}
}

// TrackFr returns a flexible track taking f shares of the free space.
func TrackFr(f float64) TrackSize {
	return TrackSize{Kind: TrackKindFr, Amount: f}
}

// IsFlexible reports whether the track takes a share of free space.
func (t TrackSize) IsFlexible() bool {
	return t.Kind == TrackKindFr
}

func (t TrackSize) validate() error {
	if t.Amount < 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTrack, t)
	}
	return nil
}

// String implements fmt.Stringer using CSS-like notation.
func (t TrackSize) String() string {
	switch t.Kind {
	case TrackKindFixed:
		return fmt.Sprintf("%gc", t.Amount)
	case TrackKindFr:
		return fmt.Sprintf("%gfr", t.Amount)
	default:
		return "auto"
	}
}

// Line places a grid item between two zero-based grid lines.
// The item occupies tracks [Start, End).
type Line struct {
	Start, End int
}

// Span returns the Line covering n tracks starting at start.
func Span(start, n int) Line {
	return Line{Start: start, End: start + n}
}

// Len returns the number of tracks covered.
func (l Line) Len() int {
	return l.End - l.Start
}

// Valid reports whether the line covers at least one track.
func (l Line) Valid() bool {
	return l.Start >= 0 && l.End > l.Start
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return fmt.Sprintf("[%d,%d)", l.Start, l.End)
}
