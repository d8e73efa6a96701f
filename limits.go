package grid

import (
	"fmt"
	"math"
)

// Unbounded marks a Limits axis with no maximum.
const Unbounded = math.MaxInt

// Limits is the range of sizes a widget may take during measurement.
type Limits struct {
	Min, Max Size
}

// NewLimits returns limits between min and max.
func NewLimits(min, max Size) Limits {
	return Limits{Min: min, Max: max}
}

// Loose returns limits from zero up to max.
func Loose(max Size) Limits {
	return Limits{Max: max}
}

// UnboundedLimits returns limits with no maximum on either axis.
func UnboundedLimits() Limits {
	return Limits{Max: Size{Width: Unbounded, Height: Unbounded}}
}

// WidthBounded reports whether the width has a maximum.
func (l Limits) WidthBounded() bool {
	return l.Max.Width != Unbounded
}

// HeightBounded reports whether the height has a maximum.
func (l Limits) HeightBounded() bool {
	return l.Max.Height != Unbounded
}

// Loosen returns limits with the same maximum and no minimum.
func (l Limits) Loosen() Limits {
	l.Min = Size{}
	return l
}

// WithWidth returns limits whose width is exactly w, clamped into the
// current width range. The height range is unchanged.
func (l Limits) WithWidth(w int) Limits {
	w = min(max(w, l.Min.Width), l.Max.Width)
	l.Min.Width, l.Max.Width = w, w
	return l
}

// WithHeight returns limits whose height is exactly h, clamped into the
// current height range. The width range is unchanged.
func (l Limits) WithHeight(h int) Limits {
	h = min(max(h, l.Min.Height), l.Max.Height)
	l.Min.Height, l.Max.Height = h, h
	return l
}

// Resolve applies the standard sizing rule to a widget with the given
// policies and intrinsic size: Shrink takes the intrinsic size, Fixed takes
// its cells, and fill-like policies take the maximum. A fill-like policy on
// an unbounded axis falls back to the intrinsic size. The result is clamped
// into the limits.
func (l Limits) Resolve(width, height Length, intrinsic Size) Size {
	return Size{
		Width:  resolveAxis(width, intrinsic.Width, l.Min.Width, l.Max.Width),
		Height: resolveAxis(height, intrinsic.Height, l.Min.Height, l.Max.Height),
	}
}

func resolveAxis(length Length, intrinsic, lo, hi int) int {
	v := intrinsic
	switch {
	case length.Kind == LengthFixed:
		v = length.Amount
	case length.IsFill() && hi != Unbounded:
		v = hi
	}
	return max(min(v, hi), lo)
}

// String implements fmt.Stringer.
func (l Limits) String() string {
	return fmt.Sprintf("%s..%s", axisRange(l.Min.Width, l.Max.Width), axisRange(l.Min.Height, l.Max.Height))
}

func axisRange(lo, hi int) string {
	if hi == Unbounded {
		return fmt.Sprintf("[%d,inf)", lo)
	}
	return fmt.Sprintf("[%d,%d]", lo, hi)
}
