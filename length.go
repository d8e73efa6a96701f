package grid

import "fmt"

// LengthKind is the sizing policy carried by a Length.
type LengthKind uint8

const (
	LengthShrink      LengthKind = iota // As small as the content allows
	LengthFixed                         // An exact number of cells
	LengthFill                          // All the space available
	LengthFillPortion                   // A weighted share of the space available
)

// Length is the sizing policy of a widget axis or a grid track.
type Length struct {
	Kind   LengthKind
	Amount int // Cells for LengthFixed, weight for LengthFillPortion
}

// Shrink returns a Length that sizes to content.
func Shrink() Length {
	return Length{Kind: LengthShrink}
}

// Fixed returns a Length of n cells. Negative values become 0.
func Fixed(n int) Length {
	return Length{Kind: LengthFixed, Amount: max(0, n)}
}

// Fill returns a Length that takes all the space available.
func Fill() Length {
	return Length{Kind: LengthFill}
}

// FillPortion returns a Length that takes w shares of the space available.
func FillPortion(w uint16) Length {
	return Length{Kind: LengthFillPortion, Amount: int(w)}
}

// IsFill reports whether the policy expands into available space.
func (l Length) IsFill() bool {
	return l.Kind == LengthFill || l.Kind == LengthFillPortion
}

// Portion returns the fill weight: 1 for Fill, w for FillPortion(w), and 0
// for everything else.
func (l Length) Portion() uint16 {
	switch l.Kind {
	case LengthFill:
		return 1
	case LengthFillPortion:
		return uint16(l.Amount)
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (l Length) String() string {
	switch l.Kind {
	case LengthFixed:
		return fmt.Sprintf("fixed(%d)", l.Amount)
	case LengthFill:
		return "fill"
	case LengthFillPortion:
		return fmt.Sprintf("fill(%d)", l.Amount)
	default:
		return "shrink"
	}
}
