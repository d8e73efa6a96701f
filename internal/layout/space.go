package layout

import "fmt"

// Space is the room offered to a node along one axis.
// Indefinite space means the node sizes itself from its content.
type Space struct {
	Amount   int
	Definite bool
}

// Definite returns a Space of exactly n cells. Negative values become 0.
func Definite(n int) Space {
	return Space{Amount: max(0, n), Definite: true}
}

// Indefinite returns a Space with no upper bound.
func Indefinite() Space {
	return Space{}
}

// String implements fmt.Stringer.
func (s Space) String() string {
	if !s.Definite {
		return "indefinite"
	}
	return fmt.Sprintf("%d", s.Amount)
}
