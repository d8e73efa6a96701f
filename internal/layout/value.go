package layout

// Unit tags a Value.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitFixed
	UnitPercent // 0-100 of the containing space
)

// Value is one length in a Style.
type Value struct {
	Amount float64
	Unit   Unit
}

func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed is n cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent is p percent of the containing space, so Percent(50) is half.
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve converts v to cells against available. Auto yields fallback.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// ResolveSpace is like Resolve, but a percentage of indefinite space has
// nothing to refer to and falls back the same way Auto does.
func (v Value) ResolveSpace(available Space, fallback int) int {
	if v.Unit == UnitPercent && !available.Definite {
		return fallback
	}
	return v.Resolve(available.Amount, fallback)
}

func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
