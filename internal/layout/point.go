package layout

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In reports whether p falls inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}
