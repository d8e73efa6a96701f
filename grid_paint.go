package grid

var _ Painter = (*Grid)(nil)

// Paint draws every child that implements Painter, in insertion order, so a
// later child covers an earlier one where they overlap. n must be the node
// returned for this grid by the last layout pass.
func (g *Grid) Paint(s Surface, n *Node, origin Point) {
	nodes := n.Children()
	for i, child := range g.children {
		if i >= len(nodes) {
			return
		}
		if p, ok := child.(Painter); ok {
			p.Paint(s, nodes[i], origin.Add(nodes[i].Position()))
		}
	}
}
