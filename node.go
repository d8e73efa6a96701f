package grid

// Node is a widget's resolved box: its size, its position relative to the
// parent node, and the boxes of its children.
type Node struct {
	bounds   Rect
	children []*Node
}

// NewNode returns a childless node of the given size at the origin.
func NewNode(size Size) *Node {
	return &Node{bounds: Rect{Width: size.Width, Height: size.Height}}
}

// NewNodeWithChildren returns a node of the given size owning children.
func NewNodeWithChildren(size Size, children []*Node) *Node {
	n := NewNode(size)
	n.children = children
	return n
}

// MoveTo sets the node's position relative to its parent and returns it.
func (n *Node) MoveTo(p Point) *Node {
	n.bounds.X, n.bounds.Y = p.X, p.Y
	return n
}

// Bounds returns the node's rectangle relative to its parent.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// Size returns the node's size.
func (n *Node) Size() Size {
	return n.bounds.Size()
}

// Position returns the node's top-left corner relative to its parent.
func (n *Node) Position() Point {
	return n.bounds.Position()
}

// Children returns the node's children in the order they were given.
func (n *Node) Children() []*Node {
	return n.children
}
