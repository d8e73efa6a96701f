package layout

var _ Layoutable = (*Node)(nil)

// Node is a general-purpose element in the layout tree. Callers that do not
// keep their own tree build one of these per pass, run [Calculate], and read
// back Layout.
type Node struct {
	Style    Style
	Children []*Node

	// Content is the natural size of a leaf's content, excluding padding.
	// Containers derive their intrinsic size from their children instead.
	Content Size

	// Layout is written by Calculate.
	Layout Layout

	dirty  bool
	parent *Node
}

// NewNode returns an unsolved node.
func NewNode(style Style) *Node {
	return &Node{Style: style, dirty: true}
}

// AddChild appends children in placement order.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// RemoveChild detaches child and reports whether it was present. The
// remaining siblings keep their order.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

func (n *Node) SetStyle(style Style) {
	n.Style = style
	n.MarkDirty()
}

// MarkDirty flags n and every clean ancestor for the next Calculate.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

func (n *Node) LayoutStyle() Style {
	return n.Style
}

func (n *Node) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.Children))
	for i, child := range n.Children {
		result[i] = child
	}
	return result
}

func (n *Node) SetLayout(l Layout) {
	n.Layout = l
}

func (n *Node) GetLayout() Layout {
	return n.Layout
}

func (n *Node) IsDirty() bool {
	return n.dirty
}

// SetDirty touches only n; use MarkDirty to reach ancestors.
func (n *Node) SetDirty(dirty bool) {
	n.dirty = dirty
}

// IntrinsicSize is the padded size n wants with no outside pressure. A leaf
// reports Content. A grid reports its content-sized tracks, and a flex box
// sums its children along the main axis.
func (n *Node) IntrinsicSize() (width, height int) {
	if len(n.Children) == 0 {
		size := n.Content.Pad(n.Style.Padding)
		return size.Width, size.Height
	}
	if n.Style.Display == DisplayGrid {
		size := gridContentSize(n)
		return size.Width, size.Height
	}
	size := flexContentSize(n)
	return size.Width, size.Height
}
