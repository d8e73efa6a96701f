package layout

// Display selects the algorithm used to lay out a node's children.
type Display uint8

const (
	DisplayFlex Display = iota // Children laid out along one axis
	DisplayGrid                // Children placed on explicit grid lines
)

// Direction is the main axis of a flex container.
type Direction uint8

const (
	Row Direction = iota
	Column
)

// Justify places leftover main-axis space around flex children.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween // no space at the edges
	JustifySpaceAround  // half a share at each edge
	JustifySpaceEvenly  // a full share at each edge
)

// Align places a flex child on the cross axis or a grid item inside its
// cell.
type Align uint8

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch // Auto sizes take the whole line or cell
)

// Style is the box model input for one node. Fields a mode does not use
// are ignored.
type Style struct {
	// Preferred and bounding sizes, margin excluded.
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	Display Display

	// Flex container
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align // Also the block-axis alignment of grid items
	Gap            int   // Cells between consecutive children

	// Flex item
	FlexGrow   float64 // Share of positive free space
	FlexShrink float64 // Share of a deficit
	AlignSelf  *Align  // Replaces the container's AlignItems when set

	// Grid container
	GridTemplateColumns []TrackSize
	GridTemplateRows    []TrackSize
	GridAutoColumns     TrackSize // Tracks past the end of the template
	GridAutoRows        TrackSize
	ColumnGap           int
	RowGap              int
	JustifyItems        Align // Inline-axis alignment of grid items

	// Grid item
	GridColumn  Line
	GridRow     Line
	JustifySelf *Align // Replaces the container's JustifyItems when set

	Padding Edges
	Margin  Edges
}

// DefaultStyle is an Auto-sized row that stretches its children and
// shrinks them evenly.
func DefaultStyle() Style {
	return Style{
		Width:        Auto(),
		Height:       Auto(),
		MinWidth:     Fixed(0),
		MinHeight:    Fixed(0),
		MaxWidth:     Auto(),
		MaxHeight:    Auto(),
		Direction:    Row,
		AlignItems:   AlignStretch,
		JustifyItems: AlignStretch,
		FlexShrink:   1.0,
	}
}
