package layout

import (
	"errors"
	"testing"
)

func newGridNode(columns, rows []TrackSize) *Node {
	s := DefaultStyle()
	s.Display = DisplayGrid
	s.GridTemplateColumns = columns
	s.GridTemplateRows = rows
	return NewNode(s)
}

func newGridItem(w, h int, column, row Line) *Node {
	n := NewNode(DefaultStyle())
	n.Content = Size{Width: w, Height: h}
	n.Style.GridColumn = column
	n.Style.GridRow = row
	return n
}

func TestSizeTracks(t *testing.T) {
	type tc struct {
		defs     []TrackSize
		spans    []trackSpan
		gap      int
		space    Space
		expected []int
	}

	tests := map[string]tc{
		"no tracks": {
			space:    Definite(10),
			expected: []int{},
		},
		"auto tracks fit single-span content": {
			defs:     []TrackSize{TrackAuto(), TrackAuto()},
			spans:    []trackSpan{{0, 1, 4}, {1, 2, 7}, {0, 1, 2}},
			space:    Indefinite(),
			expected: []int{4, 7},
		},
		"fixed track grows to content": {
			defs:     []TrackSize{TrackFixed(3), TrackFixed(3)},
			spans:    []trackSpan{{0, 1, 5}},
			space:    Indefinite(),
			expected: []int{5, 3},
		},
		"spanning item spreads over auto tracks": {
			defs:     []TrackSize{TrackAuto(), TrackAuto()},
			spans:    []trackSpan{{0, 2, 11}},
			gap:      1,
			space:    Indefinite(),
			expected: []int{5, 5},
		},
		"spanning item prefers auto over fixed": {
			defs:     []TrackSize{TrackFixed(2), TrackAuto()},
			spans:    []trackSpan{{0, 2, 10}},
			space:    Indefinite(),
			expected: []int{2, 8},
		},
		"spanning remainder goes to earliest tracks": {
			defs:     []TrackSize{TrackAuto(), TrackAuto(), TrackAuto()},
			spans:    []trackSpan{{0, 3, 10}},
			space:    Indefinite(),
			expected: []int{4, 3, 3},
		},
		"spanning item already satisfied": {
			defs:     []TrackSize{TrackAuto(), TrackAuto()},
			spans:    []trackSpan{{0, 1, 6}, {0, 2, 4}},
			space:    Indefinite(),
			expected: []int{6, 0},
		},
		"equal fr tracks share definite space": {
			defs:     []TrackSize{TrackFr(1), TrackFr(1)},
			gap:      1,
			space:    Definite(21),
			expected: []int{10, 10},
		},
		"fr shares round cumulatively": {
			defs:     []TrackSize{TrackFr(1), TrackFr(1), TrackFr(1)},
			space:    Definite(10),
			expected: []int{3, 4, 3},
		},
		"weighted fr tracks": {
			defs:     []TrackSize{TrackFr(1), TrackFr(3)},
			space:    Definite(20),
			expected: []int{5, 15},
		},
		"fr track larger than its share keeps content size": {
			defs:     []TrackSize{TrackFr(1), TrackFr(1)},
			spans:    []trackSpan{{0, 1, 15}},
			space:    Definite(20),
			expected: []int{15, 5},
		},
		"fr tracks after fixed": {
			defs:     []TrackSize{TrackFixed(4), TrackFr(1)},
			gap:      2,
			space:    Definite(20),
			expected: []int{4, 14},
		},
		"indefinite fr uses largest share": {
			defs:     []TrackSize{TrackFr(1), TrackFr(2)},
			spans:    []trackSpan{{0, 1, 4}, {1, 2, 10}},
			space:    Indefinite(),
			expected: []int{5, 10},
		},
		"auto tracks stretch into leftover space": {
			defs:     []TrackSize{TrackAuto(), TrackFixed(3)},
			spans:    []trackSpan{{0, 1, 2}},
			space:    Definite(10),
			expected: []int{7, 3},
		},
		"overflowing content is kept": {
			defs:     []TrackSize{TrackAuto(), TrackFr(1)},
			spans:    []trackSpan{{0, 1, 30}},
			space:    Definite(10),
			expected: []int{30, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := sizeTracks(tt.defs, tt.spans, tt.gap, tt.space)
			if len(got) != len(tt.expected) {
				t.Fatalf("sizeTracks() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("sizeTracks() = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestCalculate_Grid_DefiniteFrColumns(t *testing.T) {
	root := newGridNode([]TrackSize{TrackFr(1), TrackFr(1)}, nil)
	root.Style.Width = Fixed(21)
	root.Style.Height = Fixed(1)
	root.Style.ColumnGap = 1

	a := newGridItem(5, 1, Span(0, 1), Span(0, 1))
	b := newGridItem(5, 1, Span(1, 1), Span(0, 1))
	root.AddChild(a, b)

	if err := Calculate(root, Definite(80), Definite(24)); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if got, want := a.Layout.Rect, NewRect(0, 0, 10, 1); got != want {
		t.Errorf("a Rect = %v, want %v", got, want)
	}
	if got, want := b.Layout.Rect, NewRect(11, 0, 10, 1); got != want {
		t.Errorf("b Rect = %v, want %v", got, want)
	}
}

func TestCalculate_Grid_AutoRootIsContentSized(t *testing.T) {
	root := newGridNode([]TrackSize{TrackAuto(), TrackFr(1)}, nil)
	root.Style.ColumnGap = 2

	a := newGridItem(5, 1, Span(0, 1), Span(0, 1))
	b := newGridItem(3, 2, Span(1, 1), Span(0, 1))
	root.AddChild(a, b)

	if err := Calculate(root, Definite(80), Definite(24)); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if got, want := root.Layout.Rect, NewRect(0, 0, 10, 2); got != want {
		t.Errorf("root Rect = %v, want %v", got, want)
	}
	if got, want := a.Layout.Rect, NewRect(0, 0, 5, 2); got != want {
		t.Errorf("a Rect = %v, want %v", got, want)
	}
	if got, want := b.Layout.Rect, NewRect(7, 0, 3, 2); got != want {
		t.Errorf("b Rect = %v, want %v", got, want)
	}
}

func TestCalculate_Grid_ItemAlignment(t *testing.T) {
	type tc struct {
		justifyItems Align
		alignItems   Align
		justifySelf  *Align
		expected     Rect
	}

	end := AlignEnd

	tests := map[string]tc{
		"stretch fills the cell": {
			justifyItems: AlignStretch,
			alignItems:   AlignStretch,
			expected:     NewRect(0, 0, 10, 3),
		},
		"start keeps content size": {
			justifyItems: AlignStart,
			alignItems:   AlignStart,
			expected:     NewRect(0, 0, 4, 1),
		},
		"center horizontally, end vertically": {
			justifyItems: AlignCenter,
			alignItems:   AlignEnd,
			expected:     NewRect(3, 2, 4, 1),
		},
		"justify self overrides container": {
			justifyItems: AlignCenter,
			alignItems:   AlignStart,
			justifySelf:  &end,
			expected:     NewRect(6, 0, 4, 1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := newGridNode([]TrackSize{TrackFr(1)}, []TrackSize{TrackFr(1)})
			root.Style.Width = Fixed(10)
			root.Style.Height = Fixed(3)
			root.Style.JustifyItems = tt.justifyItems
			root.Style.AlignItems = tt.alignItems

			item := newGridItem(4, 1, Span(0, 1), Span(0, 1))
			item.Style.JustifySelf = tt.justifySelf
			root.AddChild(item)

			if err := Calculate(root, Definite(10), Definite(3)); err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if got := item.Layout.Rect; got != tt.expected {
				t.Errorf("item Rect = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCalculate_Grid_SpanningItemCoversGap(t *testing.T) {
	root := newGridNode(nil, nil)
	root.Style.ColumnGap = 3
	root.Style.JustifyItems = AlignStart

	a := newGridItem(4, 1, Span(0, 1), Span(0, 1))
	b := newGridItem(4, 1, Span(1, 1), Span(0, 1))
	wide := newGridItem(2, 1, Span(0, 2), Span(1, 1))
	wide.Style.JustifySelf = func() *Align { s := AlignStretch; return &s }()
	root.AddChild(a, b, wide)

	if err := Calculate(root, Indefinite(), Indefinite()); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if got, want := wide.Layout.Rect, NewRect(0, 1, 11, 1); got != want {
		t.Errorf("spanning item Rect = %v, want %v", got, want)
	}
	if got, want := root.Layout.Rect.Size(), (Size{Width: 11, Height: 2}); got != want {
		t.Errorf("root size = %+v, want %+v", got, want)
	}
}

func TestCalculate_Grid_OverlappingItems(t *testing.T) {
	root := newGridNode(nil, nil)
	a := newGridItem(2, 1, Span(0, 1), Span(0, 1))
	b := newGridItem(6, 1, Span(0, 1), Span(0, 1))
	root.AddChild(a, b)

	if err := Calculate(root, Indefinite(), Indefinite()); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if a.Layout.Rect != b.Layout.Rect {
		t.Errorf("overlapping items differ: %v vs %v", a.Layout.Rect, b.Layout.Rect)
	}
	if got := a.Layout.Rect.Width; got != 6 {
		t.Errorf("shared column width = %d, want 6", got)
	}
}

func TestCalculate_Grid_Padding(t *testing.T) {
	root := newGridNode(nil, nil)
	root.Style.Padding = EdgeTRBL(1, 2, 3, 4)
	item := newGridItem(3, 2, Span(0, 1), Span(0, 1))
	root.AddChild(item)

	w, h := root.IntrinsicSize()
	if w != 9 || h != 6 {
		t.Errorf("IntrinsicSize() = %dx%d, want 9x6", w, h)
	}

	if err := Calculate(root, Definite(50), Definite(50)); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if got, want := item.Layout.Rect, NewRect(4, 1, 3, 2); got != want {
		t.Errorf("item Rect = %v, want %v", got, want)
	}
}

func TestCalculate_Grid_Errors(t *testing.T) {
	type tc struct {
		build    func() *Node
		expected error
	}

	tests := map[string]tc{
		"empty span": {
			build: func() *Node {
				root := newGridNode(nil, nil)
				root.AddChild(newGridItem(1, 1, Line{Start: 2, End: 2}, Span(0, 1)))
				return root
			},
			expected: ErrInvalidPlacement,
		},
		"negative start": {
			build: func() *Node {
				root := newGridNode(nil, nil)
				root.AddChild(newGridItem(1, 1, Span(0, 1), Span(-1, 2)))
				return root
			},
			expected: ErrInvalidPlacement,
		},
		"negative fr": {
			build: func() *Node {
				root := newGridNode([]TrackSize{TrackFr(-1)}, nil)
				root.AddChild(newGridItem(1, 1, Span(0, 1), Span(0, 1)))
				return root
			},
			expected: ErrInvalidTrack,
		},
		"nested grid item": {
			build: func() *Node {
				root := newGridNode(nil, nil)
				inner := newGridNode(nil, nil)
				inner.Style.GridColumn = Span(0, 1)
				inner.Style.GridRow = Span(0, 1)
				inner.AddChild(newGridItem(1, 1, Line{Start: 1, End: 0}, Span(0, 1)))
				root.AddChild(inner)
				return root
			},
			expected: ErrInvalidPlacement,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := tt.build()
			err := Calculate(root, Definite(10), Definite(10))
			if !errors.Is(err, tt.expected) {
				t.Fatalf("Calculate() error = %v, want %v", err, tt.expected)
			}
			if root.Layout != (Layout{}) {
				t.Errorf("failed Calculate stored a layout: %v", root.Layout.Rect)
			}
		})
	}
}
