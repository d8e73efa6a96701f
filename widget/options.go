package widget

import grid "github.com/grindlemire/go-grid"

// sizing holds the policies every widget in this package carries.
type sizing struct {
	width, height grid.Length
}

// Width returns the horizontal sizing policy.
func (s *sizing) Width() grid.Length {
	return s.width
}

// Height returns the vertical sizing policy.
func (s *sizing) Height() grid.Length {
	return s.height
}

// Option configures a widget's sizing.
type Option func(*sizing)

// WithWidth sets the horizontal sizing policy.
func WithWidth(l grid.Length) Option {
	return func(s *sizing) {
		s.width = l
	}
}

// WithHeight sets the vertical sizing policy.
func WithHeight(l grid.Length) Option {
	return func(s *sizing) {
		s.height = l
	}
}

func newSizing(opts []Option) sizing {
	s := sizing{width: grid.Shrink(), height: grid.Shrink()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
