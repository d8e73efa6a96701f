package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	grid "github.com/grindlemire/go-grid"
)

// Ranges of the numeric settings.
const (
	maxSpacing = 20
	maxPadding = 10
)

var (
	horizontalTokens = []string{"left", "center", "right"}
	verticalTokens   = []string{"top", "center", "bottom"}
)

// Settings is the demo's state. It can be loaded from a YAML file and is
// changed interactively.
type Settings struct {
	HorizontalAlignment string `yaml:"horizontal_alignment"`
	VerticalAlignment   string `yaml:"vertical_alignment"`
	ColumnSpacing       int    `yaml:"column_spacing"`
	RowSpacing          int    `yaml:"row_spacing"`
	FillWidth           bool   `yaml:"fill_width"`
	FillHeight          bool   `yaml:"fill_height"`
	Padding             int    `yaml:"padding"`
	DebugLayout         bool   `yaml:"debug_layout"`
}

// DefaultSettings returns the settings the demo starts with.
func DefaultSettings() Settings {
	return Settings{
		HorizontalAlignment: "left",
		VerticalAlignment:   "center",
		ColumnSpacing:       3,
		RowSpacing:          1,
	}
}

// LoadSettings reads settings from a YAML file. Keys missing from the file
// keep their default. An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return s, nil
}

// Validate reports every setting that is out of range or unknown.
func (s Settings) Validate() error {
	var errs []error
	if !slices.Contains(horizontalTokens, s.HorizontalAlignment) {
		errs = append(errs, fmt.Errorf("horizontal_alignment: unknown value %q", s.HorizontalAlignment))
	}
	if !slices.Contains(verticalTokens, s.VerticalAlignment) {
		errs = append(errs, fmt.Errorf("vertical_alignment: unknown value %q", s.VerticalAlignment))
	}
	for _, v := range []struct {
		key   string
		value int
		max   int
	}{
		{"column_spacing", s.ColumnSpacing, maxSpacing},
		{"row_spacing", s.RowSpacing, maxSpacing},
		{"padding", s.Padding, maxPadding},
	} {
		if v.value < 0 || v.value > v.max {
			errs = append(errs, fmt.Errorf("%s: %d is outside [0,%d]", v.key, v.value, v.max))
		}
	}
	return errors.Join(errs...)
}

// horizontal returns the grid alignment for HorizontalAlignment.
func (s Settings) horizontal() grid.Align {
	return alignment(slices.Index(horizontalTokens, s.HorizontalAlignment))
}

// vertical returns the grid alignment for VerticalAlignment.
func (s Settings) vertical() grid.Align {
	return alignment(slices.Index(verticalTokens, s.VerticalAlignment))
}

func alignment(i int) grid.Align {
	switch i {
	case 1:
		return grid.AlignCenter
	case 2:
		return grid.AlignEnd
	default:
		return grid.AlignStart
	}
}

// Rows of the settings form, top to bottom.
const (
	rowHorizontal = iota
	rowVertical
	rowRowSpacing
	rowColumnSpacing
	rowFill
	rowPadding
	rowDebug
	rowCount
)

// adjust returns s with the setting on row stepped by delta (-1 or +1).
// On the fill row, left toggles the width and right the height.
func (s Settings) adjust(row, delta int) Settings {
	switch row {
	case rowHorizontal:
		s.HorizontalAlignment = step(horizontalTokens, s.HorizontalAlignment, delta)
	case rowVertical:
		s.VerticalAlignment = step(verticalTokens, s.VerticalAlignment, delta)
	case rowRowSpacing:
		s.RowSpacing = max(0, min(maxSpacing, s.RowSpacing+delta))
	case rowColumnSpacing:
		s.ColumnSpacing = max(0, min(maxSpacing, s.ColumnSpacing+delta))
	case rowFill:
		if delta < 0 {
			s.FillWidth = !s.FillWidth
		} else {
			s.FillHeight = !s.FillHeight
		}
	case rowPadding:
		s.Padding = max(0, min(maxPadding, s.Padding+delta))
	case rowDebug:
		s.DebugLayout = !s.DebugLayout
	}
	return s
}

// step moves cyclically through tokens.
func step(tokens []string, current string, delta int) string {
	i := slices.Index(tokens, current)
	n := len(tokens)
	return tokens[((i+delta)%n+n)%n]
}
