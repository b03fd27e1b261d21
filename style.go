package metplot

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Style controls how prepared input records are rendered. Zero-value fields
// in a TOML override file keep their defaults.
type Style struct {
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Margin     int      `toml:"margin"`
	Background string   `toml:"background"`
	Palette    []string `toml:"palette"` // hex color stops, low to high
	MinValue   *float64 `toml:"min_value"`
	MaxValue   *float64 `toml:"max_value"`
	ArrowColor string   `toml:"arrow_color"`
	ArrowScale float64  `toml:"arrow_scale"` // pixels per unit of speed
	LineWidth  float64  `toml:"line_width"`
}

// DefaultStyle returns a fresh default style on every call.
func DefaultStyle() *Style {
	return &Style{
		Width:      800,
		Height:     600,
		Margin:     20,
		Background: "#ffffff",
		Palette:    []string{"#2c7bb6", "#abd9e9", "#ffffbf", "#fdae61", "#d7191c"},
		ArrowColor: "#1a1a2e",
		ArrowScale: 1.5,
		LineWidth:  1.0,
	}
}

// LoadStyle reads a TOML style file over the defaults.
func LoadStyle(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style %s: %w", path, err)
	}
	st := DefaultStyle()
	if err := toml.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("parsing style %s: %w", path, err)
	}
	return st, nil
}
