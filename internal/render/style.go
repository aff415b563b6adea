// Package render draws choropleth figures over census tract and county
// geometries and writes them as PNG files. Figures share a common style
// (colors, canvas size, color bar height) that can be overridden from a
// YAML file.
package render

import (
	"encoding/hex"
	"image/color"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Style holds the shared drawing parameters for every figure.
type Style struct {
	// Background fills tracts that only provide geographic context.
	Background color.NRGBA
	// Known fills tracts that carry joined data without being emphasized.
	Known color.NRGBA
	// Highlight fills emphasized tracts and the plain state outline.
	Highlight color.NRGBA

	// Width is the canvas width of a single-map figure. Grid figures are
	// twice as wide.
	Width vg.Length
	// ColorBar is the height of the value legend strip under a shaded map.
	ColorBar vg.Length
	// TitleSize is the figure title font size.
	TitleSize vg.Length
	// DPI converts canvas lengths to pixels when encoding PNGs.
	DPI int
}

// DefaultStyle returns the standard figure style.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF},
		Known:      color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
		Highlight:  color.NRGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF},
		Width:      8 * vg.Inch,
		ColorBar:   0.9 * vg.Inch,
		TitleSize:  vg.Points(16),
		DPI:        96,
	}
}

// styleFile is the YAML shape of a style override file. Empty fields keep
// their defaults.
type styleFile struct {
	Background string  `yaml:"background"`
	Known      string  `yaml:"known"`
	Highlight  string  `yaml:"highlight"`
	WidthIn    float64 `yaml:"width_in"`
	ColorBarIn float64 `yaml:"colorbar_in"`
	TitleSize  float64 `yaml:"title_size"`
	DPI        int     `yaml:"dpi"`
}

// LoadStyle returns the default style overlaid with the YAML file at path.
// An empty path returns the defaults unchanged.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, eris.Wrapf(err, "render: read style %s", path)
	}

	var f styleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return s, eris.Wrapf(err, "render: parse style %s", path)
	}

	if f.Background != "" {
		if s.Background, err = parseHexColor(f.Background); err != nil {
			return s, err
		}
	}
	if f.Known != "" {
		if s.Known, err = parseHexColor(f.Known); err != nil {
			return s, err
		}
	}
	if f.Highlight != "" {
		if s.Highlight, err = parseHexColor(f.Highlight); err != nil {
			return s, err
		}
	}
	if f.WidthIn > 0 {
		s.Width = vg.Length(f.WidthIn) * vg.Inch
	}
	if f.ColorBarIn > 0 {
		s.ColorBar = vg.Length(f.ColorBarIn) * vg.Inch
	}
	if f.TitleSize > 0 {
		s.TitleSize = vg.Points(f.TitleSize)
	}
	if f.DPI > 0 {
		s.DPI = f.DPI
	}

	zap.L().Debug("loaded style overrides", zap.String("path", path))
	return s, nil
}

// parseHexColor parses an opaque RRGGBB color, with or without a leading #.
func parseHexColor(v string) (color.NRGBA, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(trimmed) != 6 {
		return color.NRGBA{}, eris.Errorf("render: color %q is not RRGGBB", v)
	}

	b, err := hex.DecodeString(trimmed)
	if err != nil {
		return color.NRGBA{}, eris.Errorf("render: color %q is not RRGGBB", v)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
}
