package config

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a #RRGGBB string to an opaque RGBA, falling back to
// the given default when the string does not parse.
func ParseColor(hex string, fallback color.RGBA) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// LineRGBA returns the well wireframe color.
func (w WellConfig) LineRGBA() color.RGBA {
	return ParseColor(w.LineColor, color.RGBA{R: 0x4A, G: 0x55, B: 0x68, A: 0xFF})
}

// StrokeRGBA returns the cube edge stroke color.
func (w WellConfig) StrokeRGBA() color.RGBA {
	return ParseColor(w.StrokeColor, color.RGBA{R: 0x1A, G: 0x20, B: 0x2C, A: 0xFF})
}
