package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HintColor is the distinct gold used for suggested placements.
var HintColor = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}

// FaceColors holds one color per cube face, indexed by Face.
type FaceColors [6]color.RGBA

// Face indexes into FaceColors.
type Face int

const (
	FaceTop Face = iota
	FaceBottom
	FaceFront
	FaceBack
	FaceLeft
	FaceRight
)

// faceShade is the per-face luminance multiplier. The top face catches the
// most light, the bottom the least, so flat-filled quads still read as a
// solid cube.
var faceShade = [6]float64{
	FaceTop:    1.25,
	FaceBottom: 0.55,
	FaceFront:  1.0,
	FaceBack:   0.7,
	FaceLeft:   0.8,
	FaceRight:  0.9,
}

// ShadeFaces derives the six face colors of a cube from its base color.
func ShadeFaces(base color.RGBA) FaceColors {
	var faces FaceColors
	c, _ := colorful.MakeColor(color.RGBA{R: base.R, G: base.G, B: base.B, A: 0xFF})
	h, s, l := c.Hsl()

	for f := range faces {
		shaded := colorful.Hsl(h, s, clamp01(l*faceShade[f]))
		r, g, b := shaded.Clamped().RGB255()
		faces[f] = color.RGBA{R: r, G: g, B: b, A: base.A}
	}
	return faces
}

// UniformFaces returns the same color on all six faces.
func UniformFaces(c color.RGBA) FaceColors {
	var faces FaceColors
	for f := range faces {
		faces[f] = c
	}
	return faces
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// withAlpha scales a color's alpha by opacity for a single draw call.
func withAlpha(c color.RGBA, opacity float32) color.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	c.A = uint8(float32(c.A) * opacity)
	return c
}
