// Package hud draws the 2D overlay: score, level, cleared layers, and the
// FPS readout. Numbers are drawn as seven-segment digits from plain line
// segments so the overlay needs no font assets.
package hud

import (
	"image/color"
)

// Surface is the screen-space drawing interface the HUD renders onto.
type Surface interface {
	FillRect(x, y, w, h float32, col color.RGBA)
	Line(x1, y1, x2, y2 float32, col color.RGBA, width float32)
}

// Segment bits, conventional seven-segment order.
const (
	segA = 1 << iota // top
	segB             // top right
	segC             // bottom right
	segD             // bottom
	segE             // bottom left
	segF             // top left
	segG             // middle
)

var digitSegments = [10]uint8{
	segA | segB | segC | segD | segE | segF,        // 0
	segB | segC,                                    // 1
	segA | segB | segG | segE | segD,               // 2
	segA | segB | segG | segC | segD,               // 3
	segF | segG | segB | segC,                      // 4
	segA | segF | segG | segC | segD,               // 5
	segA | segF | segG | segE | segC | segD,        // 6
	segA | segB | segC,                             // 7
	segA | segB | segC | segD | segE | segF | segG, // 8
	segA | segB | segC | segD | segF | segG,        // 9
}

// HUD renders the score overlay.
type HUD struct {
	digitColor color.RGBA
	dimColor   color.RGBA
	panelColor color.RGBA
}

// New creates a HUD with the default palette.
func New() *HUD {
	return &HUD{
		digitColor: color.RGBA{R: 0xE2, G: 0xE8, B: 0xF0, A: 0xFF},
		dimColor:   color.RGBA{R: 0x94, G: 0xA3, B: 0xB8, A: 0xFF},
		panelColor: color.RGBA{R: 0x0F, G: 0x17, B: 0x23, A: 0xB0},
	}
}

// drawDigit draws one seven-segment digit in a box of the given height at
// (x, y). The box is roughly half as wide as it is tall.
func (h *HUD) drawDigit(s Surface, x, y, height float32, d int, col color.RGBA) {
	if d < 0 || d > 9 {
		return
	}
	w := height * 0.55
	half := height / 2
	thick := height / 12
	if thick < 1 {
		thick = 1
	}

	mask := digitSegments[d]
	if mask&segA != 0 {
		s.Line(x, y, x+w, y, col, thick)
	}
	if mask&segB != 0 {
		s.Line(x+w, y, x+w, y+half, col, thick)
	}
	if mask&segC != 0 {
		s.Line(x+w, y+half, x+w, y+height, col, thick)
	}
	if mask&segD != 0 {
		s.Line(x, y+height, x+w, y+height, col, thick)
	}
	if mask&segE != 0 {
		s.Line(x, y+half, x, y+height, col, thick)
	}
	if mask&segF != 0 {
		s.Line(x, y, x, y+half, col, thick)
	}
	if mask&segG != 0 {
		s.Line(x, y+half, x+w, y+half, col, thick)
	}
}

// DrawNumber draws a non-negative number left-aligned at (x, y) and
// returns the width consumed.
func (h *HUD) DrawNumber(s Surface, x, y, height float32, n int, col color.RGBA) float32 {
	if n < 0 {
		n = 0
	}
	digits := []int{}
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}
	if len(digits) == 0 {
		digits = append(digits, 0)
	}

	step := height*0.55 + height*0.25
	cx := x
	for i := len(digits) - 1; i >= 0; i-- {
		h.drawDigit(s, cx, y, height, digits[i], col)
		cx += step
	}
	return cx - x
}

// NumberWidth returns the width DrawNumber would consume for n.
func (h *HUD) NumberWidth(height float32, n int) float32 {
	if n < 0 {
		n = 0
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return float32(count) * (height*0.55 + height*0.25)
}

// Render draws the score panel in the top-left corner and, when enabled,
// the FPS readout in the top-right.
func (h *HUD) Render(s Surface, screenW float32, score, level, layers int, fps int, showFPS bool) {
	const pad = 16

	// Score, then level and cleared-layer counts in smaller digits.
	s.FillRect(pad/2, pad/2, 190, 104, h.panelColor)
	h.DrawNumber(s, pad, pad, 32, score, h.digitColor)
	h.DrawNumber(s, pad, pad+44, 18, level, h.dimColor)
	h.DrawNumber(s, pad+70, pad+44, 18, layers, h.dimColor)

	if showFPS {
		w := h.NumberWidth(16, fps)
		h.DrawNumber(s, screenW-pad-w, pad, 16, fps, h.dimColor)
	}
}

// RenderGameOver dims the whole screen and shows the final score centered.
func (h *HUD) RenderGameOver(s Surface, screenW, screenH float32, score int) {
	s.FillRect(0, 0, screenW, screenH, color.RGBA{A: 0xA0})

	const height = 48
	w := h.NumberWidth(height, score)
	h.DrawNumber(s, (screenW-w)/2, (screenH-height)/2, height, score, h.digitColor)
}
