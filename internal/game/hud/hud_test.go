package hud

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSurface struct {
	lines int
	rects int
}

func (r *recordingSurface) FillRect(x, y, w, h float32, col color.RGBA) {
	r.rects++
}

func (r *recordingSurface) Line(x1, y1, x2, y2 float32, col color.RGBA, width float32) {
	r.lines++
}

func TestDrawDigitSegmentCounts(t *testing.T) {
	tests := []struct {
		digit int
		lines int
	}{
		{0, 6},
		{1, 2},
		{4, 4},
		{7, 3},
		{8, 7},
	}

	h := New()
	for _, tt := range tests {
		s := &recordingSurface{}
		h.drawDigit(s, 0, 0, 32, tt.digit, color.RGBA{A: 0xFF})
		assert.Equalf(t, tt.lines, s.lines, "digit %d", tt.digit)
	}
}

func TestDrawNumberMultipleDigits(t *testing.T) {
	h := New()
	s := &recordingSurface{}

	// "18" is 2 + 7 segments.
	h.DrawNumber(s, 0, 0, 32, 18, color.RGBA{A: 0xFF})
	assert.Equal(t, 9, s.lines)
}

func TestDrawNumberZero(t *testing.T) {
	h := New()
	s := &recordingSurface{}

	h.DrawNumber(s, 0, 0, 32, 0, color.RGBA{A: 0xFF})
	assert.Equal(t, 6, s.lines, "zero should still draw one digit")
}

func TestNumberWidthMatchesDrawn(t *testing.T) {
	h := New()
	s := &recordingSurface{}

	drawn := h.DrawNumber(s, 0, 0, 32, 1234, h.digitColor)
	assert.InDelta(t, float64(h.NumberWidth(32, 1234)), float64(drawn), 0.001)
}

func TestRenderFPSToggle(t *testing.T) {
	h := New()

	without := &recordingSurface{}
	h.Render(without, 1280, 500, 2, 7, 60, false)

	with := &recordingSurface{}
	h.Render(with, 1280, 500, 2, 7, 60, true)

	assert.Greater(t, with.lines, without.lines, "FPS readout should add digits")
	assert.Equal(t, 1, without.rects)
}

func TestRenderGameOverDimsScreen(t *testing.T) {
	h := New()
	s := &recordingSurface{}

	h.RenderGameOver(s, 1280, 720, 42)
	assert.Equal(t, 1, s.rects)
	assert.Greater(t, s.lines, 0)
}
