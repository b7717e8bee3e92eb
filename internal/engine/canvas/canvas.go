// Package canvas provides the immediate-mode 2D drawing surface the game
// renders onto. It wraps the SDL 2D renderer plus SDL_gfx polygon helpers;
// nothing here knows about the 3D projection.
package canvas

import (
	"image/color"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// Canvas draws screen-space primitives on an SDL 2D renderer.
type Canvas struct {
	renderer *sdl.Renderer
}

// New creates a canvas over the given SDL renderer.
func New(renderer *sdl.Renderer) *Canvas {
	return &Canvas{renderer: renderer}
}

// Clear fills the whole surface with the given color.
func (c *Canvas) Clear(col color.RGBA) {
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.Clear()
}

// Present flips the backbuffer to the screen.
func (c *Canvas) Present() {
	c.renderer.Present()
}

// FillPolygon fills a screen-space polygon. The alpha channel of col is
// respected, so translucent ghost/hint faces blend over what is already
// drawn.
func (c *Canvas) FillPolygon(xs, ys []int16, col color.RGBA) {
	gfx.FilledPolygonColor(c.renderer, xs, ys, sdlColor(col))
}

// StrokePolygon outlines a screen-space polygon with the given line width.
func (c *Canvas) StrokePolygon(xs, ys []int16, col color.RGBA, width float32) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		c.Line(float32(xs[i]), float32(ys[i]), float32(xs[j]), float32(ys[j]), col, width)
	}
}

// Line draws a line segment with the given width.
func (c *Canvas) Line(x1, y1, x2, y2 float32, col color.RGBA, width float32) {
	w := int32(width)
	if w < 1 {
		w = 1
	}
	gfx.ThickLineColor(c.renderer,
		int32(x1), int32(y1), int32(x2), int32(y2),
		w, sdlColor(col))
}

// FillRect fills an axis-aligned screen-space rectangle. Used by the HUD.
func (c *Canvas) FillRect(x, y, w, h float32, col color.RGBA) {
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.FillRectF(&sdl.FRect{X: x, Y: y, W: w, H: h})
}

// DrawRect outlines an axis-aligned screen-space rectangle.
func (c *Canvas) DrawRect(x, y, w, h float32, col color.RGBA) {
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.DrawRectF(&sdl.FRect{X: x, Y: y, W: w, H: h})
}

func sdlColor(col color.RGBA) sdl.Color {
	return sdl.Color{R: col.R, G: col.G, B: col.B, A: col.A}
}
