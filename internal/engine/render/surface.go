// Package render derives and draws the 3D visuals of the well: the static
// wireframe boundary, depth-sorted visual cubes for locked blocks and the
// active, ghost, and hint pieces, and the next-piece preview. Everything is
// projected on the CPU and composited with a painter's algorithm; there is
// no depth buffer.
package render

import "image/color"

// Surface is the screen-space drawing target. The SDL canvas implements it
// in production; tests substitute a recording stub.
type Surface interface {
	FillPolygon(xs, ys []int16, col color.RGBA)
	StrokePolygon(xs, ys []int16, col color.RGBA, width float32)
	Line(x1, y1, x2, y2 float32, col color.RGBA, width float32)
}
