package render

import (
	"image/color"

	"github.com/Faultbox/cubewell/internal/engine/camera"
	"github.com/Faultbox/cubewell/internal/grid"
	"github.com/Faultbox/cubewell/pkg/math"
)

// WellRenderer draws the static boundary wireframe and floor grid of the
// play volume. It is purely a function of the well dimensions and the
// current cube size and gap.
type WellRenderer struct {
	cam  *camera.Camera
	dims grid.Dims

	lineColor color.RGBA
	lineWidth float32

	halfW, halfH, halfD float32
	corners             [8]math.Vec3
}

// NewWellRenderer creates a well renderer for the given dimensions.
func NewWellRenderer(cam *camera.Camera, dims grid.Dims, lineColor color.RGBA, lineWidth float32) *WellRenderer {
	return &WellRenderer{
		cam:       cam,
		dims:      dims,
		lineColor: lineColor,
		lineWidth: lineWidth,
	}
}

// UpdateSize recomputes the 8 corner points of the bounding box.
func (w *WellRenderer) UpdateSize(cubeSize, cubeGap float32) {
	size := cubeSize + cubeGap
	w.halfW = float32(w.dims.Width) * size / 2
	w.halfH = float32(w.dims.Height) * size / 2
	w.halfD = float32(w.dims.Depth) * size / 2

	i := 0
	for _, y := range [2]float32{-w.halfH, w.halfH} {
		for _, z := range [2]float32{-w.halfD, w.halfD} {
			for _, x := range [2]float32{-w.halfW, w.halfW} {
				w.corners[i] = math.Vec3{X: x, Y: y, Z: z}
				i++
			}
		}
	}
}

// boxEdges indexes corner pairs for the 12 edges of the bounding box.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // x-parallel
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // z-parallel
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // y-parallel
}

// Render draws the 12 box edges and the floor grid lines.
func (w *WellRenderer) Render(s Surface, centerX, centerY float32) {
	for _, e := range boxEdges {
		w.drawLine3D(s, centerX, centerY, w.corners[e[0]], w.corners[e[1]])
	}

	size := w.halfW * 2 / float32(w.dims.Width)

	// Floor lines at the bottom of the well: width+1 lines along z and
	// depth+1 lines along x.
	for i := 0; i <= w.dims.Width; i++ {
		x := -w.halfW + float32(i)*size
		w.drawLine3D(s, centerX, centerY,
			math.Vec3{X: x, Y: w.halfH, Z: -w.halfD},
			math.Vec3{X: x, Y: w.halfH, Z: w.halfD})
	}
	for i := 0; i <= w.dims.Depth; i++ {
		z := -w.halfD + float32(i)*size
		w.drawLine3D(s, centerX, centerY,
			math.Vec3{X: -w.halfW, Y: w.halfH, Z: z},
			math.Vec3{X: w.halfW, Y: w.halfH, Z: z})
	}
}

// drawLine3D projects both endpoints and draws the segment, skipping it
// entirely when either endpoint lands behind the near-culling threshold.
// This culling rule is the sole guard against degenerate projections.
func (w *WellRenderer) drawLine3D(s Surface, centerX, centerY float32, a, b math.Vec3) {
	cull := -w.cam.Perspective() + nearPlaneEpsilon

	pa := w.cam.Project(a.X, a.Y, a.Z)
	pb := w.cam.Project(b.X, b.Y, b.Z)
	if pa.Z < cull || pb.Z < cull {
		return
	}

	s.Line(centerX+pa.X, centerY+pa.Y, centerX+pb.X, centerY+pb.Y, w.lineColor, w.lineWidth)
}
