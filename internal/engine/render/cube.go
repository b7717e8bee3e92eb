package render

import (
	"image/color"
	"sort"

	"github.com/Faultbox/cubewell/internal/engine/camera"
	"github.com/Faultbox/cubewell/pkg/math"
)

// nearPlaneEpsilon keeps projected points clear of the perspective
// singularity. Any point with projected depth below -perspective+epsilon is
// skipped, never drawn.
const nearPlaneEpsilon = 1.0

// CubeStyle holds the shared stroke and sticker styling for visual cubes.
type CubeStyle struct {
	StrokeColor  color.RGBA
	StrokeWidth  float32
	Sticker      bool
	StickerInset float32 // fraction of the half-face pulled toward the center
	StickerBase  color.RGBA
}

// Cube is a disposable visual primitive: one voxel of a piece or one locked
// cell, rebuilt from Grid/Piece truth on every state change. It is never
// authoritative game state.
type Cube struct {
	X, Y, Z float32
	Size    float32
	Faces   FaceColors
	Opacity float32

	cam   *camera.Camera
	style CubeStyle

	// cached projected depth from the latest sort pass
	depth float32
}

// NewCube creates a cube at a world-space position.
func NewCube(size float32, faces FaceColors, x, y, z float32, cam *camera.Camera, style CubeStyle) *Cube {
	return &Cube{
		X:       x,
		Y:       y,
		Z:       z,
		Size:    size,
		Faces:   faces,
		Opacity: 1.0,
		cam:     cam,
		style:   style,
	}
}

// corner offsets, unit half-extents
var cubeCorners = [8]math.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
}

// cubeFaces lists the corner indices of each face in counter-clockwise
// order when viewed from outside the cube. Indexed by Face.
var cubeFaces = [6][4]int{
	FaceTop:    {0, 1, 2, 3}, // y-
	FaceBottom: {7, 6, 5, 4}, // y+
	FaceFront:  {4, 5, 1, 0}, // z-
	FaceBack:   {6, 7, 3, 2}, // z+
	FaceLeft:   {7, 4, 0, 3}, // x-
	FaceRight:  {5, 6, 2, 1}, // x+
}

// Draw projects the cube's corners and paints its visible faces
// back-to-front. Faces with any corner behind the near-culling threshold
// are skipped, as are faces wound away from the camera.
func (c *Cube) Draw(s Surface, centerX, centerY float32) {
	half := c.Size / 2
	cull := -c.cam.Perspective() + nearPlaneEpsilon

	var projected [8]camera.Projection
	for i, corner := range cubeCorners {
		projected[i] = c.cam.Project(
			c.X+corner.X*half,
			c.Y+corner.Y*half,
			c.Z+corner.Z*half,
		)
	}

	type visibleFace struct {
		face  Face
		depth float32
	}
	visible := make([]visibleFace, 0, 6)

	for f, idx := range cubeFaces {
		behind := false
		depth := float32(0)
		for _, i := range idx {
			if projected[i].Z < cull {
				behind = true
				break
			}
			depth += projected[i].Z
		}
		if behind {
			continue
		}
		if backfacing(projected[idx[0]], projected[idx[1]], projected[idx[2]]) {
			continue
		}
		visible = append(visible, visibleFace{face: Face(f), depth: depth / 4})
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})

	for _, vf := range visible {
		c.drawFace(s, centerX, centerY, vf.face, projected)
	}
}

func (c *Cube) drawFace(s Surface, centerX, centerY float32, f Face, projected [8]camera.Projection) {
	idx := cubeFaces[f]

	var xs, ys [4]int16
	for k, i := range idx {
		xs[k] = int16(centerX + projected[i].X)
		ys[k] = int16(centerY + projected[i].Y)
	}

	faceColor := withAlpha(c.Faces[f], c.Opacity)

	if c.style.Sticker {
		// Base plastic quad with an inset sticker on top of it.
		s.FillPolygon(xs[:], ys[:], withAlpha(c.style.StickerBase, c.Opacity))

		var cx, cy float32
		for k := range xs {
			cx += float32(xs[k])
			cy += float32(ys[k])
		}
		cx /= 4
		cy /= 4

		var sx, sy [4]int16
		for k := range xs {
			sx[k] = int16(float32(xs[k]) + (cx-float32(xs[k]))*c.style.StickerInset)
			sy[k] = int16(float32(ys[k]) + (cy-float32(ys[k]))*c.style.StickerInset)
		}
		s.FillPolygon(sx[:], sy[:], faceColor)
	} else {
		s.FillPolygon(xs[:], ys[:], faceColor)
	}

	if c.style.StrokeWidth > 0 {
		s.StrokePolygon(xs[:], ys[:], withAlpha(c.style.StrokeColor, c.Opacity), c.style.StrokeWidth)
	}
}

// backfacing reports whether the projected face winds away from the camera.
// Edge-on faces count as backfacing; they have no area to paint.
func backfacing(a, b, d camera.Projection) bool {
	return (b.X-a.X)*(d.Y-a.Y)-(b.Y-a.Y)*(d.X-a.X) >= 0
}
