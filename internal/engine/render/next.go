package render

import (
	"image/color"
	"sort"

	"github.com/Faultbox/cubewell/internal/engine/camera"
)

// previewScale shrinks the preview relative to the main well.
const previewScale = 0.6

// NextPieceRenderer is an isolated preview of the upcoming piece, centered
// on its own bounding box. Unlike BlockRenderer it rebuilds lazily: Update
// is a no-op while the piece type is unchanged, because the preview changes
// at most once per lock, not once per tick.
type NextPieceRenderer struct {
	cam      *camera.Camera
	cubeSize float32
	cubeGap  float32
	style    CubeStyle

	pieceType string
	cubes     []*Cube
}

// NewNextPieceRenderer creates a preview renderer with its own fixed
// camera, independent of the orbiting main view.
func NewNextPieceRenderer(cubeSize, cubeGap float32, style CubeStyle) *NextPieceRenderer {
	cam := camera.New()
	cam.RotationX = 0.5
	cam.RotationY = 0.7
	return &NextPieceRenderer{
		cam:      cam,
		cubeSize: cubeSize,
		cubeGap:  cubeGap,
		style:    style,
	}
}

// Update rebuilds the preview cubes for a new piece type. matrix is the
// piece's horizontal occupancy slice, rows indexing z and columns x.
func (r *NextPieceRenderer) Update(pieceType string, col color.RGBA, matrix [][]bool) {
	if pieceType == r.pieceType {
		return
	}
	r.pieceType = pieceType

	size := (r.cubeSize + r.cubeGap) * previewScale
	rows := len(matrix)
	cols := 0
	if rows > 0 {
		cols = len(matrix[0])
	}

	// Center the piece on its own bounding box.
	offsetX := float32(cols) * size / 2
	offsetZ := float32(rows) * size / 2

	faces := ShadeFaces(col)
	r.cubes = nil
	for z, row := range matrix {
		for x, filled := range row {
			if !filled {
				continue
			}
			cube := NewCube(r.cubeSize*previewScale, faces,
				float32(x)*size-offsetX+size/2,
				0,
				float32(z)*size-offsetZ+size/2,
				r.cam, r.style)
			r.cubes = append(r.cubes, cube)
		}
	}
}

// Clear empties the preview, forcing the next Update to rebuild.
func (r *NextPieceRenderer) Clear() {
	r.pieceType = ""
	r.cubes = nil
}

// CubeCount returns the number of preview cubes.
func (r *NextPieceRenderer) CubeCount() int {
	return len(r.cubes)
}

// Render draws the preview centered at the given screen position.
func (r *NextPieceRenderer) Render(s Surface, centerX, centerY float32) {
	for _, c := range sortByDepth(r.cam, r.cubes) {
		c.Draw(s, centerX, centerY)
	}
}

func sortByDepth(cam *camera.Camera, cubes []*Cube) []*Cube {
	sorted := make([]*Cube, len(cubes))
	copy(sorted, cubes)
	for _, c := range sorted {
		c.depth = cam.Project(c.X, c.Y, c.Z).Z
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].depth > sorted[j].depth
	})
	return sorted
}
