package render

import (
	"image/color"
	"sort"

	"github.com/Faultbox/cubewell/internal/engine/camera"
	"github.com/Faultbox/cubewell/internal/grid"
)

const (
	hintOpacity = 0.4

	// Drop bounce: just-locked cubes start one cube above their resting Y
	// and bounce back down over this many seconds.
	bounceDuration = 0.45
)

// PieceView is the renderer's read-only view of a piece: resolved absolute
// grid positions, the piece's origin y, and its color.
type PieceView struct {
	Positions []grid.Pos
	Y         int
	Color     color.RGBA
}

// BlockRenderer maintains four independent visual cube sets (locked grid
// cells, active piece, ghost, hint) and renders them depth-sorted. Each set
// is fully rebuilt from Grid/Piece truth whenever its source changes; the
// cubes are disposable and never consulted as game state.
type BlockRenderer struct {
	cam  *camera.Camera
	dims grid.Dims

	cubeSize   float32
	cubeGap    float32
	ghostAlpha float32
	style      CubeStyle

	gridCubes  []*Cube
	pieceCubes []*Cube
	ghostCubes []*Cube
	hintCubes  []*Cube

	tweens TweenList
}

// NewBlockRenderer creates a block renderer for a well of the given
// dimensions.
func NewBlockRenderer(cam *camera.Camera, dims grid.Dims, cubeSize, cubeGap, ghostAlpha float32, style CubeStyle) *BlockRenderer {
	return &BlockRenderer{
		cam:        cam,
		dims:       dims,
		cubeSize:   cubeSize,
		cubeGap:    cubeGap,
		ghostAlpha: ghostAlpha,
		style:      style,
	}
}

// UpdateSize changes the cube footprint. Cube sets keep their stale
// geometry until their next Update call rebuilds them from truth.
func (r *BlockRenderer) UpdateSize(cubeSize, cubeGap float32) {
	r.cubeSize = cubeSize
	r.cubeGap = cubeGap
}

// UpdatePiece rebuilds the active piece's cube set, or clears it for nil.
func (r *BlockRenderer) UpdatePiece(p *PieceView) {
	if p == nil {
		r.pieceCubes = nil
		return
	}
	r.pieceCubes = r.buildCubes(p.Positions, ShadeFaces(p.Color), 1.0)
}

// UpdateGhost rebuilds the translucent landing preview. The ghost is
// cleared when there is no piece or the piece is already resting at its
// landing height.
func (r *BlockRenderer) UpdateGhost(p *PieceView, landingY int) {
	if p == nil || landingY == p.Y {
		r.ghostCubes = nil
		return
	}

	shifted := make([]grid.Pos, len(p.Positions))
	for i, pos := range p.Positions {
		shifted[i] = grid.Pos{X: pos.X, Y: pos.Y + (landingY - p.Y), Z: pos.Z}
	}
	r.ghostCubes = r.buildCubes(shifted, ShadeFaces(p.Color), r.ghostAlpha)
}

// UpdateGrid rebuilds the locked-cell cube set from a fresh Grid snapshot.
// Cells listed in newPositions were locked this tick: their cubes start one
// cube size above their resting Y and bounce back down. Tweens from the
// previous snapshot target discarded cubes and are dropped.
func (r *BlockRenderer) UpdateGrid(filled []grid.FilledCell, newPositions []grid.Pos) {
	r.tweens.Clear()

	r.gridCubes = make([]*Cube, 0, len(filled))
	for _, cell := range filled {
		world := grid.GridToWorld(cell.X, cell.Y, cell.Z, r.dims, r.cubeSize, r.cubeGap)
		cube := NewCube(r.cubeSize, ShadeFaces(cell.Color), world.X, world.Y, world.Z, r.cam, r.style)
		r.gridCubes = append(r.gridCubes, cube)

		if r.isNewlyLocked(world.X, world.Y, world.Z, newPositions) {
			restingY := cube.Y
			cube.Y = restingY - r.cubeSize
			r.tweens.Animate(cube, restingY, bounceDuration, EaseOutBounce)
		}
	}
}

// isNewlyLocked matches a rebuilt cube to a just-locked cell by
// world-position proximity.
func (r *BlockRenderer) isNewlyLocked(x, y, z float32, newPositions []grid.Pos) bool {
	if len(newPositions) == 0 {
		return false
	}
	eps := r.cubeSize / 4
	for _, p := range newPositions {
		w := grid.GridToWorld(p.X, p.Y, p.Z, r.dims, r.cubeSize, r.cubeGap)
		if near(w.X, x, eps) && near(w.Y, y, eps) && near(w.Z, z, eps) {
			return true
		}
	}
	return false
}

func near(a, b, eps float32) bool {
	d := a - b
	return d < eps && d > -eps
}

// UpdateHint rebuilds the gold suggested-placement cubes, or clears them
// for nil. The hint's lifecycle is independent of piece, ghost, and grid.
func (r *BlockRenderer) UpdateHint(positions []grid.Pos) {
	if positions == nil {
		r.hintCubes = nil
		return
	}
	r.hintCubes = r.buildCubes(positions, UniformFaces(HintColor), hintOpacity)
}

func (r *BlockRenderer) buildCubes(positions []grid.Pos, faces FaceColors, opacity float32) []*Cube {
	cubes := make([]*Cube, 0, len(positions))
	for _, p := range positions {
		world := grid.GridToWorld(p.X, p.Y, p.Z, r.dims, r.cubeSize, r.cubeGap)
		cube := NewCube(r.cubeSize, faces, world.X, world.Y, world.Z, r.cam, r.style)
		cube.Opacity = opacity
		cubes = append(cubes, cube)
	}
	return cubes
}

// Tick advances the drop-bounce animations by dt seconds.
func (r *BlockRenderer) Tick(dt float64) {
	r.tweens.Advance(dt)
}

// SortedCubes concatenates all four cube sets and orders them farthest
// first by projected depth: the painter's algorithm, required because the
// faces are flat-filled polygons with no depth buffer.
func (r *BlockRenderer) SortedCubes() []*Cube {
	cubes := make([]*Cube, 0, len(r.gridCubes)+len(r.hintCubes)+len(r.ghostCubes)+len(r.pieceCubes))
	cubes = append(cubes, r.gridCubes...)
	cubes = append(cubes, r.hintCubes...)
	cubes = append(cubes, r.ghostCubes...)
	cubes = append(cubes, r.pieceCubes...)

	for _, c := range cubes {
		c.depth = r.cam.Project(c.X, c.Y, c.Z).Z
	}
	sort.SliceStable(cubes, func(i, j int) bool {
		return cubes[i].depth > cubes[j].depth
	})
	return cubes
}

// Render draws all cube sets depth-sorted around the well's screen center.
// Per-cube opacity is applied inside each draw call and never leaks to the
// next cube.
func (r *BlockRenderer) Render(s Surface, centerX, centerY float32) {
	for _, c := range r.SortedCubes() {
		c.Draw(s, centerX, centerY)
	}
}
