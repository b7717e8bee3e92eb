// Package piece defines the falling polycube pieces: flat shape matrices,
// yaw rotation, and resolution to absolute grid positions.
package piece

import (
	"image/color"

	"github.com/Faultbox/cubewell/internal/grid"
)

// Shape is an immutable piece definition. The matrix is the piece's
// horizontal occupancy slice: rows index z, columns index x. Pieces are one
// cell tall.
type Shape struct {
	Type   string
	Matrix [][]bool
	Color  color.RGBA
}

// Piece is an active falling piece: a shape in some orientation plus an
// origin in grid space.
type Piece struct {
	Type    string
	Color   color.RGBA
	X, Y, Z int

	matrix [][]bool
}

// New creates a piece from a shape at the origin.
func New(s Shape) *Piece {
	return &Piece{
		Type:   s.Type,
		Color:  s.Color,
		matrix: s.Matrix,
	}
}

// Matrix returns the current orientation's occupancy slice.
func (p *Piece) Matrix() [][]bool {
	return p.matrix
}

// Voxels returns the piece's relative cell offsets for the current
// orientation.
func (p *Piece) Voxels() []grid.Pos {
	var voxels []grid.Pos
	for z, row := range p.matrix {
		for x, filled := range row {
			if filled {
				voxels = append(voxels, grid.Pos{X: x, Y: 0, Z: z})
			}
		}
	}
	return voxels
}

// WorldPositions resolves the piece's absolute grid positions.
func (p *Piece) WorldPositions() []grid.Pos {
	return p.PositionsAt(p.X, p.Y, p.Z)
}

// PositionsAt resolves the piece's absolute grid positions at an arbitrary
// origin, without moving the piece.
func (p *Piece) PositionsAt(x, y, z int) []grid.Pos {
	var positions []grid.Pos
	for vz, row := range p.matrix {
		for vx, filled := range row {
			if filled {
				positions = append(positions, grid.Pos{X: x + vx, Y: y, Z: z + vz})
			}
		}
	}
	return positions
}

// RotatedMatrix returns the matrix turned a quarter turn around the y axis.
// The piece itself is unchanged; callers validate the candidate against the
// grid before committing with SetMatrix.
func (p *Piece) RotatedMatrix() [][]bool {
	rows := len(p.matrix)
	if rows == 0 {
		return nil
	}
	cols := len(p.matrix[0])

	rotated := make([][]bool, cols)
	for x := 0; x < cols; x++ {
		rotated[x] = make([]bool, rows)
		for z := 0; z < rows; z++ {
			rotated[x][z] = p.matrix[rows-1-z][x]
		}
	}
	return rotated
}

// SetMatrix commits a validated orientation.
func (p *Piece) SetMatrix(m [][]bool) {
	p.matrix = m
}
