package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cubewell/internal/game/piece"
	"github.com/Faultbox/cubewell/internal/grid"
)

func shapeByType(t *testing.T, name string) piece.Shape {
	t.Helper()
	for _, s := range piece.Shapes {
		if s.Type == name {
			return s
		}
	}
	t.Fatalf("no shape %q", name)
	return piece.Shape{}
}

func TestWorldPositionsResolveOrigin(t *testing.T) {
	p := piece.New(shapeByType(t, "O"))
	p.X, p.Y, p.Z = 2, 5, 3

	positions := p.WorldPositions()

	assert.ElementsMatch(t, []grid.Pos{
		{X: 2, Y: 5, Z: 3},
		{X: 3, Y: 5, Z: 3},
		{X: 2, Y: 5, Z: 4},
		{X: 3, Y: 5, Z: 4},
	}, positions)
}

func TestPositionsAtDoesNotMovePiece(t *testing.T) {
	p := piece.New(shapeByType(t, "I"))
	p.X, p.Y, p.Z = 1, 0, 1

	p.PositionsAt(4, 9, 4)

	assert.Equal(t, 1, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 1, p.Z)
}

func TestRotatedMatrixQuarterTurn(t *testing.T) {
	p := piece.New(shapeByType(t, "I"))

	rotated := p.RotatedMatrix()

	require.Len(t, rotated, 4)
	for _, row := range rotated {
		assert.Equal(t, []bool{true}, row)
	}

	// Four quarter turns restore the original orientation.
	for i := 0; i < 4; i++ {
		p.SetMatrix(p.RotatedMatrix())
	}
	assert.Equal(t, shapeByType(t, "I").Matrix, p.Matrix())
}

func TestRotationPreservesVoxelCount(t *testing.T) {
	for _, s := range piece.Shapes {
		p := piece.New(s)
		before := len(p.Voxels())
		p.SetMatrix(p.RotatedMatrix())
		assert.Len(t, p.Voxels(), before, "shape %s", s.Type)
	}
}

func TestBagDealsEveryShapeOncePerBag(t *testing.T) {
	bag := piece.NewBag(42)

	for round := 0; round < 3; round++ {
		seen := map[string]int{}
		for i := 0; i < len(piece.Shapes); i++ {
			seen[bag.Next().Type]++
		}
		for _, s := range piece.Shapes {
			assert.Equal(t, 1, seen[s.Type], "round %d shape %s", round, s.Type)
		}
	}
}

func TestBagIsDeterministicPerSeed(t *testing.T) {
	a := piece.NewBag(7)
	b := piece.NewBag(7)

	for i := 0; i < 21; i++ {
		assert.Equal(t, a.Next().Type, b.Next().Type)
	}
}
