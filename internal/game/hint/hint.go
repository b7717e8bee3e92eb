// Package hint searches for a good placement of the active piece and
// exposes it as absolute grid positions for the renderer's hint cubes.
package hint

import (
	"github.com/Faultbox/cubewell/internal/game/piece"
	"github.com/Faultbox/cubewell/internal/grid"
)

// Evaluation weights. Lower score is better: tall stacks, buried holes and
// uneven surfaces all make a well harder to clear.
const (
	weightHeight    = 1.0
	weightHoles     = 4.0
	weightBumpiness = 0.3
	weightLanding   = 0.5
)

// Placement is a suggested drop for the current piece.
type Placement struct {
	// Positions are the piece's absolute cells at the landing height.
	Positions []grid.Pos
	LandingY  int
	Score     float64
}

// Best tries every yaw orientation and (x,z) offset of the piece, drops
// each candidate, and returns the placement with the lowest score, or nil
// if the piece cannot be placed anywhere. The grid is never mutated; the
// stack is evaluated through its column heights.
func Best(g *grid.Grid, p *piece.Piece) *Placement {
	heights := g.GetColumnHeights()

	probe := piece.New(piece.Shape{Type: p.Type, Matrix: p.Matrix(), Color: p.Color})

	var best *Placement
	for rot := 0; rot < 4; rot++ {
		for x := 0; x < g.Width(); x++ {
			for z := 0; z < g.Depth(); z++ {
				candidate := evaluate(g, heights, probe, x, z)
				if candidate == nil {
					continue
				}
				if best == nil || candidate.Score < best.Score {
					best = candidate
				}
			}
		}
		probe.SetMatrix(probe.RotatedMatrix())
	}
	return best
}

func evaluate(g *grid.Grid, heights [][]int, p *piece.Piece, x, z int) *Placement {
	start := p.PositionsAt(x, 0, z)
	if !g.CanPlace(start) {
		return nil
	}

	landingY := g.CalculateLandingY(start, 0)
	landed := p.PositionsAt(x, landingY, z)
	if !g.CanPlace(landed) {
		return nil
	}

	return &Placement{
		Positions: landed,
		LandingY:  landingY,
		Score:     score(g, heights, landed, landingY),
	}
}

// score evaluates the stack as if the landed cells were placed, using the
// pre-drop column heights. Pieces are one cell tall, so each landed cell
// caps its own column.
func score(g *grid.Grid, heights [][]int, landed []grid.Pos, landingY int) float64 {
	newTop := make(map[[2]int]int, len(landed))
	holes := 0
	for _, c := range landed {
		newTop[[2]int{c.X, c.Z}] = c.Y
		// Every empty cell between the landed cell and the old column top
		// becomes unreachable.
		if gap := heights[c.X][c.Z] - (c.Y + 1); gap > 0 {
			holes += gap
		}
	}

	aggregate := 0
	for x := 0; x < g.Width(); x++ {
		for z := 0; z < g.Depth(); z++ {
			top := heights[x][z]
			if y, ok := newTop[[2]int{x, z}]; ok && y < top {
				top = y
			}
			aggregate += g.Height() - top
		}
	}

	bumpiness := 0
	top := func(x, z int) int {
		t := heights[x][z]
		if y, ok := newTop[[2]int{x, z}]; ok && y < t {
			t = y
		}
		return t
	}
	for x := 0; x < g.Width(); x++ {
		for z := 0; z < g.Depth(); z++ {
			if x+1 < g.Width() {
				bumpiness += abs(top(x, z) - top(x+1, z))
			}
			if z+1 < g.Depth() {
				bumpiness += abs(top(x, z) - top(x, z+1))
			}
		}
	}

	return weightHeight*float64(aggregate) +
		weightHoles*float64(holes) +
		weightBumpiness*float64(bumpiness) +
		weightLanding*float64(g.Height()-1-landingY)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
