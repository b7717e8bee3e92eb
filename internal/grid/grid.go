// Package grid implements the 3D occupancy store for the well: placement
// validation, cascading layer clears, and landing queries.
package grid

import "image/color"

// landingSearchSlack bounds the brute-force landing descent past the floor.
const landingSearchSlack = 5

// Pos is an absolute cell position in grid space.
type Pos struct {
	X, Y, Z int
}

// Cell is one unit of the occupancy store.
type Cell struct {
	Filled bool
	Color  color.RGBA
}

// FilledCell is a flattened snapshot entry for the renderer.
type FilledCell struct {
	X, Y, Z int
	Color   color.RGBA
}

// ClearResult reports what CheckAndClearLayers removed.
type ClearResult struct {
	ClearedCount  int
	ClearedLayers []int
}

// Dims holds the immutable well dimensions.
type Dims struct {
	Width, Height, Depth int
}

// Grid is the sole source of truth for locked blocks in the well.
// Dimensions are fixed at construction. Cells are stored in a single
// flat buffer indexed x*height*depth + y*depth + z.
type Grid struct {
	width  int
	height int
	depth  int
	cells  []Cell
}

// New creates an empty grid with the given dimensions.
func New(width, height, depth int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		cells:  make([]Cell, width*height*depth),
	}
}

// Width returns the x extent.
func (g *Grid) Width() int { return g.width }

// Height returns the y extent (y grows downward).
func (g *Grid) Height() int { return g.height }

// Depth returns the z extent.
func (g *Grid) Depth() int { return g.depth }

// Dims returns the well dimensions.
func (g *Grid) Dims() Dims {
	return Dims{Width: g.width, Height: g.height, Depth: g.depth}
}

func (g *Grid) idx(x, y, z int) int {
	return x*g.height*g.depth + y*g.depth + z
}

// Clear resets every cell to empty. Used on restart.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// IsInBounds reports strict containment in [0,width)x[0,height)x[0,depth).
func (g *Grid) IsInBounds(x, y, z int) bool {
	return x >= 0 && x < g.width &&
		y >= 0 && y < g.height &&
		z >= 0 && z < g.depth
}

// IsOccupied is total over all integer coordinates. Precedence: out-of-range
// x or z is a wall (occupied, even for negative y), y < 0 is the free spawn
// zone, y >= height is the floor, otherwise the stored cell decides.
func (g *Grid) IsOccupied(x, y, z int) bool {
	if x < 0 || x >= g.width || z < 0 || z >= g.depth {
		return true
	}
	if y < 0 {
		return false
	}
	if y >= g.height {
		return true
	}
	return g.cells[g.idx(x, y, z)].Filled
}

// CanPlace reports whether none of the positions are occupied.
func (g *Grid) CanPlace(positions []Pos) bool {
	for _, p := range positions {
		if g.IsOccupied(p.X, p.Y, p.Z) {
			return false
		}
	}
	return true
}

// PlacePiece fills every in-bounds position with the given color.
// Out-of-bounds positions are silently ignored; callers are expected to
// have validated with CanPlace first.
func (g *Grid) PlacePiece(positions []Pos, c color.RGBA) {
	for _, p := range positions {
		if g.IsInBounds(p.X, p.Y, p.Z) {
			g.cells[g.idx(p.X, p.Y, p.Z)] = Cell{Filled: true, Color: c}
		}
	}
}

// CheckAndClearLayers removes every complete layer and collapses the cells
// above it. All complete layers are identified against the pre-clear state,
// then cleared smallest y first: collapsing a layer only moves rows above
// it, so the larger indices in the list stay valid and N adjacent complete
// layers leave the grid N rows emptier, not N-1.
func (g *Grid) CheckAndClearLayers() ClearResult {
	var complete []int
	for y := g.height - 1; y >= 0; y-- {
		if g.layerComplete(y) {
			complete = append(complete, y)
		}
	}

	// complete is in descending y order from the scan; walk it backwards.
	for i := len(complete) - 1; i >= 0; i-- {
		g.clearLayer(complete[i])
	}

	return ClearResult{
		ClearedCount:  len(complete),
		ClearedLayers: complete,
	}
}

func (g *Grid) layerComplete(y int) bool {
	for x := 0; x < g.width; x++ {
		for z := 0; z < g.depth; z++ {
			if !g.cells[g.idx(x, y, z)].Filled {
				return false
			}
		}
	}
	return true
}

// clearLayer shifts every row above layerY down by one and empties row 0.
func (g *Grid) clearLayer(layerY int) {
	for x := 0; x < g.width; x++ {
		for z := 0; z < g.depth; z++ {
			for y := layerY; y >= 1; y-- {
				g.cells[g.idx(x, y, z)] = g.cells[g.idx(x, y-1, z)]
			}
			g.cells[g.idx(x, 0, z)] = Cell{}
		}
	}
}

// GetFilledCells flattens the store to a snapshot for the renderer.
func (g *Grid) GetFilledCells() []FilledCell {
	var filled []FilledCell
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			for z := 0; z < g.depth; z++ {
				if c := g.cells[g.idx(x, y, z)]; c.Filled {
					filled = append(filled, FilledCell{X: x, Y: y, Z: z, Color: c.Color})
				}
			}
		}
	}
	return filled
}

// GetColumnHeights returns, per (x,z) column, the topmost filled y, or
// height for an empty column.
func (g *Grid) GetColumnHeights() [][]int {
	heights := make([][]int, g.width)
	for x := 0; x < g.width; x++ {
		heights[x] = make([]int, g.depth)
		for z := 0; z < g.depth; z++ {
			heights[x][z] = g.height
			for y := 0; y < g.height; y++ {
				if g.cells[g.idx(x, y, z)].Filled {
					heights[x][z] = y
					break
				}
			}
		}
	}
	return heights
}

// IsGameOver reports whether blocks have backed up into the spawn zone
// (any filled cell in row 0 or 1, or fewer rows on a shallower grid).
func (g *Grid) IsGameOver() bool {
	rows := 2
	if rows > g.height {
		rows = g.height
	}
	for x := 0; x < g.width; x++ {
		for z := 0; z < g.depth; z++ {
			for y := 0; y < rows; y++ {
				if g.cells[g.idx(x, y, z)].Filled {
					return true
				}
			}
		}
	}
	return false
}

// CalculateLandingY descends from the piece's current y one row at a time
// until placement fails and returns the last valid y. positions are the
// piece's absolute cell positions at originY. The search is capped at
// height+5 iterations; hitting the cap returns originY, which callers must
// treat as "no confirmed landing", not a legal drop target.
func (g *Grid) CalculateLandingY(positions []Pos, originY int) int {
	landing := originY
	shifted := make([]Pos, len(positions))

	for i := 0; i < g.height+landingSearchSlack; i++ {
		testY := landing + 1
		for j, p := range positions {
			shifted[j] = Pos{X: p.X, Y: p.Y + (testY - originY), Z: p.Z}
		}
		if !g.CanPlace(shifted) {
			return landing
		}
		landing = testY
	}
	return originY
}
