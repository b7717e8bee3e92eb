package grid

import "github.com/Faultbox/cubewell/pkg/math"

// GridToWorld maps a discrete cell to the continuous world-space point at
// its center. The well is centered on the world origin: each axis maps as
// grid*size - dim*size/2 + size/2 with size = cubeSize + cubeGap.
//
// Every component that places a cell in world space (block renderers, well
// bounds) must go through this mapping so visuals and logic never disagree
// about where a cell is.
func GridToWorld(gx, gy, gz int, dims Dims, cubeSize, cubeGap float32) math.Vec3 {
	size := cubeSize + cubeGap
	return math.Vec3{
		X: float32(gx)*size - float32(dims.Width)*size/2 + size/2,
		Y: float32(gy)*size - float32(dims.Height)*size/2 + size/2,
		Z: float32(gz)*size - float32(dims.Depth)*size/2 + size/2,
	}
}
