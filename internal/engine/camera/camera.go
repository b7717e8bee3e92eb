// Package camera provides the CPU perspective camera used to project
// world-space points onto the 2D drawing surface.
package camera

import (
	"github.com/Faultbox/cubewell/pkg/math"
)

// Projection is a world-space point projected to screen space. X and Y are
// offsets from the well's screen center. Z is the signed projected depth,
// used for near-plane culling and painter's-algorithm sorting. Scale is the
// perspective shrink factor at that depth.
type Projection struct {
	X, Y  float32
	Z     float32
	Scale float32
}

// Camera orbits around the well center and projects points with a simple
// perspective divide. All rotation happens on the CPU; there is no GPU
// pipeline behind this.
type Camera struct {
	// Spherical orientation
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Screen-space magnification
	Zoom float32

	// Constraints
	MinPitch float32
	MaxPitch float32
	MinZoom  float32
	MaxZoom  float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	perspective float32
}

// New creates a camera with default settings.
func New() *Camera {
	return &Camera{
		RotationX:       0.45,
		RotationY:       0.62,
		Zoom:            1.0,
		MinPitch:        0.1,
		MaxPitch:        1.4,
		MinZoom:         0.4,
		MaxZoom:         2.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		perspective:     900.0,
	}
}

// Perspective returns the perspective constant. Renderers derive the
// near-plane culling threshold from it: anything projected to
// Z < -Perspective()+epsilon must be skipped, not drawn.
func (c *Camera) Perspective() float32 {
	return c.perspective
}

// Project maps a world-space point to screen space. It is total: points at
// or behind the eye produce degenerate scales and callers are expected to
// cull on Z before drawing.
func (c *Camera) Project(x, y, z float32) Projection {
	p := math.Vec3{X: x, Y: y, Z: z}.RotateY(c.RotationY).RotateX(c.RotationX)
	scale := c.perspective / (c.perspective + p.Z) * c.Zoom
	return Projection{
		X:     p.X * scale,
		Y:     p.Y * scale,
		Z:     p.Z,
		Scale: scale,
	}
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *Camera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY += deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates magnification based on scroll wheel delta.
func (c *Camera) HandleZoom(delta float32) {
	c.Zoom += delta * c.Zoom * c.ZoomSensitivity
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}
}
