package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/cubewell/internal/engine/camera"
)

func TestEaseOutBounceEndpoints(t *testing.T) {
	assert.InDelta(t, 0.0, EaseOutBounce(0), 1e-9)
	assert.InDelta(t, 1.0, EaseOutBounce(1), 1e-9)
}

func TestEaseOutBounceStaysInRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := EaseOutBounce(float64(i) / 100)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0+1e-9)
	}
}

func TestTweenAdvancesTarget(t *testing.T) {
	cube := NewCube(30, UniformFaces(cyan), 0, -30, 0, camera.New(), testStyle)
	var l TweenList
	l.Animate(cube, 0, 1.0, EaseLinear)

	l.Advance(0.5)
	assert.InDelta(t, -15, cube.Y, 1e-4)
	assert.Equal(t, 1, l.Len())

	l.Advance(0.6)
	assert.InDelta(t, 0, cube.Y, 1e-4)
	assert.Equal(t, 0, l.Len(), "finished tween removed")
}

func TestTweenZeroDurationIgnored(t *testing.T) {
	cube := NewCube(30, UniformFaces(cyan), 0, -30, 0, camera.New(), testStyle)
	var l TweenList

	l.Animate(cube, 0, 0, EaseLinear)
	assert.Equal(t, 0, l.Len())
	assert.InDelta(t, -30, cube.Y, 1e-4)
}

func TestTweenClearLeavesTargetUntouched(t *testing.T) {
	cube := NewCube(30, UniformFaces(cyan), 0, -30, 0, camera.New(), testStyle)
	var l TweenList
	l.Animate(cube, 0, 1.0, EaseLinear)
	l.Advance(0.25)
	before := cube.Y

	l.Clear()
	l.Advance(1.0)

	assert.Equal(t, 0, l.Len())
	assert.InDelta(t, float64(before), float64(cube.Y), 1e-6)
}
