package math

import (
	gomath "math"
	"testing"
)

func TestVec3Sub(t *testing.T) {
	a := Vec3{5, 5, 5}
	b := Vec3{1, 2, 3}
	got := a.Sub(b)
	want := Vec3{4, 3, 2}
	if got != want {
		t.Errorf("Vec3.Sub() = %v, want %v", got, want)
	}
}

func TestVec3RotateYQuarterTurn(t *testing.T) {
	v := Vec3{1, 0, 0}
	got := v.RotateY(gomath.Pi / 2)
	want := Vec3{0, 0, 1}
	if !vec3Near(got, want, 1e-6) {
		t.Errorf("Vec3.RotateY(pi/2) = %v, want %v", got, want)
	}
}

func TestVec3RotateXQuarterTurn(t *testing.T) {
	v := Vec3{0, 1, 0}
	got := v.RotateX(gomath.Pi / 2)
	want := Vec3{0, 0, 1}
	if !vec3Near(got, want, 1e-6) {
		t.Errorf("Vec3.RotateX(pi/2) = %v, want %v", got, want)
	}
}

func TestVec3RotatePreservesLength(t *testing.T) {
	v := Vec3{3, 4, 12}
	rotated := v.RotateY(0.7).RotateX(-1.3)
	if diff := rotated.Length() - v.Length(); diff > 1e-4 || diff < -1e-4 {
		t.Errorf("rotation changed length: %v -> %v", v.Length(), rotated.Length())
	}
}

func vec3Near(a, b Vec3, eps float32) bool {
	return a.Distance(b) < eps
}
