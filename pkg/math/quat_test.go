package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q != (Quat{0, 0, 0, 1}) {
		t.Errorf("Identity quaternion should be (0,0,0,1), got %v", q)
	}
	assert.Equal(t, Mat3Identity(), q.Mat3())
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, math.Pi/2)

	assert.InDelta(t, math.Cos(math.Pi/4), q.W, eps)
	assert.InDelta(t, math.Sin(math.Pi/4), q.Y, eps)
	assert.True(t, q.IsUnit(1e-12))
}

func TestQuatNormalized(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	assert.False(t, q.IsUnit(1e-6))
	assert.InDelta(t, 1.0, q.Normalized().Norm(), eps)
}

func TestQuatMat3MatchesAxisRotations(t *testing.T) {
	tests := []struct {
		name string
		axis Vec3
		rot  func(float64) Mat4
	}{
		{"x", Vec3{1, 0, 0}, RotateX},
		{"y", Vec3{0, 1, 0}, RotateY},
		{"z", Vec3{0, 0, 1}, RotateZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, angle := range []float64{0.3, math.Pi / 2, -2.1} {
				got := QuatFromAxisAngle(tt.axis, angle).Mat3()
				want := tt.rot(angle).LeftTop3()
				if !got.ApproxEqual(want, eps) {
					t.Errorf("angle %v: quat matrix %v, want %v", angle, got, want)
				}
			}
		})
	}
}

func TestQuatMat3RotatesRowVector(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2)
	got := q.Mat3().Apply(Vec3{1, 0, 0})
	assert.True(t, got.ApproxEqual(Vec3{0, 1, 0}, eps), "got %v", got)
}

func TestQuatMat3IsOrthonormal(t *testing.T) {
	axis := Vec3{1, 2, 3}.Normalized()
	m := QuatFromAxisAngle(axis, 1.234).Mat3()

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, m.Row(i).Dot(m.Row(j)), eps, "row %d . row %d", i, j)
		}
	}
	// the rotation axis is fixed
	assert.True(t, m.Apply(axis).ApproxEqual(axis, eps))
}
