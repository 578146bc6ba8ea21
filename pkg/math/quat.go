package math

import (
	"fmt"
	"math"
)

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
// Nothing enforces unit length; Mat3 is only a rotation for unit quaternions.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Norm returns the quaternion length.
func (q Quat) Norm() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalized returns q scaled to unit length. A zero quaternion yields NaN.
func (q Quat) Normalized() Quat {
	inv := 1 / q.Norm()
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// IsUnit reports whether q has unit length within eps.
func (q Quat) IsUnit(eps float64) bool {
	return approx(q.Dot(q), 1, eps)
}

// Mat3 converts a unit quaternion to a rotation matrix for row vectors,
// so that q.Mat3().Apply(v) rotates v. A quaternion about Z by angle a
// produces the same matrix as RotateZ(a).
func (q Quat) Mat3() Mat3 {
	xx := q.X * q.X
	xy := q.X * q.Y
	xz := q.X * q.Z
	xw := q.X * q.W
	yy := q.Y * q.Y
	yz := q.Y * q.Z
	yw := q.Y * q.W
	zz := q.Z * q.Z
	zw := q.Z * q.W

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw),
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw),
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy),
	}
}

func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.X, q.Y, q.Z, q.W)
}
