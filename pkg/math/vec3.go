// Package math provides row-major, row-vector linear algebra for 3D graphics.
//
// Vectors are rows and are transformed by multiplying on the left of a matrix
// (v' = v * M), so a model-view-projection matrix is composed as
// Model.Mul(View).Mul(Projection) and Model is applied first. Matrices are
// stored row by row: element (r, c) of a Mat4 is m[r*4+c], and translation
// lives in row 3.
//
// Degenerate inputs are never clamped. Normalizing a zero vector or dividing
// by a zero W yields IEEE NaN or Inf, which callers detect with IsFinite.
package math

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Vec3Zero returns (0, 0, 0).
func Vec3Zero() Vec3 {
	return Vec3{}
}

// Vec3One returns (1, 1, 1).
func Vec3One() Vec3 {
	return Vec3{1, 1, 1}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// SqNorm returns the squared magnitude.
func (v Vec3) SqNorm() float64 {
	return v.Dot(v)
}

// Norm returns the magnitude.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.SqNorm())
}

// Normalized returns a unit vector. A zero vector yields NaN components.
func (v Vec3) Normalized() Vec3 {
	return v.Scale(1 / v.Norm())
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Norm()
}

// Vec4 extends v with a homogeneous coordinate.
func (v Vec3) Vec4(w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3) ApproxEqual(other Vec3, eps float64) bool {
	return approx(v.X, other.X, eps) && approx(v.Y, other.Y, eps) && approx(v.Z, other.Z, eps)
}

// IsFinite reports whether no component is NaN or Inf.
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
