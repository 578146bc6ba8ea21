package math

import "fmt"

// Vec4 is a homogeneous 4D vector. W is 1 for points and 0 for directions.
type Vec4 struct {
	X, Y, Z, W float64
}

// Vec4Zero returns (0, 0, 0, 0).
func Vec4Zero() Vec4 {
	return Vec4{}
}

// Vec4One returns (1, 1, 1, 1).
func Vec4One() Vec4 {
	return Vec4{1, 1, 1, 1}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the 4-component dot product.
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Vec3 drops W.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns (X/W, Y/W, Z/W).
// W == 0 yields Inf or NaN components; a degenerate projection is not clamped.
func (v Vec4) PerspectiveDivide() Vec3 {
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4) ApproxEqual(other Vec4, eps float64) bool {
	return approx(v.X, other.X, eps) && approx(v.Y, other.Y, eps) &&
		approx(v.Z, other.Z, eps) && approx(v.W, other.W, eps)
}

// IsFinite reports whether no component is NaN or Inf.
func (v Vec4) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z) && finite(v.W)
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
