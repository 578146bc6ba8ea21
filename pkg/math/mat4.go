package math

import (
	"fmt"
	"math"
	"strings"
)

// Mat4 is a 4x4 matrix in row-major order: element (r, c) is m[r*4+c].
// Layout: [m0  m1  m2  m3 ]
//
//	[m4  m5  m6  m7 ]
//	[m8  m9  m10 m11]
//	[m12 m13 m14 m15]
//
// Points are row vectors multiplied on the left (v' = v * M), so translation
// is stored in row 3.
type Mat4 [16]float64

// Mat4Identity returns an identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromRows builds a matrix from four row vectors.
func Mat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{
		r0.X, r0.Y, r0.Z, r0.W,
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
	}
}

// Mat4FromRowSlice builds a matrix from exactly four row vectors.
func Mat4FromRowSlice(rows []Vec4) (Mat4, error) {
	if len(rows) != 4 {
		return Mat4{}, fmt.Errorf("mat4 needs 4 rows, got %d: %w", len(rows), ErrArgumentCount)
	}
	return Mat4FromRows(rows[0], rows[1], rows[2], rows[3]), nil
}

// Mat4FromSlice builds a matrix from sixteen row-major scalars.
func Mat4FromSlice(values []float64) (Mat4, error) {
	var m Mat4
	if len(values) != len(m) {
		return m, fmt.Errorf("mat4 needs %d values, got %d: %w", len(m), len(values), ErrArgumentCount)
	}
	copy(m[:], values)
	return m, nil
}

// Perspective returns a perspective projection matrix.
// fovY is the vertical field of view in degrees, aspect is width/height.
// Eye space looks down -Z; depth maps to [-1, 1] after the perspective divide.
// Degenerate arguments are not validated and produce Inf or NaN.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovY*DegToRad/2)
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// Ortho returns an orthographic projection matrix.
// left, right, bottom, top define the view frustum boundaries.
// near and far define the depth range.
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	fn := 1.0 / (far - near)

	return Mat4{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(right + left) * rl, -(top + bottom) * tb, -(far + near) * fn, 1,
	}
}

// LookAt returns a view matrix looking from eye to center with up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians; positive angles turn +Y toward +Z.
func RotateX(angle float64) Mat4 {
	s, c := math.Sincos(angle)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians; positive angles turn +Z toward +X.
func RotateY(angle float64) Mat4 {
	s, c := math.Sincos(angle)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians; positive angles turn +X toward +Y.
func RotateZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateXDegrees is RotateX with the angle in degrees.
func RotateXDegrees(deg float64) Mat4 {
	return RotateX(deg * DegToRad)
}

// RotateYDegrees is RotateY with the angle in degrees.
func RotateYDegrees(deg float64) Mat4 {
	return RotateY(deg * DegToRad)
}

// RotateZDegrees is RotateZ with the angle in degrees.
func RotateZDegrees(deg float64) Mat4 {
	return RotateZ(deg * DegToRad)
}

// Row returns row n, n in [0, 3].
func (m Mat4) Row(n int) Vec4 {
	checkIndex("mat4 row", n, 4)
	return Vec4{m[n*4], m[n*4+1], m[n*4+2], m[n*4+3]}
}

// Col returns column n, n in [0, 3].
func (m Mat4) Col(n int) Vec4 {
	checkIndex("mat4 col", n, 4)
	return Vec4{m[n], m[4+n], m[8+n], m[12+n]}
}

// LeftTop3 returns the upper-left 3x3 block.
func (m Mat4) LeftTop3() Mat3 {
	return Mat3FromRows(m.Row(0).Vec3(), m.Row(1).Vec3(), m.Row(2).Vec3())
}

// Transposed returns a matrix whose rows are m's columns.
func (m Mat4) Transposed() Mat4 {
	return Mat4FromRows(m.Col(0), m.Col(1), m.Col(2), m.Col(3))
}

// Mul returns m * other. Under the row-vector convention m is applied first,
// so a model-view-projection matrix is model.Mul(view).Mul(projection).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		r := m.Row(row)
		for col := 0; col < 4; col++ {
			result[row*4+col] = r.Dot(other.Col(col))
		}
	}
	return result
}

// ApplyVec4 returns the row vector v multiplied by m.
func (m Mat4) ApplyVec4(v Vec4) Vec4 {
	return Vec4{
		v.Dot(m.Col(0)),
		v.Dot(m.Col(1)),
		v.Dot(m.Col(2)),
		v.Dot(m.Col(3)),
	}
}

// ApplyPoint transforms a point (w=1) and drops the resulting w without
// a perspective divide.
func (m Mat4) ApplyPoint(p Vec3) Vec3 {
	return m.ApplyVec4(p.Vec4(1)).Vec3()
}

// ApplyDirection transforms a direction (w=0), ignoring translation.
func (m Mat4) ApplyDirection(d Vec3) Vec3 {
	return m.ApplyVec4(d.Vec4(0)).Vec3()
}

// ProjectPoint transforms a point (w=1) and applies the perspective divide.
func (m Mat4) ProjectPoint(p Vec3) Vec3 {
	return m.ApplyVec4(p.Vec4(1)).PerspectiveDivide()
}

// Determinant returns the determinant of the matrix.
func (m Mat4) Determinant() float64 {
	c := m.cofactors()
	return m[0]*c[0] + m[4]*c[1] + m[8]*c[2] + m[12]*c[3]
}

// Inverse returns the inverse of the matrix.
// ok is false when the matrix is singular.
func (m Mat4) Inverse() (inv Mat4, ok bool) {
	c := m.cofactors()
	det := m[0]*c[0] + m[4]*c[1] + m[8]*c[2] + m[12]*c[3]
	if det == 0 {
		return Mat4{}, false
	}

	invDet := 1.0 / det
	for i := range c {
		inv[i] = c[i] * invDet
	}
	return inv, true
}

// cofactors returns the adjugate of m in m's own layout.
// The expansion is symmetric under transposition, so it holds for row-major storage.
func (m Mat4) cofactors() Mat4 {
	return Mat4{
		m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10],
		-m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10],
		m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6],
		-m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6],

		-m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10],
		m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10],
		-m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6],
		m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6],

		m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9],
		-m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9],
		m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5],
		-m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5],

		-m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9],
		m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9],
		-m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5],
		m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5],
	}
}

// Float32 converts the matrix for GPU upload. The data stays row-major, so
// column-major shader uniforms need the transpose flag set.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float64) bool {
	for i := range m {
		if !approx(m[i], other[i], eps) {
			return false
		}
	}
	return true
}

// IsFinite reports whether no element is NaN or Inf.
func (m Mat4) IsFinite() bool {
	for _, v := range m {
		if !finite(v) {
			return false
		}
	}
	return true
}

func (m Mat4) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%10.4f %10.4f %10.4f %10.4f]", m[row*4], m[row*4+1], m[row*4+2], m[row*4+3])
	}
	return sb.String()
}
