package math

import "fmt"

// Mat3 is a 3x3 matrix in row-major order: element (r, c) is m[r*3+c].
// Layout: [m0 m1 m2]
//
//	[m3 m4 m5]
//	[m6 m7 m8]
type Mat3 [9]float64

// Mat3Identity returns an identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromRows builds a matrix from three row vectors.
func Mat3FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// Mat3FromSlice builds a matrix from nine row-major scalars.
func Mat3FromSlice(values []float64) (Mat3, error) {
	var m Mat3
	if len(values) != len(m) {
		return m, fmt.Errorf("mat3 needs %d values, got %d: %w", len(m), len(values), ErrArgumentCount)
	}
	copy(m[:], values)
	return m, nil
}

// Row returns row n, n in [0, 2].
func (m Mat3) Row(n int) Vec3 {
	checkIndex("mat3 row", n, 3)
	return Vec3{m[n*3], m[n*3+1], m[n*3+2]}
}

// Col returns column n, n in [0, 2].
func (m Mat3) Col(n int) Vec3 {
	checkIndex("mat3 col", n, 3)
	return Vec3{m[n], m[3+n], m[6+n]}
}

// Transposed returns a matrix whose rows are m's columns.
func (m Mat3) Transposed() Mat3 {
	return Mat3FromRows(m.Col(0), m.Col(1), m.Col(2))
}

// Apply returns the row vector v multiplied by m.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{v.Dot(m.Col(0)), v.Dot(m.Col(1)), v.Dot(m.Col(2))}
}

// Mat4 embeds m in the upper-left block of an identity Mat4.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3) ApproxEqual(other Mat3, eps float64) bool {
	for i := range m {
		if !approx(m[i], other[i], eps) {
			return false
		}
	}
	return true
}

func checkIndex(what string, n, size int) {
	if n < 0 || n >= size {
		panic(fmt.Errorf("%s %d not in [0, %d]: %w", what, n, size-1, ErrIndexOutOfRange))
	}
}
