package math

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = Mat4{
	2, 3, 5, 7,
	11, 13, 17, 19,
	23, 29, 31, 37,
	41, 43, 47, 53,
}

func TestIdentity(t *testing.T) {
	m := Mat4Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 || m[11] != 0 || m[14] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	id := Mat4Identity()
	assert.Equal(t, sample, sample.Mul(id), "M * I")
	assert.Equal(t, sample, id.Mul(sample), "I * M")
}

func TestMulRowByColumn(t *testing.T) {
	got := sample.Mul(Scale(1, 2, 3))
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := sample.Row(row).Dot(Scale(1, 2, 3).Col(col))
			assert.Equal(t, want, got[row*4+col], "element (%d, %d)", row, col)
		}
	}
	// scale applied after the sample: columns are scaled
	assert.Equal(t, Vec4{6, 26, 58, 86}, got.Col(1))
}

func TestTranslateComposition(t *testing.T) {
	c := Translate(1, 2, 3).Mul(Translate(2, 3, 4))
	if c != Translate(3, 5, 7) {
		t.Errorf("translate composition = %v, want %v", c, Translate(3, 5, 7))
	}
}

func TestTranslateApply(t *testing.T) {
	got := Translate(1, 2, 3).ApplyPoint(Vec3Zero())
	assert.Equal(t, Vec3{1, 2, 3}, got)

	got = Translate(10, 20, 30).ApplyPoint(Vec3{1, 2, 3})
	assert.Equal(t, Vec3{11, 22, 33}, got)

	// directions ignore translation
	assert.Equal(t, Vec3{1, 2, 3}, Translate(10, 20, 30).ApplyDirection(Vec3{1, 2, 3}))
}

func TestRowRoundTrip(t *testing.T) {
	d := Translate(4, 5, 6)
	e := Mat4FromRows(d.Row(0), d.Row(1), d.Row(2), d.Row(3))
	assert.Equal(t, d, e)
	assert.Equal(t, Vec4{4, 5, 6, 1}, d.Row(3))
	assert.Equal(t, Vec4{0, 0, 0, 1}, d.Col(3))
	assert.Equal(t, Vec4{1, 0, 0, 4}, d.Col(0))
}

func TestMat4FromSlice(t *testing.T) {
	m, err := Mat4FromSlice(sample[:])
	require.NoError(t, err)
	assert.Equal(t, sample, m)

	_, err = Mat4FromSlice(make([]float64, 9))
	assert.ErrorIs(t, err, ErrArgumentCount)

	rows := []Vec4{sample.Row(0), sample.Row(1), sample.Row(2), sample.Row(3)}
	m, err = Mat4FromRowSlice(rows)
	require.NoError(t, err)
	assert.Equal(t, sample, m)

	_, err = Mat4FromRowSlice(rows[:3])
	assert.ErrorIs(t, err, ErrArgumentCount)
}

func TestMat3FromSlice(t *testing.T) {
	m, err := Mat3FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, Vec3{4, 5, 6}, m.Row(1))
	assert.Equal(t, Vec3{2, 5, 8}, m.Col(1))
	assert.Equal(t, Mat3FromRows(Vec3{1, 2, 3}, Vec3{4, 5, 6}, Vec3{7, 8, 9}), m)
	assert.Equal(t, Mat3{1, 4, 7, 2, 5, 8, 3, 6, 9}, m.Transposed())

	_, err = Mat3FromSlice([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrArgumentCount)
}

func TestRowColOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"mat4 row 4", func() { sample.Row(4) }},
		{"mat4 col -1", func() { sample.Col(-1) }},
		{"mat4 col 4", func() { sample.Col(4) }},
		{"mat3 row 3", func() { Mat3Identity().Row(3) }},
		{"mat3 col 3", func() { Mat3Identity().Col(3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recoverError(tt.fn)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("expected ErrIndexOutOfRange panic, got %v", err)
			}
		})
	}
}

func TestLeftTop3(t *testing.T) {
	want := Mat3{
		2, 3, 5,
		11, 13, 17,
		23, 29, 31,
	}
	assert.Equal(t, want, sample.LeftTop3())
	assert.Equal(t, Mat4{
		2, 3, 5, 0,
		11, 13, 17, 0,
		23, 29, 31, 0,
		0, 0, 0, 1,
	}, sample.LeftTop3().Mat4())
}

func TestTransposed(t *testing.T) {
	tr := sample.Transposed()
	assert.Equal(t, sample.Col(2), tr.Row(2))
	assert.Equal(t, 11.0, tr[1])
	assert.Equal(t, sample, tr.Transposed())
}

func TestApplyVec4(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	got := sample.ApplyVec4(v)
	for j := 0; j < 4; j++ {
		assert.Equal(t, v.Dot(sample.Col(j)), [4]float64{got.X, got.Y, got.Z, got.W}[j])
	}
	// a point applied through ApplyPoint drops w without dividing
	assert.Equal(t, sample.ApplyVec4(Vec4{1, 2, 3, 1}).Vec3(), sample.ApplyPoint(Vec3{1, 2, 3}))
}

func TestAxisRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"z 90", RotateZ(math.Pi / 2), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"x 90", RotateX(math.Pi / 2), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y 90", RotateY(math.Pi / 2), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"y 90 on x", RotateY(math.Pi / 2), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"x degrees", RotateXDegrees(90), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y degrees", RotateYDegrees(90), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"z degrees", RotateZDegrees(180), Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.ApplyPoint(tt.in)
			if !got.ApproxEqual(tt.want, eps) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulOrderAppliesLeftFirst(t *testing.T) {
	// rotate then translate
	m := RotateZ(math.Pi / 2).Mul(Translate(10, 0, 0))
	got := m.ApplyPoint(Vec3{1, 0, 0})
	assert.True(t, got.ApproxEqual(Vec3{10, 1, 0}, eps), "got %v", got)

	// translate then rotate
	m = Translate(10, 0, 0).Mul(RotateZ(math.Pi / 2))
	got = m.ApplyPoint(Vec3{1, 0, 0})
	assert.True(t, got.ApproxEqual(Vec3{0, 11, 0}, eps), "got %v", got)
}

func TestPerspective(t *testing.T) {
	m := Perspective(60, 16.0/9.0, 0.1, 100.0)

	require.True(t, m.IsFinite())
	assert.Equal(t, -1.0, m[11])
	assert.Equal(t, 0.0, m[15])
	assert.InDelta(t, 1/math.Tan(math.Pi/6), m[5], eps)
	assert.InDelta(t, m[5]*9/16, m[0], eps)

	near := m.ProjectPoint(Vec3{0, 0, -0.1})
	far := m.ProjectPoint(Vec3{0, 0, -100})
	assert.InDelta(t, -1.0, near.Z, 1e-9)
	assert.InDelta(t, 1.0, far.Z, 1e-9)

	// w' is -z of the eye-space point
	assert.InDelta(t, 5.0, m.ApplyVec4(Vec4{0, 0, -5, 1}).W, eps)
}

func TestPerspectiveDegenerate(t *testing.T) {
	assert.False(t, Perspective(60, 1, 1, 1).IsFinite())
	assert.False(t, Perspective(60, 0, 0.1, 100).IsFinite())
	assert.False(t, Perspective(0, 1, 0.1, 100).IsFinite())
}

func TestOrtho(t *testing.T) {
	m := Ortho(-2, 2, -1, 1, 0.1, 10)
	assert.True(t, m.ProjectPoint(Vec3{2, 1, -10}).ApproxEqual(Vec3{1, 1, 1}, eps))
	assert.True(t, m.ProjectPoint(Vec3{-2, -1, -0.1}).ApproxEqual(Vec3{-1, -1, -1}, eps))
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	assert.Equal(t, 1.0, m[15])
	assert.True(t, m.ApplyPoint(eye).ApproxEqual(Vec3{}, eps))
	assert.True(t, m.ApplyPoint(Vec3{}).ApproxEqual(Vec3{0, 0, -5}, eps))
	assert.True(t, m.ApplyPoint(Vec3{1, 0, 0}).ApproxEqual(Vec3{1, 0, -5}, eps))
}

func TestInverse(t *testing.T) {
	m := RotateYDegrees(30).Mul(Scale(2, 3, 4)).Mul(Translate(1, -2, 3))
	inv, ok := m.Inverse()
	require.True(t, ok)
	assert.True(t, m.Mul(inv).ApproxEqual(Mat4Identity(), 1e-9))
	assert.True(t, inv.Mul(m).ApproxEqual(Mat4Identity(), 1e-9))
	assert.InDelta(t, 24.0, m.Determinant(), 1e-9)

	_, ok = Scale(1, 0, 1).Inverse()
	assert.False(t, ok)
}

func TestFloat32(t *testing.T) {
	f := Translate(1, 2, 3).Float32()
	assert.Equal(t, float32(1), f[12])
	assert.Equal(t, float32(3), f[14])
	assert.Equal(t, float32(1), f[15])
}

func TestTransform(t *testing.T) {
	assert.Equal(t, Mat4Identity(), TransformIdentity().Mat4())

	tr := Transform{
		Pos: Vec3{1, 2, 3},
		Rot: QuatFromAxisAngle(Vec3{0, 0, 1}, math.Pi/2),
	}
	m := tr.Mat4()
	assert.Equal(t, Vec4{1, 2, 3, 1}, m.Row(3))
	assert.Equal(t, 0.0, m[3])
	assert.Equal(t, 0.0, m[7])
	assert.Equal(t, 0.0, m[11])
	assert.True(t, m.ApproxEqual(RotateZ(math.Pi/2).Mul(Translate(1, 2, 3)), eps))

	got := m.ApplyPoint(Vec3{1, 0, 0})
	assert.True(t, got.ApproxEqual(Vec3{1, 3, 3}, eps), "got %v", got)
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
