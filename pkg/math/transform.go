package math

// Transform is a position and rotation that composes into a Mat4.
type Transform struct {
	Pos Vec3
	Rot Quat
}

// TransformIdentity returns a transform at the origin with no rotation.
func TransformIdentity() Transform {
	return Transform{Pos: Vec3Zero(), Rot: QuatIdentity()}
}

// Mat4 returns the rotation in the upper-left block and the position in row 3.
// Rot is expected to be a unit quaternion.
func (t Transform) Mat4() Mat4 {
	r := t.Rot.Mat3()
	return Mat4FromRows(
		r.Row(0).Vec4(0),
		r.Row(1).Vec4(0),
		r.Row(2).Vec4(0),
		t.Pos.Vec4(1),
	)
}
