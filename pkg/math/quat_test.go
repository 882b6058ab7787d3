package math

import "testing"

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if Abs(length-1.0) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, Pi/2)

	result0 := q1.Slerp(q2, 0)
	if Abs(result0.W-q1.W) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1")
	}

	result1 := q1.Slerp(q2, 1)
	if Abs(result1.W-q2.W) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2")
	}

	// Halfway through a 90 degree rotation is 45 degrees.
	result5 := q1.Slerp(q2, 0.5)
	expectedW := Cos(Pi / 8)
	if Abs(result5.W-expectedW) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatToMat4MatchesRotateAxis(t *testing.T) {
	axis := Vec3{1, -1, 2}.Normalize()
	angle := DegToRad(55)

	q := QuatFromAxisAngle(axis, angle)
	matsClose(t, q.ToMat4(), RotateAxis(axis, angle), 1e-5)
}

func TestQuatMulComposesRotations(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, Pi/4)
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, Pi/4)
	combined := a.Mul(b)

	matsClose(t, combined.ToMat4(), RotateY(Pi/2), 1e-5)
}
