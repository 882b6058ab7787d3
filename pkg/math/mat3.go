package math

// Mat3 is a 3x3 matrix in column-major order, used for homogeneous 2D
// work the same way Mat4 is used for 3D.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// Identity3 returns an identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Mat3) At(row, col int) float32 {
	return m[col*3+row]
}

// Translate2D returns a homogeneous 2D translation matrix.
func Translate2D(x, y float32) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

// Scale2D returns a homogeneous 2D scale matrix.
func Scale2D(x, y float32) Mat3 {
	return Mat3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Rotate2D returns a homogeneous 2D rotation matrix.
// angle is in radians, counter-clockwise positive.
func Rotate2D(angle float32) Mat3 {
	c := Cos(angle)
	s := Sin(angle)

	return Mat3{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			result[col*3+row] =
				m[0*3+row]*other[col*3+0] +
					m[1*3+row]*other[col*3+1] +
					m[2*3+row]*other[col*3+2]
		}
	}
	return result
}

// TransformPoint transforms a 2D point (w=1), dividing through by the
// resulting homogeneous coordinate when it is not 1.
func (m Mat3) TransformPoint(p Vec2) Vec2 {
	x := m[0]*p.X + m[3]*p.Y + m[6]
	y := m[1]*p.X + m[4]*p.Y + m[7]
	w := m[2]*p.X + m[5]*p.Y + m[8]
	if w != 1 {
		return Vec2{x / w, y / w}
	}
	return Vec2{x, y}
}

// TransformDirection transforms a direction vector by the upper-left
// 2x2 part of the matrix.
func (m Mat3) TransformDirection(d Vec2) Vec2 {
	return Vec2{
		m[0]*d.X + m[3]*d.Y,
		m[1]*d.X + m[4]*d.Y,
	}
}

// Transposed returns the transpose.
func (m Mat3) Transposed() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant.
func (m Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of the matrix. A singular matrix yields
// a matrix filled with NaN, matching Mat4.Inverse.
func (m Mat3) Inverse() Mat3 {
	c00 := m[4]*m[8] - m[7]*m[5]
	c01 := m[7]*m[2] - m[1]*m[8]
	c02 := m[1]*m[5] - m[4]*m[2]

	c10 := m[6]*m[5] - m[3]*m[8]
	c11 := m[0]*m[8] - m[6]*m[2]
	c12 := m[3]*m[2] - m[0]*m[5]

	c20 := m[3]*m[7] - m[6]*m[4]
	c21 := m[6]*m[1] - m[0]*m[7]
	c22 := m[0]*m[4] - m[3]*m[1]

	det := m[0]*c00 + m[3]*c01 + m[6]*c02

	if det == 0 {
		nan := NaN()
		return Mat3{
			nan, nan, nan,
			nan, nan, nan,
			nan, nan, nan,
		}
	}

	invDet := 1.0 / det

	return Mat3{
		c00 * invDet, c01 * invDet, c02 * invDet,
		c10 * invDet, c11 * invDet, c12 * invDet,
		c20 * invDet, c21 * invDet, c22 * invDet,
	}
}
