package geom

import "github.com/Faultbox/radiant/pkg/math"

// Transform2 is the homogeneous 2D counterpart of Transform: a 3x3
// forward matrix plus cached inverse-transpose, with the same value
// semantics and the same NaN policy for singular input.
type Transform2 struct {
	mat  math.Mat3
	invT math.Mat3
}

// Identity2 returns the 2D identity transform.
func Identity2() Transform2 {
	return Transform2{mat: math.Identity3(), invT: math.Identity3()}
}

// FromMatrix2 builds a 2D transform from an explicit matrix.
func FromMatrix2(m math.Mat3) Transform2 {
	return Transform2{mat: m, invT: m.Inverse().Transposed()}
}

// Translate2 returns a 2D translation by delta.
func Translate2(delta math.Vec2) Transform2 {
	return Transform2{
		mat: math.Translate2D(delta.X, delta.Y),
		invT: math.Mat3{
			1, 0, -delta.X,
			0, 1, -delta.Y,
			0, 0, 1,
		},
	}
}

// Scale2 returns a per-component 2D scale.
func Scale2(factor math.Vec2) Transform2 {
	return Transform2{
		mat: math.Scale2D(factor.X, factor.Y),
		invT: math.Mat3{
			1 / factor.X, 0, 0,
			0, 1 / factor.Y, 0,
			0, 0, 1,
		},
	}
}

// ScaleUniform2 returns a uniform 2D scale by s.
func ScaleUniform2(s float32) Transform2 {
	return Scale2(math.Vec2{X: s, Y: s})
}

// Rotate2 returns a counter-clockwise rotation by angleDeg degrees.
func Rotate2(angleDeg float32) Transform2 {
	m := math.Rotate2D(math.DegToRad(angleDeg))
	return Transform2{mat: m, invT: m}
}

// Matrix returns the forward matrix.
func (t Transform2) Matrix() math.Mat3 {
	return t.mat
}

// InverseTranspose returns the cached inverse-transpose matrix.
func (t Transform2) InverseTranspose() math.Mat3 {
	return t.invT
}

// Inverse returns the multiplicative inverse.
func (t Transform2) Inverse() Transform2 {
	return Transform2{mat: t.invT.Transposed(), invT: t.mat.Transposed()}
}

// Mul composes two transforms; other is applied first.
func (t Transform2) Mul(other Transform2) Transform2 {
	return Transform2{
		mat:  t.mat.Mul(other.mat),
		invT: t.invT.Mul(other.invT),
	}
}

// ApplyToVector transforms a direction vector by the linear part of
// the matrix.
func (t Transform2) ApplyToVector(v math.Vec2) math.Vec2 {
	return t.mat.TransformDirection(v)
}

// ApplyToPoint transforms a point, dividing through by the homogeneous
// coordinate when it is not 1.
func (t Transform2) ApplyToPoint(p math.Vec2) math.Vec2 {
	return t.mat.TransformPoint(p)
}

// ApplyToNormal transforms an edge normal by the linear part of the
// inverse-transpose.
func (t Transform2) ApplyToNormal(n math.Vec2) math.Vec2 {
	return t.invT.TransformDirection(n)
}

// Invertible reports whether the forward matrix has a finite non-zero
// determinant.
func (t Transform2) Invertible() bool {
	det := t.mat.Determinant()
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}
