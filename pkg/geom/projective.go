package geom

import "github.com/Faultbox/radiant/pkg/math"

// Projective is the general homogeneous 3D transform: unlike Transform
// its bottom row is not pinned to [0 0 0 1], so it can express true
// projective maps such as perspective projection. It is composed and
// applied exactly like the affine variant and subsumes it.
type Projective struct {
	mat  math.Mat4
	invT math.Mat4
}

// IdentityProjective returns the identity projective transform.
func IdentityProjective() Projective {
	return Projective{mat: math.Identity(), invT: math.Identity()}
}

// ProjectiveFromMatrix builds a projective transform from an explicit
// matrix. NaN inverse-transpose for singular input.
func ProjectiveFromMatrix(m math.Mat4) Projective {
	return Projective{mat: m, invT: m.Inverse().Transposed()}
}

// Perspective returns a projective transform mapping camera space to
// clip space: points on the near plane project to depth 0, points on
// the far plane to depth 1 (non-linearly, through the perspective
// divide), and x, y are scaled so the visibility cone given by the
// symmetric field of view fovDeg maps onto [-1, 1]^2 at z = 1.
func Perspective(fovDeg, near, far float32) Projective {
	recip := 1 / (far - near)
	cot := 1 / math.Tan(math.DegToRad(fovDeg)/2)

	return ProjectiveFromMatrix(math.Mat4{
		cot, 0, 0, 0,
		0, cot, 0, 0,
		0, 0, far * recip, 1,
		0, 0, -near * far * recip, 0,
	})
}

// Matrix returns the forward matrix.
func (t Projective) Matrix() math.Mat4 {
	return t.mat
}

// InverseTranspose returns the cached inverse-transpose matrix.
func (t Projective) InverseTranspose() math.Mat4 {
	return t.invT
}

// Inverse returns the multiplicative inverse.
func (t Projective) Inverse() Projective {
	return Projective{mat: t.invT.Transposed(), invT: t.mat.Transposed()}
}

// Mul composes two transforms; other is applied first.
func (t Projective) Mul(other Projective) Projective {
	return Projective{
		mat:  t.mat.Mul(other.mat),
		invT: t.invT.Mul(other.invT),
	}
}

// ApplyToVector transforms a direction vector by the linear part of
// the matrix.
func (t Projective) ApplyToVector(v math.Vec3) math.Vec3 {
	return t.mat.TransformDirection(v)
}

// ApplyToPoint transforms a point with a full homogeneous multiply and
// divides through by the resulting homogeneous coordinate when it is
// not 1.
func (t Projective) ApplyToPoint(p math.Vec3) math.Vec3 {
	return t.mat.TransformPoint(p)
}

// ApplyToNormal transforms a surface normal by the linear part of the
// inverse-transpose.
func (t Projective) ApplyToNormal(n math.Vec3) math.Vec3 {
	return t.invT.TransformDirection(n)
}

// ApplyToRay transforms a ray: the origin as a point, the direction as
// a vector.
func (t Projective) ApplyToRay(r Ray) Ray {
	return Ray{
		Origin: t.ApplyToPoint(r.Origin),
		Dir:    t.ApplyToVector(r.Dir),
	}
}

// Invertible reports whether the forward matrix has a finite non-zero
// determinant.
func (t Projective) Invertible() bool {
	det := t.mat.Determinant()
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}
