package geom

import "github.com/Faultbox/radiant/pkg/math"

// Transform is a homogeneous affine 3D transform: a 4x4 forward matrix
// whose bottom row is [0 0 0 1], paired with its eagerly computed
// inverse-transpose (used for transforming normals). Values are
// immutable; every operation returns a new Transform.
//
// Constructing a Transform from a singular matrix keeps the forward
// matrix exactly as given and fills the inverse-transpose with NaN.
type Transform struct {
	mat  math.Mat4
	invT math.Mat4
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{mat: math.Identity(), invT: math.Identity()}
}

// FromMatrix builds a transform from an explicit matrix, computing the
// inverse-transpose eagerly. NaN inverse-transpose for singular input.
func FromMatrix(m math.Mat4) Transform {
	return Transform{mat: m, invT: m.Inverse().Transposed()}
}

// FromScalar builds a transform from a single scalar broadcast to a
// scaled identity matrix (every diagonal element, including the
// homogeneous one, equals s).
func FromScalar(s float32) Transform {
	return FromMatrix(math.Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, s,
	})
}

// FromRow builds a transform from a single row vector replicated
// across all four matrix rows. The result is rank one, so the
// inverse-transpose is NaN throughout.
func FromRow(v math.Vec4) Transform {
	return FromMatrix(math.Mat4{
		v.X, v.X, v.X, v.X,
		v.Y, v.Y, v.Y, v.Y,
		v.Z, v.Z, v.Z, v.Z,
		v.W, v.W, v.W, v.W,
	})
}

// Translate returns a translation by delta.
func Translate(delta math.Vec3) Transform {
	return Transform{
		mat: math.Translate(delta.X, delta.Y, delta.Z),
		invT: math.Mat4{
			1, 0, 0, -delta.X,
			0, 1, 0, -delta.Y,
			0, 0, 1, -delta.Z,
			0, 0, 0, 1,
		},
	}
}

// Scale returns a per-component scale.
func Scale(factor math.Vec3) Transform {
	return Transform{
		mat: math.Scale(factor.X, factor.Y, factor.Z),
		invT: math.Mat4{
			1 / factor.X, 0, 0, 0,
			0, 1 / factor.Y, 0, 0,
			0, 0, 1 / factor.Z, 0,
			0, 0, 0, 1,
		},
	}
}

// ScaleUniform returns a uniform scale by s.
func ScaleUniform(s float32) Transform {
	return Scale(math.Vec3{X: s, Y: s, Z: s})
}

// Rotate returns a right-handed rotation of angleDeg degrees about the
// given axis, which is normalized internally. A zero axis yields a NaN
// result. Rotation matrices are orthogonal, so the inverse-transpose
// equals the forward matrix.
func Rotate(axis math.Vec3, angleDeg float32) Transform {
	m := math.RotateAxis(axis.Normalize(), math.DegToRad(angleDeg))
	return Transform{mat: m, invT: m}
}

// LookAt builds a camera-to-world transform whose forward axis points
// from origin toward target. up disambiguates the camera roll; passing
// an up vector parallel to the view direction is a precondition
// violation that yields a degenerate result.
func LookAt(origin, target, up math.Vec3) Transform {
	fwd := target.Sub(origin).Normalize()
	right := up.Cross(fwd).Normalize()
	newUp := fwd.Cross(right)

	return FromMatrix(math.Mat4{
		right.X, right.Y, right.Z, 0,
		newUp.X, newUp.Y, newUp.Z, 0,
		fwd.X, fwd.Y, fwd.Z, 0,
		origin.X, origin.Y, origin.Z, 1,
	})
}

// Orthographic maps camera-space z in [near, far] linearly to [0, 1],
// leaving x and y unchanged.
func Orthographic(near, far float32) Transform {
	return Scale(math.Vec3{X: 1, Y: 1, Z: 1 / (far - near)}).
		Mul(Translate(math.Vec3{Z: -near}))
}

// FromFrame returns the linear map whose action on a vector equals
// frame.ToLocal: the matrix rows are the frame's S, T, N axes.
func FromFrame(f Frame) Transform {
	return FromMatrix(math.Mat4{
		f.S.X, f.T.X, f.N.X, 0,
		f.S.Y, f.T.Y, f.N.Y, 0,
		f.S.Z, f.T.Z, f.N.Z, 0,
		0, 0, 0, 1,
	})
}

// Matrix returns the forward matrix.
func (t Transform) Matrix() math.Mat4 {
	return t.mat
}

// InverseTranspose returns the cached inverse-transpose matrix.
func (t Transform) InverseTranspose() math.Mat4 {
	return t.invT
}

// Inverse returns the multiplicative inverse. Both matrices are
// already on hand: the inverse of the forward matrix is the transpose
// of the cached inverse-transpose, and vice versa.
func (t Transform) Inverse() Transform {
	return Transform{mat: t.invT.Transposed(), invT: t.mat.Transposed()}
}

// Mul composes two transforms: the result applies other first, then t,
// matching matrix multiplication t.Matrix * other.Matrix.
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		mat:  t.mat.Mul(other.mat),
		invT: t.invT.Mul(other.invT),
	}
}

// ApplyToVector transforms a direction vector by the linear part of
// the matrix; translation does not apply.
func (t Transform) ApplyToVector(v math.Vec3) math.Vec3 {
	return t.mat.TransformDirection(v)
}

// ApplyToPoint transforms a point, dividing through by the homogeneous
// coordinate when it is not 1 (a no-op for affine matrices).
func (t Transform) ApplyToPoint(p math.Vec3) math.Vec3 {
	return t.mat.TransformPoint(p)
}

// ApplyToNormal transforms a surface normal by the linear part of the
// inverse-transpose, which keeps normals perpendicular to transformed
// surfaces under non-uniform scaling.
func (t Transform) ApplyToNormal(n math.Vec3) math.Vec3 {
	return t.invT.TransformDirection(n)
}

// ApplyToRay transforms a ray: the origin as a point, the direction as
// a vector. The direction is not renormalized.
func (t Transform) ApplyToRay(r Ray) Ray {
	return Ray{
		Origin: t.ApplyToPoint(r.Origin),
		Dir:    t.ApplyToVector(r.Dir),
	}
}

// Invertible reports whether the forward matrix has a finite non-zero
// determinant. This is an auxiliary check; the default construction
// path never fails on singular input.
func (t Transform) Invertible() bool {
	det := t.mat.Determinant()
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// Projective widens an affine transform to the projective variant.
func (t Transform) Projective() Projective {
	return Projective{mat: t.mat, invT: t.invT}
}
