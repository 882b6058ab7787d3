// Package geom implements orthonormal shading frames and homogeneous
// affine/projective transforms for rendering geometry.
//
// Every type in this package is an immutable value: operations return
// new values and never mutate their receivers, so values are safe to
// share across goroutines without synchronization. Degenerate numeric
// input (zero-length normals, singular matrices, an up vector parallel
// to the view direction) is never reported as an error; it propagates
// NaN/Inf through the standard formulas instead.
package geom

import "github.com/Faultbox/radiant/pkg/math"

// Frame is an orthonormal right-handed basis used to convert directions
// between a local shading space and world space. S is the tangent, T
// the bitangent, N the normal, with N = S x T. The zero value is the
// all-zero frame.
type Frame struct {
	S, T, N math.Vec3
}

// NewFrame builds a frame directly from three basis vectors. The caller
// is trusted to supply an orthonormal right-handed set; the vectors are
// stored as given, with no checks or renormalization.
func NewFrame(s, t, n math.Vec3) Frame {
	return Frame{S: s, T: t, N: n}
}

// FrameFromNormal derives the tangent and bitangent from a unit normal
// using the branchless orthonormal-basis construction of Duff et al.,
// which stays numerically stable for normals near every coordinate
// axis, including n close to -z.
func FrameFromNormal(n math.Vec3) Frame {
	sign := math.Copysign(1, n.Z)
	a := -1 / (sign + n.Z)
	b := n.X * n.Y * a
	return Frame{
		S: math.Vec3{X: 1 + sign*n.X*n.X*a, Y: sign * b, Z: -sign * n.X},
		T: math.Vec3{X: b, Y: sign + n.Y*n.Y*a, Z: -n.Y},
		N: n,
	}
}

// ToLocal expresses a world-space vector in frame coordinates.
func (f Frame) ToLocal(v math.Vec3) math.Vec3 {
	return math.Vec3{X: v.Dot(f.S), Y: v.Dot(f.T), Z: v.Dot(f.N)}
}

// ToWorld expresses a local-frame vector in world space. For any
// orthonormal frame this is the exact inverse of ToLocal.
func (f Frame) ToWorld(v math.Vec3) math.Vec3 {
	return f.S.Scale(v.X).Add(f.T.Scale(v.Y)).Add(f.N.Scale(v.Z))
}

// The helpers below evaluate spherical coordinates of a unit direction
// expressed in local frame coordinates: theta is the elevation measured
// from N, phi the azimuth around N measured from S. They exist so call
// sites never re-derive trigonometry by hand.

// CosTheta returns the cosine of the elevation angle.
func CosTheta(v math.Vec3) float32 {
	return v.Z
}

// CosTheta2 returns the squared cosine of the elevation angle.
func CosTheta2(v math.Vec3) float32 {
	return v.Z * v.Z
}

// SinTheta2 returns the squared sine of the elevation angle.
func SinTheta2(v math.Vec3) float32 {
	return v.X*v.X + v.Y*v.Y
}

// SinTheta returns the sine of the elevation angle.
func SinTheta(v math.Vec3) float32 {
	return math.Sqrt(SinTheta2(v))
}

// CosPhi returns the cosine of the azimuth angle. NaN for directions
// along the frame normal, where the azimuth is undefined.
func CosPhi(v math.Vec3) float32 {
	return v.X / SinTheta(v)
}

// SinPhi returns the sine of the azimuth angle. NaN for directions
// along the frame normal.
func SinPhi(v math.Vec3) float32 {
	return v.Y / SinTheta(v)
}

// CosPhi2 returns the squared cosine of the azimuth angle.
func CosPhi2(v math.Vec3) float32 {
	return v.X * v.X / SinTheta2(v)
}

// SinPhi2 returns the squared sine of the azimuth angle.
func SinPhi2(v math.Vec3) float32 {
	return v.Y * v.Y / SinTheta2(v)
}
