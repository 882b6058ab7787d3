package geom

import "github.com/Faultbox/radiant/pkg/math"

// Ray is a parametric ray with an origin and a direction. Dir is not
// required to be unit length.
type Ray struct {
	Origin math.Vec3
	Dir    math.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
