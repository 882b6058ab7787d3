package geom

import "github.com/Faultbox/radiant/pkg/math"

// Batched application helpers. Each maps the scalar operation
// elementwise over a slice, so the batched form is definitionally
// equivalent to applying the transform per element; callers may shard
// the input across goroutines freely.

// ApplyToPoints applies the transform to every point in ps.
func (t Transform) ApplyToPoints(ps []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(ps))
	for i, p := range ps {
		out[i] = t.ApplyToPoint(p)
	}
	return out
}

// ApplyToVectors applies the transform to every vector in vs.
func (t Transform) ApplyToVectors(vs []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(vs))
	for i, v := range vs {
		out[i] = t.ApplyToVector(v)
	}
	return out
}

// ApplyToNormals applies the transform to every normal in ns.
func (t Transform) ApplyToNormals(ns []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(ns))
	for i, n := range ns {
		out[i] = t.ApplyToNormal(n)
	}
	return out
}

// ApplyToPoints applies the transform to every point in ps.
func (t Projective) ApplyToPoints(ps []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(ps))
	for i, p := range ps {
		out[i] = t.ApplyToPoint(p)
	}
	return out
}

// ApplyToVectors applies the transform to every vector in vs.
func (t Projective) ApplyToVectors(vs []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(vs))
	for i, v := range vs {
		out[i] = t.ApplyToVector(v)
	}
	return out
}

// ApplyToNormals applies the transform to every normal in ns.
func (t Projective) ApplyToNormals(ns []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(ns))
	for i, n := range ns {
		out[i] = t.ApplyToNormal(n)
	}
	return out
}
