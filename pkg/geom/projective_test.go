package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/radiant/pkg/math"
)

func TestPerspective(t *testing.T) {
	p := Perspective(90, 0.1, 10)

	assertVec3Close(t, math.Vec3{X: 1, Y: -1, Z: 0.959596}, p.ApplyToPoint(math.Vec3{X: 2, Y: -2, Z: 2}), 1e-5)

	// Near plane projects to depth 0, far plane to depth 1.
	assert.InDelta(t, 0, float64(p.ApplyToPoint(math.Vec3{Z: 0.1}).Z), tol)
	assert.InDelta(t, 1, float64(p.ApplyToPoint(math.Vec3{Z: 10}).Z), 1e-5)

	// With a 90 degree field of view the cone edge x = z maps to x = 1.
	assert.InDelta(t, 1, float64(p.ApplyToPoint(math.Vec3{X: 5, Z: 5}).X), 1e-5)

	// Depth is non-linear between the planes.
	mid := p.ApplyToPoint(math.Vec3{Z: 5.05}).Z
	assert.Greater(t, mid, float32(0.5))
}

func TestPerspectiveInverseLaw(t *testing.T) {
	p := Perspective(60, 0.5, 100)
	id := p.Mul(p.Inverse())

	for i := 0; i < 16; i++ {
		assert.InDelta(t, math.Identity()[i], id.Matrix()[i], 1e-5)
	}

	// Round trip through clip space and back.
	pt := math.Vec3{X: 0.3, Y: -0.2, Z: 4}
	assertVec3Close(t, pt, p.Inverse().ApplyToPoint(p.ApplyToPoint(pt)), 1e-4)
}

func TestProjectiveComposition(t *testing.T) {
	// A camera chain: world -> camera -> clip.
	cam := LookAt(math.Vec3{Z: -5}, math.Vec3{}, math.Vec3{Y: 1})
	proj := Perspective(90, 0.1, 10)
	worldToClip := proj.Mul(cam.Inverse().Projective())

	p := math.Vec3{X: 2, Y: -2, Z: -3}
	step := proj.ApplyToPoint(cam.Inverse().ApplyToPoint(p))
	assertVec3Close(t, step, worldToClip.ApplyToPoint(p), 1e-5)
}

func TestProjectiveWideningPreservesSemantics(t *testing.T) {
	tr := Translate(math.Vec3{Y: 1, Z: 2}).Mul(Scale(math.Vec3{X: 1, Y: 2, Z: 3}))
	pr := tr.Projective()

	assert.Equal(t, tr.Matrix(), pr.Matrix())
	assert.Equal(t, tr.InverseTranspose(), pr.InverseTranspose())

	p := math.Vec3{X: 3, Y: 4, Z: 5}
	assert.Equal(t, tr.ApplyToPoint(p), pr.ApplyToPoint(p))
	assert.Equal(t, tr.ApplyToVector(p), pr.ApplyToVector(p))
	assert.Equal(t, tr.ApplyToNormal(p), pr.ApplyToNormal(p))

	r := Ray{Origin: p, Dir: math.Vec3{Z: 1}}
	assert.Equal(t, tr.ApplyToRay(r), pr.ApplyToRay(r))
}

func TestProjectiveSingular(t *testing.T) {
	pr := ProjectiveFromMatrix(math.Mat4{})
	assert.False(t, pr.Invertible())
	assert.True(t, math.IsNaN(pr.InverseTranspose()[0]))
	assert.True(t, IdentityProjective().Invertible())
}

func TestProjectiveBatch(t *testing.T) {
	p := Perspective(90, 0.1, 10)
	pts := []math.Vec3{{X: 2, Y: -2, Z: 2}, {Z: 0.1}, {Z: 10}}

	got := p.ApplyToPoints(pts)
	for i, pt := range pts {
		assert.Equal(t, p.ApplyToPoint(pt), got[i])
	}
}
