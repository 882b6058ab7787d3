package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/radiant/pkg/geom"
	"github.com/Faultbox/radiant/pkg/math"
)

// ChainFile is the YAML description consumed by xformtool: a set of
// named transform chains plus the entities to push through them.
type ChainFile struct {
	Transforms []ChainSpec  `yaml:"transforms"`
	Points     [][3]float32 `yaml:"points"`
	Vectors    [][3]float32 `yaml:"vectors"`
	Normals    [][3]float32 `yaml:"normals"`
	Rays       []RaySpec    `yaml:"rays"`
}

// ChainSpec is one named chain. Steps are listed in application order:
// the first step acts on the entity first.
type ChainSpec struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is a single chain step. Exactly one field must be set.
type Step struct {
	Translate    *[3]float32      `yaml:"translate"`
	Scale        *[3]float32      `yaml:"scale"`
	ScaleUniform *float32         `yaml:"scale_uniform"`
	Rotate       *RotateSpec      `yaml:"rotate"`
	LookAt       *LookAtSpec      `yaml:"look_at"`
	Orthographic *PlanesSpec      `yaml:"orthographic"`
	Perspective  *PerspectiveSpec `yaml:"perspective"`
	Matrix       *[16]float32     `yaml:"matrix"` // row-major
}

// RotateSpec rotates about an axis by an angle in degrees.
type RotateSpec struct {
	Axis  [3]float32 `yaml:"axis"`
	Angle float32    `yaml:"angle"`
}

// LookAtSpec builds a camera-to-world transform.
type LookAtSpec struct {
	Origin [3]float32 `yaml:"origin"`
	Target [3]float32 `yaml:"target"`
	Up     [3]float32 `yaml:"up"`
}

// PlanesSpec holds near/far depth planes.
type PlanesSpec struct {
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// PerspectiveSpec holds a symmetric field of view plus depth planes.
type PerspectiveSpec struct {
	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// RaySpec is a ray origin/direction pair.
type RaySpec struct {
	Origin [3]float32 `yaml:"origin"`
	Dir    [3]float32 `yaml:"dir"`
}

// LoadChainFile reads and parses a chain description.
func LoadChainFile(path string) (*ChainFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf ChainFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, spec := range cf.Transforms {
		if spec.Name == "" {
			return nil, fmt.Errorf("parsing %s: transform with no name", path)
		}
		if len(spec.Steps) == 0 {
			return nil, fmt.Errorf("parsing %s: transform %q has no steps", path, spec.Name)
		}
	}

	return &cf, nil
}

// Build composes the chain. Steps listed first apply first, so the
// composed transform is step_n * ... * step_1.
func (s ChainSpec) Build() (geom.Projective, error) {
	acc := geom.IdentityProjective()
	for i, step := range s.Steps {
		tr, err := step.transform()
		if err != nil {
			return geom.Projective{}, fmt.Errorf("transform %q, step %d: %w", s.Name, i+1, err)
		}
		acc = tr.Mul(acc)
	}
	return acc, nil
}

func (s Step) transform() (geom.Projective, error) {
	var (
		out geom.Projective
		n   int
	)

	if s.Translate != nil {
		out = geom.Translate(vec3(*s.Translate)).Projective()
		n++
	}
	if s.Scale != nil {
		out = geom.Scale(vec3(*s.Scale)).Projective()
		n++
	}
	if s.ScaleUniform != nil {
		out = geom.ScaleUniform(*s.ScaleUniform).Projective()
		n++
	}
	if s.Rotate != nil {
		out = geom.Rotate(vec3(s.Rotate.Axis), s.Rotate.Angle).Projective()
		n++
	}
	if s.LookAt != nil {
		out = geom.LookAt(vec3(s.LookAt.Origin), vec3(s.LookAt.Target), vec3(s.LookAt.Up)).Projective()
		n++
	}
	if s.Orthographic != nil {
		out = geom.Orthographic(s.Orthographic.Near, s.Orthographic.Far).Projective()
		n++
	}
	if s.Perspective != nil {
		out = geom.Perspective(s.Perspective.Fov, s.Perspective.Near, s.Perspective.Far)
		n++
	}
	if s.Matrix != nil {
		out = geom.ProjectiveFromMatrix(matFromRows(*s.Matrix))
		n++
	}

	switch n {
	case 0:
		return geom.Projective{}, fmt.Errorf("empty step")
	case 1:
		return out, nil
	default:
		return geom.Projective{}, fmt.Errorf("step sets %d operations, want exactly 1", n)
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// matFromRows converts a row-major flat list (the readable YAML form)
// into the column-major storage order.
func matFromRows(rows [16]float32) math.Mat4 {
	var m math.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[c*4+r] = rows[r*4+c]
		}
	}
	return m
}

// matRows is the inverse of matFromRows, for printing and export.
func matRows(m math.Mat4) [4][4]float32 {
	var rows [4][4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			rows[r][c] = m.At(r, c)
		}
	}
	return rows
}
