package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/radiant/pkg/math"
)

func writeChain(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write chain file: %v", err)
	}
	return path
}

func TestLoadAndBuildChain(t *testing.T) {
	path := writeChain(t, `
transforms:
  - name: object
    steps:
      - scale_uniform: 2
      - translate: [4, 0, 0]
points:
  - [1, 1, 1]
`)

	cf, err := LoadChainFile(path)
	if err != nil {
		t.Fatalf("LoadChainFile: %v", err)
	}
	if len(cf.Transforms) != 1 || len(cf.Points) != 1 {
		t.Fatalf("unexpected file contents: %+v", cf)
	}

	tr, err := cf.Transforms[0].Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Steps apply in listed order: scale first, then translate.
	got := tr.ApplyToPoint(math.Vec3{X: 1, Y: 1, Z: 1})
	want := math.Vec3{X: 6, Y: 2, Z: 2}
	if got != want {
		t.Errorf("chain application: got %v, want %v", got, want)
	}
}

func TestBuildPerspectiveChain(t *testing.T) {
	path := writeChain(t, `
transforms:
  - name: camera
    steps:
      - look_at: {origin: [0, 0, 5], target: [0, 0, 0], up: [0, 1, 0]}
      - perspective: {fov: 90, near: 0.1, far: 10}
`)

	cf, err := LoadChainFile(path)
	if err != nil {
		t.Fatalf("LoadChainFile: %v", err)
	}

	tr, err := cf.Transforms[0].Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !tr.Invertible() {
		t.Error("camera chain should be invertible")
	}
}

func TestLoadChainFileErrors(t *testing.T) {
	cases := map[string]string{
		"missing name": `
transforms:
  - steps:
      - scale_uniform: 2
`,
		"no steps": `
transforms:
  - name: empty
`,
	}

	for label, content := range cases {
		path := writeChain(t, content)
		if _, err := LoadChainFile(path); err == nil {
			t.Errorf("%s: expected an error", label)
		}
	}
}

func TestStepErrors(t *testing.T) {
	if _, err := (Step{}).transform(); err == nil {
		t.Error("empty step should error")
	}

	two := float32(2)
	s := Step{ScaleUniform: &two, Translate: &[3]float32{1, 0, 0}}
	if _, err := s.transform(); err == nil {
		t.Error("step with two operations should error")
	}
}

func TestMatrixStepRowMajor(t *testing.T) {
	path := writeChain(t, `
transforms:
  - name: explicit
    steps:
      - matrix: [1, 0, 0, 10,
                 0, 1, 0, 20,
                 0, 0, 1, 30,
                 0, 0, 0, 1]
`)

	cf, err := LoadChainFile(path)
	if err != nil {
		t.Fatalf("LoadChainFile: %v", err)
	}

	tr, err := cf.Transforms[0].Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := tr.ApplyToPoint(math.Vec3{})
	want := math.Vec3{X: 10, Y: 20, Z: 30}
	if got != want {
		t.Errorf("row-major matrix step: got %v, want %v", got, want)
	}
}

func TestMatRowsRoundTrip(t *testing.T) {
	m := math.Translate(1, 2, 3).Mul(math.Scale(4, 5, 6))
	rows := matRows(m)

	var flat [16]float32
	for r := 0; r < 4; r++ {
		copy(flat[r*4:], rows[r][:])
	}

	if matFromRows(flat) != m {
		t.Errorf("matRows/matFromRows round trip failed: %v vs %v", matFromRows(flat), m)
	}
}
