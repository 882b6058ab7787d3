package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	got := a.Dot(b)
	want := float32(12)
	if got != want {
		t.Errorf("Vec3.Dot() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZeroPropagatesNaN(t *testing.T) {
	n := Vec3{}.Normalize()
	if !IsNaN(n.X) || !IsNaN(n.Y) || !IsNaN(n.Z) {
		t.Errorf("normalizing the zero vector should yield NaN, got %v", n)
	}
}

func TestVec4Dot(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{2, 3, 4, 5}
	got := a.Dot(b)
	want := float32(40)
	if got != want {
		t.Errorf("Vec4.Dot() = %v, want %v", got, want)
	}
}

func TestVec4FromVec3RoundTrip(t *testing.T) {
	v := Vec3{1, 2, 3}
	h := Vec4FromVec3(v, 1)
	if h.W != 1 {
		t.Errorf("Vec4FromVec3 w = %v, want 1", h.W)
	}
	if h.Vec3() != v {
		t.Errorf("Vec4.Vec3() = %v, want %v", h.Vec3(), v)
	}
}
