package linalg

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func vecApprox(a, b Vec4, eps float64) bool {
	for i := 0; i < 4; i++ {
		if !approx(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func TestVec4Arithmetic(t *testing.T) {
	a := NewVec4(1, 2, 3, 1)
	b := NewVec4(4, 5, 6, 0)

	if got, want := a.Add(b), (Vec4{5, 7, 9, 1}); got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec4{-3, -3, -3, 1}); got != want {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
	if got, want := a.Scale(2), (Vec4{2, 4, 6, 2}); got != want {
		t.Errorf("Scale() = %v, want %v", got, want)
	}
	// operands are untouched
	if a != (Vec4{1, 2, 3, 1}) || b != (Vec4{4, 5, 6, 0}) {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestFromPoints(t *testing.T) {
	src := NewVec4(1, 1, 1, 1)
	dst := NewVec4(4, 3, 2, 1)
	got := FromPoints(src, dst)
	want := Vec4{3, 2, 1, 1}
	if got != want {
		t.Errorf("FromPoints() = %v, want %v", got, want)
	}
}

func TestVec4Magnitude(t *testing.T) {
	v := NewVec4(1, 2, 2, 4)
	if got := v.Magnitude(); got != 5 {
		t.Errorf("Magnitude() = %v, want 5", got)
	}
}

func TestVec4Normalize(t *testing.T) {
	tests := []Vec4{
		{3, 4, 0, 0},
		{1, 1, 1, 1},
		{-2, 0.5, 7, 0},
		{1e-3, 0, 0, 1e-3},
		{1e6, -1e6, 3, 1},
	}
	for _, v := range tests {
		if l := v.Normalize().Magnitude(); !approx(l, 1, 1e-12) {
			t.Errorf("%v.Normalize().Magnitude() = %v, want ~1", v, l)
		}
	}
}

func TestVec4NormalizeZero(t *testing.T) {
	n := Vec4{}.Normalize()
	for i, c := range n {
		if !math.IsNaN(c) {
			t.Errorf("component %d = %v, want NaN", i, c)
		}
	}
}

func TestVec4Cross(t *testing.T) {
	got := NewVec4(1, 0, 0, 1).Cross(NewVec4(0, 1, 0, 1))
	want := Vec4{0, 0, 1, 0}
	if got != want {
		t.Errorf("Cross() = %v, want %v", got, want)
	}
}

func TestVec4CrossAnticommutes(t *testing.T) {
	pairs := [][2]Vec4{
		{{1, 2, 3, 1}, {4, 5, 6, 1}},
		{{-1, 0.5, 2, 0}, {3, -7, 0.25, 0}},
		{{0, 0, 1, 1}, {0, 1, 0, 1}},
	}
	for _, p := range pairs {
		ab := p[0].Cross(p[1])
		ba := p[1].Cross(p[0]).Scale(-1)
		if ab != ba {
			t.Errorf("a x b = %v, -(b x a) = %v", ab, ba)
		}
		if p[0].Dot(p[1]) != p[1].Dot(p[0]) {
			t.Errorf("dot not symmetric for %v, %v", p[0], p[1])
		}
	}
}

func TestVec4AngleTo(t *testing.T) {
	x := NewVec4(1, 0, 0, 0)
	y := NewVec4(0, 1, 0, 0)
	if got := x.AngleTo(y); !approx(got, math.Pi/2, 1e-12) {
		t.Errorf("AngleTo() = %v, want pi/2", got)
	}

	// w takes part in the computation
	px := NewVec4(1, 0, 0, 1)
	py := NewVec4(0, 1, 0, 1)
	if got := px.AngleTo(py); !approx(got, math.Pi/3, 1e-12) {
		t.Errorf("AngleTo() with w=1 = %v, want pi/3", got)
	}
}

func TestVec4String(t *testing.T) {
	got := NewVec4(1, -0.5, 0, 2).String()
	want := "[ 1.0000 -0.5000 0.0000 2.0000 ]"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
