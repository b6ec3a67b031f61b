package linalg

import (
	"math"
	"testing"
)

func TestTranslation(t *testing.T) {
	m := Translation(10, 20, 30)

	if got, want := m.MulVec4(NewVec4(1, 2, 3, 1)), (Vec4{11, 22, 33, 1}); got != want {
		t.Errorf("point: got %v, want %v", got, want)
	}
	// directions ignore translation
	if got, want := m.MulVec4(NewVec4(1, 2, 3, 0)), (Vec4{1, 2, 3, 0}); got != want {
		t.Errorf("direction: got %v, want %v", got, want)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	if m[0][0] != 2 || m[1][1] != 3 || m[2][2] != 4 || m[3][3] != 1 {
		t.Errorf("Scale diagonal: got (%v, %v, %v, %v)", m[0][0], m[1][1], m[2][2], m[3][3])
	}
}

func TestRotationSigns(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec4
		want Vec4
	}{
		{"Z: x to y", RotationZ(math.Pi / 2), Vec4{1, 0, 0, 1}, Vec4{0, 1, 0, 1}},
		{"X: y to z", RotationX(math.Pi / 2), Vec4{0, 1, 0, 1}, Vec4{0, 0, 1, 1}},
		{"Y: z to x", RotationY(math.Pi / 2), Vec4{0, 0, 1, 1}, Vec4{1, 0, 0, 1}},
		{"Y: x to -z", RotationY(math.Pi / 2), Vec4{1, 0, 0, 1}, Vec4{0, 0, -1, 1}},
		{"Z: full turn", RotationZ(2 * math.Pi), Vec4{3, 4, 5, 0}, Vec4{3, 4, 5, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec4(tt.in); !vecApprox(got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
