// Package arcball maps pointer drags onto a virtual glass globe and turns
// them into incremental rotations of the viewed object.
package arcball

import (
	"fmt"
	"math"

	"github.com/Faultbox/globe/pkg/linalg"
)

// Point is a pointer position in client coordinates.
type Point struct {
	X, Y float64
}

// Viewport is the canvas rectangle in client coordinates.
type Viewport struct {
	Left, Top     float64
	Width, Height float64
}

// GlobePoint projects p onto the unit hemisphere facing the viewer.
// Canvas coordinates are normalized to [-1, 1] with y pointing up. ok is
// false when p lies outside the globe's silhouette.
func GlobePoint(vp Viewport, p Point) (v linalg.Vec4, ok bool) {
	x := ((p.X-vp.Left)/vp.Width)*2 - 1
	y := (-(p.Y-vp.Top)/vp.Height)*2 + 1
	d := x*x + y*y
	if d > 1 {
		return linalg.Vec4{}, false
	}
	return linalg.NewVec4(x, y, math.Sqrt(1-d), 1), true
}

// State is the running transform of the viewed object and the rotation
// applied to it on every frame. Transitions return a new State.
type State struct {
	Current     linalg.Mat4
	Incremental linalg.Mat4
}

// NewState returns a still object in its initial orientation.
func NewState() State {
	return State{
		Current:     linalg.Identity(),
		Incremental: linalg.Identity(),
	}
}

// SeededState returns a tilted object that is already slowly spinning.
func SeededState() State {
	return State{
		Current: linalg.NewMat4(
			[4]float64{0.387835857009592, 0.7518691611785048, 0.5331754987678289, 0},
			[4]float64{0.8221064686100782, -0.5437448967078488, 0.16876741857834754, 0},
			[4]float64{0.4168024739453742, 0.37287297002180086, -0.8290002689626145, 0},
			[4]float64{0, 0, 0, 1},
		),
		Incremental: linalg.NewMat4(
			[4]float64{0.9996749957004568, -0.019550777409693132, 0.016360625720555688, 0},
			[4]float64{0.018082506037949295, 0.9961716177427132, 0.08552853897532298, 0},
			[4]float64{-0.017970140419011814, -0.0852049007190458, 0.9962013847344213, 0},
			[4]float64{0, 0, 0, 1},
		),
	}
}

// Press stops the spin.
func (s State) Press() State {
	s.Incremental = linalg.Identity()
	return s
}

// Drag replaces the spin with the rotation carrying the globe point under
// from onto the globe point under to, both taken into the object's local
// frame. A drag with either end outside the globe leaves the state as is.
func (s State) Drag(vp Viewport, from, to Point) (State, error) {
	start, ok := GlobePoint(vp, from)
	if !ok {
		return s, nil
	}
	end, ok := GlobePoint(vp, to)
	if !ok {
		return s, nil
	}

	inv, err := s.Current.Inverse()
	if err != nil {
		return s, fmt.Errorf("arcball drag: %w", err)
	}

	s.Incremental = linalg.RotationBetween(inv.MulVec4(start), inv.MulVec4(end))
	return s, nil
}

// Step advances one frame: current = current * incremental.
func (s State) Step() State {
	s.Current = s.Current.Mul(s.Incremental)
	return s
}
