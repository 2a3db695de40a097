package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if a.Add(b) != V(4, 2) {
		t.Errorf("Add() = %v", a.Add(b))
	}
	if a.Sub(b) != V(2, 6) {
		t.Errorf("Sub() = %v", a.Sub(b))
	}
	if a.Scale(2) != V(6, 8) {
		t.Errorf("Scale() = %v", a.Scale(2))
	}
	if a.Div(2) != V(1.5, 2) {
		t.Errorf("Div() = %v", a.Div(2))
	}
	if a.Magnitude() != 5 {
		t.Errorf("Magnitude() = %v, expected 5", a.Magnitude())
	}
	if V(0, 0).Distance(a) != 5 {
		t.Errorf("Distance() = %v, expected 5", V(0, 0).Distance(a))
	}
}

func TestVecNormalize(t *testing.T) {
	n, ok := V(0, -8).Normalize()
	if !ok {
		t.Fatal("Normalize() of non-zero vector should succeed")
	}
	if n != V(0, -1) {
		t.Errorf("Normalize() = %v, expected (0, -1)", n)
	}

	if _, ok := V(0, 0).Normalize(); ok {
		t.Error("Normalize() of zero vector should report failure")
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)
	if math.Abs(float64(v.X)) > 1e-6 || math.Abs(float64(v.Y-1)) > 1e-6 {
		t.Errorf("FromAngle(pi/2) = %v, expected (0, 1)", v)
	}
	if m := FromAngle(1.234).Magnitude(); math.Abs(float64(m-1)) > 1e-6 {
		t.Errorf("FromAngle() magnitude = %v, expected 1", m)
	}
}
