package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"inside", Vec{15, 15}, true},
		{"top-left corner", Vec{10, 10}, true},
		{"bottom-right edge (exclusive)", Vec{30, 25}, false},
		{"outside left", Vec{5, 15}, false},
		{"outside bottom", Vec{15, 30}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(0, 0, 100, 50).Expand(0.2)

	if r.X != -20 || r.Y != -10 || r.W != 140 || r.H != 70 {
		t.Errorf("Expand(0.2) = %+v, expected {-20 -10 140 70}", r)
	}
	if r.Right() != 120 || r.Bottom() != 60 {
		t.Errorf("expanded edges = (%v, %v), expected (120, 60)", r.Right(), r.Bottom())
	}
}

func TestVecOps(t *testing.T) {
	v := Vec{3, 4}

	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	if got := v.Add(Vec{1, 1}); got != (Vec{4, 5}) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Sub(Vec{1, 1}); got != (Vec{2, 3}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := v.Scale(2); got != (Vec{6, 8}) {
		t.Errorf("Scale() = %v", got)
	}
	if got := v.Dot(Vec{1, 0}); got != 3 {
		t.Errorf("Dot() = %v", got)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	v := Vec{-2, 5}
	back := Polar(v.Len(), v.Angle())

	if math.Abs(back.X-v.X) > eps || math.Abs(back.Y-v.Y) > eps {
		t.Errorf("Polar(Len, Angle) = %v, expected %v", back, v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(-0.1) != -1 || Sign(0) != 1 || Sign(3) != 1 {
		t.Error("Sign returned unexpected values")
	}
}
