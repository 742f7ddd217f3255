package ggchart

import (
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale(2,3).Multiply(Translate(1,1)) translates first, then scales.
	m := Scale(2, 3).Multiply(Translate(1, 1))
	got := m.TransformPoint(Pt(1, 1))
	if got != Pt(4, 6) {
		t.Errorf("TransformPoint = %v, want (4, 6)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translation", Translate(10, -20)},
		{"scale", Scale(3, 0.5)},
		{"flip y", Scale(1, -1)},
		{"scale + translate", Translate(5, 7).Multiply(Scale(2, -4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.m.Invertible() {
				t.Fatal("Invertible() = false, want true")
			}
			p := Pt(3.25, -1.5)
			back := tt.m.Invert().TransformPoint(tt.m.TransformPoint(p))
			if math.Abs(back.X-p.X) > 1e-12 || math.Abs(back.Y-p.Y) > 1e-12 {
				t.Errorf("Invert roundtrip = %v, want %v", back, p)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	m := Scale(0, 1)
	if m.Invertible() {
		t.Error("Invertible() = true for singular matrix")
	}
	if !m.Invert().IsIdentity() {
		t.Error("Invert() of singular matrix should return identity")
	}
}
