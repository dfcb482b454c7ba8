package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "Unit X",
			vector:   NewVec3(5, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Diagonal",
			vector:   NewVec3(3, 4, 0),
			expected: NewVec3(0.6, 0.8, 0),
		},
		{
			name:     "Zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			if !result.IsFinite() {
				t.Errorf("Normalize produced non-finite result %v", result)
			}
		})
	}
}

func TestVec3_NormalizeLength(t *testing.T) {
	vectors := []Vec3{
		NewVec3(1, 2, 3),
		NewVec3(-0.001, 0.002, 0.0005),
		NewVec3(1e6, -1e6, 3e5),
	}

	for _, v := range vectors {
		if l := v.Normalize().Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("Normalize(%v) has length %f, expected 1", v, l)
		}
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, -10, 18) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := b.Divide(2); got != NewVec3(2, -2.5, 3) {
		t.Errorf("Divide: got %v", got)
	}
	if got := b.DivideVec(NewVec3(2, 5, 3)); got != NewVec3(2, -1, 2) {
		t.Errorf("DivideVec: got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %f", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: got %v", got)
	}
	if got := b.MaxComponent(); got != 6 {
		t.Errorf("MaxComponent: got %f", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	z := NewVec3(0, 0, 1)

	if got := x.Cross(y); got != z {
		t.Errorf("x × y: expected %v, got %v", z, got)
	}
	if got := y.Cross(x); got != z.Negate() {
		t.Errorf("y × x: expected %v, got %v", z.Negate(), got)
	}

	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 0.5, 4)
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("Cross product %v is not perpendicular to inputs", c)
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		incoming Vec3
		normal   Vec3
		expected Vec3
	}{
		{"Head on", NewVec3(0, -1, 0), NewVec3(0, 1, 0), NewVec3(0, 1, 0)},
		{"45 degrees", NewVec3(1, -1, 0), NewVec3(0, 1, 0), NewVec3(1, 1, 0)},
		{"Grazing", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.incoming.Reflect(tt.normal)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	if got := ray.At(1.5); got != NewVec3(1, 1, -2) {
		t.Errorf("Expected (1,1,-2), got %v", got)
	}
}
