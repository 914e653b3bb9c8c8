// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_Add(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected Vector2D
	}{
		{
			name:     "positive_vectors",
			v1:       Vector2D{X: 1, Y: 2},
			v2:       Vector2D{X: 3, Y: 4},
			expected: Vector2D{X: 4, Y: 6},
		},
		{
			name:     "negative_vectors",
			v1:       Vector2D{X: -1, Y: -2},
			v2:       Vector2D{X: -3, Y: -4},
			expected: Vector2D{X: -4, Y: -6},
		},
		{
			name:     "zero_vector",
			v1:       Vector2D{X: 5, Y: 7},
			v2:       Vector2D{},
			expected: Vector2D{X: 5, Y: 7},
		},
		{
			name:     "opposite_vectors_cancel",
			v1:       Vector2D{X: 2, Y: -3},
			v2:       Vector2D{X: -2, Y: 3},
			expected: Vector2D{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v1.Add(tt.v2)
			if result != tt.expected {
				t.Errorf("Add() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestVector2D_Sub(t *testing.T) {
	v1 := Vector2D{X: 5, Y: 3}
	v2 := Vector2D{X: 2, Y: 7}
	expected := Vector2D{X: 3, Y: -4}

	if result := v1.Sub(v2); result != expected {
		t.Errorf("Sub() = %v, expected %v", result, expected)
	}
}

func TestVector2D_Scale(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		factor   float64
		expected Vector2D
	}{
		{
			name:     "double",
			v:        Vector2D{X: 1, Y: -2},
			factor:   2,
			expected: Vector2D{X: 2, Y: -4},
		},
		{
			name:     "negate",
			v:        Vector2D{X: 3, Y: 4},
			factor:   -1,
			expected: Vector2D{X: -3, Y: -4},
		},
		{
			name:     "zero_factor",
			v:        Vector2D{X: 3, Y: 4},
			factor:   0,
			expected: Vector2D{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Scale(tt.factor)
			if result != tt.expected {
				t.Errorf("Scale(%v) = %v, expected %v", tt.factor, result, tt.expected)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	if length := v.Length(); length != 5 {
		t.Errorf("Length() = %v, expected 5", length)
	}
	if sq := v.LengthSquared(); sq != 25 {
		t.Errorf("LengthSquared() = %v, expected 25", sq)
	}
}

func TestVector2D_Normalize(t *testing.T) {
	t.Run("unit_length_result", func(t *testing.T) {
		v := Vector2D{X: 3, Y: 4}
		n := v.Normalize()
		if math.Abs(n.Length()-1) > 1e-12 {
			t.Errorf("Normalize() length = %v, expected 1", n.Length())
		}
	})

	t.Run("zero_vector", func(t *testing.T) {
		v := Vector2D{}
		if n := v.Normalize(); n != (Vector2D{}) {
			t.Errorf("Normalize() of zero vector = %v, expected zero", n)
		}
	})

	t.Run("axis_aligned", func(t *testing.T) {
		v := Vector2D{X: 0, Y: -7}
		expected := Vector2D{X: 0, Y: -1}
		if n := v.Normalize(); n != expected {
			t.Errorf("Normalize() = %v, expected %v", n, expected)
		}
	})
}

func TestVector2D_Distance(t *testing.T) {
	v1 := Vector2D{X: 1, Y: 1}
	v2 := Vector2D{X: 4, Y: 5}
	if d := v1.Distance(v2); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
}

func TestVector2D_Dot(t *testing.T) {
	tests := []struct {
		name     string
		v1       Vector2D
		v2       Vector2D
		expected float64
	}{
		{
			name:     "parallel",
			v1:       Vector2D{X: 2, Y: 0},
			v2:       Vector2D{X: 3, Y: 0},
			expected: 6,
		},
		{
			name:     "perpendicular",
			v1:       Vector2D{X: 1, Y: 0},
			v2:       Vector2D{X: 0, Y: 5},
			expected: 0,
		},
		{
			name:     "opposite",
			v1:       Vector2D{X: 1, Y: 2},
			v2:       Vector2D{X: -1, Y: -2},
			expected: -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.v1.Dot(tt.v2); result != tt.expected {
				t.Errorf("Dot() = %v, expected %v", result, tt.expected)
			}
		})
	}
}
