package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
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
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name        string
		a, b, t     float64
		expected    float64
	}{
		{"start", 0, 10, 0, 0},
		{"half", 0, 10, 0.5, 5},
		{"end", 0, 10, 1, 10},
		{"overshoot clamped", 0, 10, 3, 10},
		{"negative clamped", 4, 10, -1, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
				t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, got, tc.expected)
			}
		})
	}
}

func TestVec3(t *testing.T) {
	v := V3(1, 2, 3).Add(V3(1, 1, 1)).Scale(2)
	if v != (Vec3{X: 4, Y: 6, Z: 8}) {
		t.Errorf("unexpected vector %+v", v)
	}
}

func TestHalfLanes(t *testing.T) {
	tests := []struct{ lanes, expected int }{
		{0, 0},
		{1, 0},
		{3, 1},
		{5, 2},
		{7, 3},
	}
	for _, tc := range tests {
		if got := HalfLanes(tc.lanes); got != tc.expected {
			t.Errorf("HalfLanes(%d) = %d, expected %d", tc.lanes, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
	if AbsF(-2.5) != 2.5 {
		t.Error("AbsF(-2.5) should be 2.5")
	}
}
