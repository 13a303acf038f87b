package core

import "testing"

func TestSpanContains(t *testing.T) {
	s := NewSpan(40, 60)

	tests := []struct {
		name     string
		v        float64
		expected bool
	}{
		{"inside", 50, true},
		{"left bound (inclusive)", 40, true},
		{"right bound (inclusive)", 60, true},
		{"just left", 39.999, false},
		{"just right", 60.001, false},
		{"far outside", 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := s.Contains(tc.v)
			if result != tc.expected {
				t.Errorf("Contains(%f) = %v, expected %v", tc.v, result, tc.expected)
			}
		})
	}
}

func TestNewSpanOrdersBounds(t *testing.T) {
	s := NewSpan(60, 40)
	if s.Min != 40 || s.Max != 60 {
		t.Errorf("NewSpan(60, 40) = %+v, expected {40 60}", s)
	}
	if s.Width() != 20 {
		t.Errorf("Width() = %f, expected 20", s.Width())
	}
	if s.Center() != 50 {
		t.Errorf("Center() = %f, expected 50", s.Center())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{-90, -90, 90, -90},
		{92, -90, 90, 90},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrapF(t *testing.T) {
	tests := []struct {
		name   string
		val    float64
		lo, hi float64
	}{
		{"inside", 42, 42, 42},
		{"past right edge", 100.4, 0, 1},
		{"exactly period", 100, 0, 0},
		{"past left edge", -0.5, 99, 100},
		{"zero", 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := WrapF(tc.val, 100)
			if result < 0 || result >= 100 {
				t.Fatalf("WrapF(%f) = %f, outside [0, 100)", tc.val, result)
			}
			if result < tc.lo || result > tc.hi {
				t.Errorf("WrapF(%f) = %f, expected within [%f, %f]", tc.val, result, tc.lo, tc.hi)
			}
		})
	}
}

func TestWrapFTinyNegative(t *testing.T) {
	// -1e-15 + 100 rounds to 100 in float64
	result := WrapF(-1e-15, 100)
	if result < 0 || result >= 100 {
		t.Errorf("WrapF(-1e-15) = %v, outside [0, 100)", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		val      float64
		expected int
	}{
		{150, 150},
		{149.9999, 149},
		{0.5, 0},
		{-0.5, 0},
		{-1.7, -1},
	}

	for _, tc := range tests {
		if got := Truncate(tc.val); got != tc.expected {
			t.Errorf("Truncate(%f) = %d, expected %d", tc.val, got, tc.expected)
		}
	}
}
