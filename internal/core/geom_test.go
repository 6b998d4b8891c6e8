package core

import "testing"

func TestCircleContains(t *testing.T) {
	c := Circle{Center: Vec2{X: 100, Y: 100}, Radius: 15}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"exact center", Vec2{X: 100, Y: 100}, true},
		{"inside", Vec2{X: 110, Y: 105}, true},
		{"on boundary", Vec2{X: 115, Y: 100}, true},
		{"just outside", Vec2{X: 115.01, Y: 100}, false},
		{"far away", Vec2{X: 0, Y: 0}, false},
		{"diagonal inside", Vec2{X: 110, Y: 110}, true},   // dist^2 = 200 < 225
		{"diagonal outside", Vec2{X: 111, Y: 111}, false}, // dist^2 = 242 > 225
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := c.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestCircleContainsCenterAlwaysHits(t *testing.T) {
	// A click exactly at the center must be a hit for any positive radius
	for _, r := range []float64{0.5, 1, 10, 20} {
		c := Circle{Center: Vec2{X: 42, Y: 17}, Radius: r}
		if !c.Contains(c.Center) {
			t.Errorf("Contains(center) = false for radius %v", r)
		}
	}
}

func TestDist2(t *testing.T) {
	tests := []struct {
		a, b     Vec2
		expected float64
	}{
		{Vec2{0, 0}, Vec2{3, 4}, 25},
		{Vec2{1, 1}, Vec2{1, 1}, 0},
		{Vec2{-2, 0}, Vec2{2, 0}, 16},
	}

	for _, tc := range tests {
		result := Dist2(tc.a, tc.b)
		if result != tc.expected {
			t.Errorf("Dist2(%v, %v) = %v, expected %v", tc.a, tc.b, result, tc.expected)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
