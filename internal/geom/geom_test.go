package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, want 5", d)
	}
	if d := Distance(1, 1, 1, 1); d != 0 {
		t.Errorf("Distance of coincident points = %v, want 0", d)
	}
}

func TestCircleVsRect(t *testing.T) {
	rect := Rect{X: 10, Y: 10, W: 20, H: 40}

	tests := []struct {
		name     string
		circle   Circle
		collided bool
	}{
		{"far away", Circle{X: 100, Y: 100, R: 5}, false},
		{"touching edge exactly", Circle{X: 35, Y: 30, R: 5}, true},
		{"overlapping left face", Circle{X: 8, Y: 30, R: 5}, true},
		{"near corner outside", Circle{X: 34, Y: 54, R: 5}, false},
		{"near corner inside radius", Circle{X: 33, Y: 53, R: 5}, true},
		{"center inside rect", Circle{X: 20, Y: 30, R: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := CircleVsRect(tt.circle, rect)
			if hit.Collided != tt.collided {
				t.Errorf("CircleVsRect(%+v) collided = %v, want %v", tt.circle, hit.Collided, tt.collided)
			}
		})
	}
}

func TestCircleVsRectNormalPointsOutward(t *testing.T) {
	rect := Rect{X: 10, Y: 10, W: 20, H: 40}

	// Circle approaching from the left: normal must point left.
	hit := CircleVsRect(Circle{X: 8, Y: 30, R: 5}, rect)
	if !hit.Collided {
		t.Fatal("expected collision from the left face")
	}
	if hit.Normal.X >= 0 {
		t.Errorf("normal.X = %v, want negative (pointing away from rect)", hit.Normal.X)
	}
	if math.Abs(hit.Normal.Y) > epsilon {
		t.Errorf("normal.Y = %v, want 0 for a face-on hit", hit.Normal.Y)
	}

	// Unit length.
	length := math.Hypot(hit.Normal.X, hit.Normal.Y)
	if math.Abs(length-1) > epsilon {
		t.Errorf("normal length = %v, want 1", length)
	}
}

func TestCircleVsRectDegenerateCenterInside(t *testing.T) {
	rect := Rect{X: 10, Y: 10, W: 20, H: 40}

	// Center inside the rect clamps to itself: zero-length direction.
	// The fallback must still produce a usable horizontal normal.
	left := CircleVsRect(Circle{X: 12, Y: 30, R: 5}, rect)
	if !left.Collided {
		t.Fatal("expected collision for center inside rect")
	}
	if left.Normal.X != -1 || left.Normal.Y != 0 {
		t.Errorf("normal = %+v, want {-1 0} for center left of rect mid-x", left.Normal)
	}
	if left.Depth != 5 {
		t.Errorf("depth = %v, want full radius 5", left.Depth)
	}

	right := CircleVsRect(Circle{X: 28, Y: 30, R: 5}, rect)
	if right.Normal.X != 1 {
		t.Errorf("normal.X = %v, want 1 for center right of rect mid-x", right.Normal.X)
	}
}

func TestCircleVsCircle(t *testing.T) {
	// Two r=10 circles 10 apart overlap with penetration 10.
	hit := CircleVsCircle(Circle{X: 0, Y: 0, R: 10}, Circle{X: 10, Y: 0, R: 10})
	if !hit.Collided {
		t.Fatal("expected collision")
	}
	if math.Abs(hit.Depth-10) > epsilon {
		t.Errorf("depth = %v, want 10", hit.Depth)
	}
	if hit.Normal.X != 1 || hit.Normal.Y != 0 {
		t.Errorf("normal = %+v, want {1 0}", hit.Normal)
	}

	// Distance exactly equals radius sum: no collision (strict test).
	touch := CircleVsCircle(Circle{X: 0, Y: 0, R: 5}, Circle{X: 10, Y: 0, R: 5})
	if touch.Collided {
		t.Error("touching circles should not collide")
	}

	// Coincident centers get the fixed +X fallback normal.
	same := CircleVsCircle(Circle{X: 3, Y: 3, R: 2}, Circle{X: 3, Y: 3, R: 4})
	if !same.Collided {
		t.Fatal("coincident circles should collide")
	}
	if same.Normal.X != 1 || same.Normal.Y != 0 {
		t.Errorf("normal = %+v, want {1 0} fallback", same.Normal)
	}
	if same.Depth != 6 {
		t.Errorf("depth = %v, want sum of radii 6", same.Depth)
	}
}

func TestPointInRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 5, true},
		{0, 0, true},   // corner counts
		{10, 10, true}, // far corner counts
		{10.1, 5, false},
		{-0.1, 5, false},
	}

	for _, tt := range tests {
		if got := PointInRect(tt.x, tt.y, r); got != tt.want {
			t.Errorf("PointInRect(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPointInCircle(t *testing.T) {
	c := Circle{X: 0, Y: 0, R: 5}

	if !PointInCircle(3, 4, c) {
		t.Error("boundary point (3,4) should be inside r=5 circle")
	}
	if PointInCircle(3.1, 4, c) {
		t.Error("point just outside should not be inside")
	}
	if !PointInCircle(0, 0, c) {
		t.Error("center should be inside")
	}
}

func TestRectsOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"clear overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 3, H: 3}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsOverlap(a, tt.b); got != tt.want {
				t.Errorf("RectsOverlap = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := RectsOverlap(tt.b, a); got != tt.want {
				t.Errorf("RectsOverlap reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
