// Package geom provides the pure geometric predicates backing ball-paddle
// and ball-powerup collision: circle-vs-rectangle via closest-point
// clamping, circle-vs-circle, point containment, and AABB overlap.
// All coordinates are float64 canvas units.
package geom

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Circle is a circle described by its center and radius.
type Circle struct {
	X, Y float64
	R    float64
}

// Rect is an axis-aligned rectangle described by its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x-coordinate of the rectangle center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the rectangle center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Hit is the result of a collision test. Depth, Normal, and Contact are
// only meaningful when Collided is true.
type Hit struct {
	Collided bool
	Depth    float64 // Penetration depth along Normal
	Normal   Vec2    // Unit vector pointing out of the struck shape
	Contact  Vec2    // Closest point on the struck shape
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// CircleVsRect tests a circle against a rectangle by clamping the circle
// center to the rectangle (closest-point test). The normal is the unit
// vector from the closest point toward the circle center.
//
// Degenerate case: a center exactly on (or inside) the rectangle yields a
// zero-length normal; it defaults to a horizontal normal pointing away
// from the rectangle's mid-x so callers always get a usable direction.
func CircleVsRect(c Circle, r Rect) Hit {
	closestX := clamp(c.X, r.X, r.Right())
	closestY := clamp(c.Y, r.Y, r.Bottom())

	dx := c.X - closestX
	dy := c.Y - closestY
	distSq := dx*dx + dy*dy

	if distSq > c.R*c.R {
		return Hit{}
	}

	contact := Vec2{X: closestX, Y: closestY}

	dist := math.Sqrt(distSq)
	if dist == 0 {
		normal := Vec2{X: 1}
		if c.X < r.CenterX() {
			normal.X = -1
		}
		return Hit{Collided: true, Depth: c.R, Normal: normal, Contact: contact}
	}

	return Hit{
		Collided: true,
		Depth:    c.R - dist,
		Normal:   Vec2{X: dx / dist, Y: dy / dist},
		Contact:  contact,
	}
}

// CircleVsCircle tests two circles. Collision requires the center distance
// to be strictly less than the sum of radii; the normal points from a to b.
//
// Degenerate case: coincident centers default to a fixed +X normal.
func CircleVsCircle(a, b Circle) Hit {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	sum := a.R + b.R

	if dist >= sum {
		return Hit{}
	}

	if dist == 0 {
		return Hit{Collided: true, Depth: sum, Normal: Vec2{X: 1}}
	}

	return Hit{
		Collided: true,
		Depth:    sum - dist,
		Normal:   Vec2{X: dx / dist, Y: dy / dist},
	}
}

// PointInRect reports whether the point lies in the rectangle.
// Boundary points count as inside.
func PointInRect(x, y float64, r Rect) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// PointInCircle reports whether the point lies in the circle.
// Boundary points count as inside.
func PointInCircle(x, y float64, c Circle) bool {
	return Distance(x, y, c.X, c.Y) <= c.R
}

// RectsOverlap reports whether two rectangles overlap on both axes.
// Touching edges do not count as overlapping; the strict comparison is a
// deliberate tie-break for broad-phase checks.
func RectsOverlap(a, b Rect) bool {
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
