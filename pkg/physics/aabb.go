// pkg/physics/aabb.go
package physics

import "math"

// AABB is an axis-aligned rectangle described by its center point and full
// width/height. Bounds are derived from the center, never stored.
type AABB struct {
	Center Vector2D
	Width  float64
	Height float64
}

// NewAABB creates a rectangle centered at (x, y) with the given full size.
func NewAABB(x, y, width, height float64) AABB {
	return AABB{
		Center: Vector2D{X: x, Y: y},
		Width:  width,
		Height: height,
	}
}

// Min returns the lower-left corner of the rectangle.
func (a AABB) Min() Vector2D {
	return Vector2D{X: a.Center.X - a.Width/2, Y: a.Center.Y - a.Height/2}
}

// Max returns the upper-right corner of the rectangle.
func (a AABB) Max() Vector2D {
	return Vector2D{X: a.Center.X + a.Width/2, Y: a.Center.Y + a.Height/2}
}

// Contains reports whether the point lies inside the rectangle.
func (a AABB) Contains(point Vector2D) bool {
	return point.X >= a.Center.X-a.Width/2 &&
		point.X < a.Center.X+a.Width/2 &&
		point.Y >= a.Center.Y-a.Height/2 &&
		point.Y < a.Center.Y+a.Height/2
}

// Overlaps checks if two rectangles intersect on both axes. The test is
// strict: rectangles whose edges exactly touch do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return math.Abs(a.Center.X-b.Center.X) < (a.Width+b.Width)/2 &&
		math.Abs(a.Center.Y-b.Center.Y) < (a.Height+b.Height)/2
}

// MinimumTranslation returns the smallest vector that moves b so the two
// rectangles just touch, along the axis with the smaller penetration depth.
// Equal penetration on both axes resolves along the horizontal axis. The
// second return value is false when the rectangles do not overlap.
func MinimumTranslation(a, b AABB) (Vector2D, bool) {
	dx := (a.Width+b.Width)/2 - math.Abs(a.Center.X-b.Center.X)
	dy := (a.Height+b.Height)/2 - math.Abs(a.Center.Y-b.Center.Y)
	if dx <= 0 || dy <= 0 {
		return Vector2D{}, false
	}

	if dx <= dy {
		// Push b away from a along X; coincident centers push toward +X.
		if b.Center.X < a.Center.X {
			dx = -dx
		}
		return Vector2D{X: dx}, true
	}

	if b.Center.Y < a.Center.Y {
		dy = -dy
	}
	return Vector2D{Y: dy}, true
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided    bool
	MTV         Vector2D
	Penetration float64
}

// CheckCollision performs detailed collision detection between two rectangles.
// The MTV is the translation that separates b from a.
func CheckCollision(a, b AABB) CollisionResult {
	mtv, ok := MinimumTranslation(a, b)
	if !ok {
		return CollisionResult{Collided: false}
	}
	return CollisionResult{
		Collided:    true,
		MTV:         mtv,
		Penetration: mtv.Length(),
	}
}
