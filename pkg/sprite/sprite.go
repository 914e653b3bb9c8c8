// Package sprite implements the collision detection and response kernel of
// the framework: sprites, ordered groups, and the four interaction modes
// (Overlap, Displace, Collide, Bounce) between them.
package sprite

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-sprite/pkg/physics"
)

// Immovable is the reserved mass value meaning infinite mass: a sprite with
// this mass never has its position or velocity changed by collision response.
const Immovable float64 = 0

// Sprite is a movable axis-aligned rectangular entity. Position is the
// rectangle's center. Velocity is consumed only by the Bounce mode; the
// per-frame integration lives in pkg/world.
type Sprite struct {
	ecs.BasicEntity
	Position physics.Vector2D
	Velocity physics.Vector2D
	Width    float64
	Height   float64
	Mass     float64
	Active   bool
}

// New creates an active sprite of mass 1 centered at (x, y).
func New(x, y, width, height float64) *Sprite {
	return &Sprite{
		BasicEntity: ecs.NewBasic(),
		Position:    physics.Vector2D{X: x, Y: y},
		Width:       width,
		Height:      height,
		Mass:        1,
		Active:      true,
	}
}

// Bounds returns the sprite's collider rectangle derived from its current
// position and size.
func (s *Sprite) Bounds() physics.AABB {
	return physics.AABB{
		Center: s.Position,
		Width:  s.Width,
		Height: s.Height,
	}
}

// IsImmovable reports whether the sprite carries the infinite-mass sentinel.
func (s *Sprite) IsImmovable() bool {
	return s.Mass <= Immovable
}

// InverseMass returns 1/Mass, or 0 for an immovable sprite. All collision
// response math works in inverse-mass terms so the sentinel needs no special
// casing at the call sites.
func (s *Sprite) InverseMass() float64 {
	if s.Mass <= Immovable {
		return 0
	}
	return 1 / s.Mass
}
