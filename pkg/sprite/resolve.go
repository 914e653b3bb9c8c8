// pkg/sprite/resolve.go
package sprite

import (
	"github.com/opd-ai/go-sprite/pkg/physics"
)

// Callback is invoked once per overlapping pair, after the mode's side
// effect has been applied. The first argument is always the sprite on the
// caller side of the resolution call, the second the matched callee.
type Callback func(caller, callee *Sprite)

// effect applies a mode's position/velocity response for one overlapping
// pair. mtv is the translation that separates callee from caller.
type effect func(caller, callee *Sprite, mtv physics.Vector2D)

// resolve is the traversal shared by all four modes: enumerate candidate
// pairs, filter by the shape test against each sprite's current bounds,
// apply the effect and dispatch the callback immediately per pair. Because
// effects run mid-traversal, later pairs observe earlier pairs'
// displacement; this ordering is part of the contract.
//
// When caller and target are the same Group, the nested enumeration reports
// each overlapping unordered pair twice, once as (i, j) and once as (j, i).
func resolve(caller, target Target, apply effect, fn Callback) (bool, error) {
	if err := checkTarget(target); err != nil {
		return false, err
	}

	collided := false
	eachPair(caller, target, func(a, b *Sprite) {
		mtv, ok := physics.MinimumTranslation(a.Bounds(), b.Bounds())
		if !ok {
			return
		}
		collided = true
		if apply != nil {
			apply(a, b, mtv)
		}
		if fn != nil {
			fn(a, b)
		}
	})
	return collided, nil
}

// displaceEffect pushes the callee out of the caller along the MTV. The
// caller is left untouched.
func displaceEffect(_, callee *Sprite, mtv physics.Vector2D) {
	callee.Position = callee.Position.Add(mtv)
}

// collideEffect is the mirror of displace: the caller backs out of the
// callee along the negated MTV.
func collideEffect(caller, _ *Sprite, mtv physics.Vector2D) {
	caller.Position = caller.Position.Add(mtv.Scale(-1))
}

// bounceEffect separates the pair along the MTV proportionally to inverse
// mass and exchanges momentum with a fully elastic 1D collision projected on
// the MTV axis. The velocity component perpendicular to the MTV is
// unchanged. An immovable sprite keeps its position and velocity; if both
// are immovable the pair is reported but nothing moves.
func bounceEffect(caller, callee *Sprite, mtv physics.Vector2D) {
	invA := caller.InverseMass()
	invB := callee.InverseMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	caller.Position = caller.Position.Add(mtv.Scale(-invA / invSum))
	callee.Position = callee.Position.Add(mtv.Scale(invB / invSum))

	n := mtv.Normalize()
	va := caller.Velocity.Dot(n)
	vb := callee.Velocity.Dot(n)
	rel := va - vb

	// Elastic exchange along n, inverse-mass form of the standard
	// two-body formula.
	caller.Velocity = caller.Velocity.Add(n.Scale(-2 * invA / invSum * rel))
	callee.Velocity = callee.Velocity.Add(n.Scale(2 * invB / invSum * rel))
}

// Overlap reports whether the sprite intersects the target, invoking fn once
// per overlapping pair. No positions or velocities are changed.
func (s *Sprite) Overlap(target Target, fn Callback) (bool, error) {
	return resolve(s, target, nil, fn)
}

// Displace resolves intersections by moving each overlapping callee out of
// this sprite along the minimum-translation vector. The sprite itself never
// moves.
func (s *Sprite) Displace(target Target, fn Callback) (bool, error) {
	return resolve(s, target, displaceEffect, fn)
}

// Collide resolves intersections by moving this sprite out of each
// overlapping callee, as if the callee were immovable. Callees never move.
func (s *Sprite) Collide(target Target, fn Callback) (bool, error) {
	return resolve(s, target, collideEffect, fn)
}

// Bounce resolves intersections with an elastic, momentum-conserving
// response along the MTV axis, using each sprite's mass. Sprites with the
// Immovable mass sentinel are treated as infinitely heavy.
func (s *Sprite) Bounce(target Target, fn Callback) (bool, error) {
	return resolve(s, target, bounceEffect, fn)
}

// Overlap reports whether any member of the group intersects the target.
// Pairs are visited with the group's members as the caller side, outer loop
// in insertion order.
func (g *Group) Overlap(target Target, fn Callback) (bool, error) {
	return resolve(g, target, nil, fn)
}

// Displace resolves intersections between group members and the target by
// moving the callees; see (*Sprite).Displace.
func (g *Group) Displace(target Target, fn Callback) (bool, error) {
	return resolve(g, target, displaceEffect, fn)
}

// Collide resolves intersections by moving the group's own members out of
// the callees; see (*Sprite).Collide.
func (g *Group) Collide(target Target, fn Callback) (bool, error) {
	return resolve(g, target, collideEffect, fn)
}

// Bounce applies the elastic response between group members and the target;
// see (*Sprite).Bounce.
func (g *Group) Bounce(target Target, fn Callback) (bool, error) {
	return resolve(g, target, bounceEffect, fn)
}
