// pkg/sprite/target.go
package sprite

import (
	"errors"
	"fmt"
)

// ErrInvalidTarget is returned when a resolution method receives a target
// that is not a usable Sprite or Group (typically a nil value). It is never
// reported through the boolean result: false always means "no overlap".
var ErrInvalidTarget = errors.New("target must be a Sprite or a Group")

// Target is either a single *Sprite or a *Group. It is the callee side of
// every resolution call; the interface is sealed so the two cases are checked
// once per call instead of inspected inside each mode.
type Target interface {
	// eachSprite visits the target's sprites in iteration order: a single
	// sprite visits itself, a group visits its members in insertion order.
	eachSprite(fn func(*Sprite))
}

func (s *Sprite) eachSprite(fn func(*Sprite)) {
	fn(s)
}

func (g *Group) eachSprite(fn func(*Sprite)) {
	for _, m := range g.members {
		fn(m)
	}
}

// checkTarget validates the callee argument of a resolution call. The
// interface is sealed, so the only invalid values are nil ones.
func checkTarget(t Target) error {
	switch v := t.(type) {
	case *Sprite:
		if v == nil {
			return fmt.Errorf("%w: nil Sprite", ErrInvalidTarget)
		}
	case *Group:
		if v == nil {
			return fmt.Errorf("%w: nil Group", ErrInvalidTarget)
		}
	case nil:
		return ErrInvalidTarget
	default:
		return fmt.Errorf("%w: unexpected %T", ErrInvalidTarget, t)
	}
	return nil
}

// eachPair enumerates candidate (caller, callee) pairs: outer loop over the
// caller's sprites, inner loop over the target's sprites, both in insertion
// order, skipping pairs where both sides are the same sprite instance. The
// enumerator performs no geometric filtering.
func eachPair(caller, target Target, fn func(a, b *Sprite)) {
	caller.eachSprite(func(a *Sprite) {
		target.eachSprite(func(b *Sprite) {
			if a == b {
				return
			}
			fn(a, b)
		})
	})
}
