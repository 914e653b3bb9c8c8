// pkg/world/resolve.go
package world

import (
	"github.com/opd-ai/go-sprite/pkg/event"
	"github.com/opd-ai/go-sprite/pkg/sprite"
)

// Resolver is the caller side of a resolution call; both *sprite.Sprite and
// *sprite.Group satisfy it.
type Resolver interface {
	Overlap(sprite.Target, sprite.Callback) (bool, error)
	Displace(sprite.Target, sprite.Callback) (bool, error)
	Collide(sprite.Target, sprite.Callback) (bool, error)
	Bounce(sprite.Target, sprite.Callback) (bool, error)
}

// publish wraps a user callback so every reported pair additionally emits a
// CollisionDetected event, plus the mode's own event type when one applies.
func (w *World) publish(mode string, modeType event.Type, fn sprite.Callback) sprite.Callback {
	return func(a, b *sprite.Sprite) {
		w.Events.Publish(event.NewCollisionEvent(event.CollisionDetected, w, mode, a.ID(), b.ID()))
		if modeType != "" {
			w.Events.Publish(event.NewCollisionEvent(modeType, w, mode, a.ID(), b.ID()))
		}
		if fn != nil {
			fn(a, b)
		}
	}
}

// Overlap runs the overlap mode and publishes CollisionDetected per pair.
func (w *World) Overlap(caller Resolver, target sprite.Target, fn sprite.Callback) (bool, error) {
	return caller.Overlap(target, w.publish("overlap", "", fn))
}

// Displace runs the displace mode and publishes CollisionDetected and
// SpriteDisplaced per pair.
func (w *World) Displace(caller Resolver, target sprite.Target, fn sprite.Callback) (bool, error) {
	return caller.Displace(target, w.publish("displace", event.SpriteDisplaced, fn))
}

// Collide runs the collide mode and publishes CollisionDetected and
// SpriteDisplaced per pair (the displaced sprite is the caller side).
func (w *World) Collide(caller Resolver, target sprite.Target, fn sprite.Callback) (bool, error) {
	return caller.Collide(target, w.publish("collide", event.SpriteDisplaced, fn))
}

// Bounce runs the bounce mode and publishes CollisionDetected and
// SpriteBounced per pair.
func (w *World) Bounce(caller Resolver, target sprite.Target, fn sprite.Callback) (bool, error) {
	return caller.Bounce(target, w.publish("bounce", event.SpriteBounced, fn))
}
