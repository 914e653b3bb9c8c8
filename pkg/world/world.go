// Package world hosts the runtime around the collision kernel: the registry
// of all live sprites, the sprite factory, the per-frame simulation step, and
// teardown. It is the single writer for the sprites it owns; resolution calls
// and Step must not run concurrently against shared sprites.
package world

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opd-ai/go-sprite/pkg/config"
	"github.com/opd-ai/go-sprite/pkg/event"
	"github.com/opd-ai/go-sprite/pkg/logging"
	"github.com/opd-ai/go-sprite/pkg/physics"
	"github.com/opd-ai/go-sprite/pkg/sprite"
)

// World owns every sprite created through its factory and steps them frame
// by frame.
type World struct {
	ID       string
	Width    float64
	Height   float64
	Gravity  physics.Vector2D
	Friction float64

	Events *event.Bus

	sprites    *sprite.Group
	groups     map[string]*sprite.Group
	named      map[string]*sprite.Sprite
	maxSprites int
	frame      uint64
	logger     *logging.Logger
}

// New creates an empty world from the given configuration.
func New(cfg *config.EnvironmentConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world configuration: %w", err)
	}

	return &World{
		ID:         uuid.NewString(),
		Width:      cfg.WorldWidth,
		Height:     cfg.WorldHeight,
		Gravity:    physics.Vector2D{X: cfg.GravityX, Y: cfg.GravityY},
		Friction:   cfg.Friction,
		Events:     event.NewEventBus(),
		sprites:    sprite.NewGroup(),
		groups:     make(map[string]*sprite.Group),
		named:      make(map[string]*sprite.Sprite),
		maxSprites: cfg.MaxSprites,
		logger:     logging.NewLogger(),
	}, nil
}

// NewSprite creates a sprite of mass 1 centered at (x, y), registers it and
// publishes a SpriteAdded event.
func (w *World) NewSprite(x, y, width, height float64) (*sprite.Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid sprite size %vx%v (must be positive)", width, height)
	}
	if w.sprites.Len() >= w.maxSprites {
		return nil, fmt.Errorf("sprite limit reached: %d", w.maxSprites)
	}

	s := sprite.New(x, y, width, height)
	w.sprites.Add(s)
	w.Events.Publish(event.NewSpriteEvent(event.SpriteAdded, w, s.ID()))
	return s, nil
}

// NewSpriteFromConfig creates a sprite with the full initial state of a
// scene entry, including velocity, mass and named group memberships.
func (w *World) NewSpriteFromConfig(sc config.SpriteConfig) (*sprite.Sprite, error) {
	if sc.Mass < 0 {
		return nil, fmt.Errorf("sprite %q: negative mass %v", sc.Name, sc.Mass)
	}

	s, err := w.NewSprite(sc.X, sc.Y, sc.Width, sc.Height)
	if err != nil {
		return nil, fmt.Errorf("sprite %q: %w", sc.Name, err)
	}
	s.Velocity = physics.Vector2D{X: sc.VelocityX, Y: sc.VelocityY}
	s.Mass = sc.Mass

	if sc.Name != "" {
		w.named[sc.Name] = s
	}
	for _, name := range sc.Groups {
		w.Group(name).Add(s)
	}
	return s, nil
}

// LoadScene populates the world from a scene configuration and applies its
// gravity and friction settings.
func (w *World) LoadScene(scene *config.SceneConfig) error {
	if err := scene.Validate(); err != nil {
		return fmt.Errorf("invalid scene: %w", err)
	}

	w.Gravity = physics.Vector2D{X: scene.GravityX, Y: scene.GravityY}
	w.Friction = scene.Friction

	for _, sc := range scene.Sprites {
		if _, err := w.NewSpriteFromConfig(sc); err != nil {
			return err
		}
	}

	w.logger.Info(context.Background(), "scene loaded",
		"world_id", w.ID,
		"scene", scene.Name,
		"sprites", len(scene.Sprites),
	)
	return nil
}

// Sprites returns the registry of all live sprites, in creation order. The
// group is the live registry, not a copy.
func (w *World) Sprites() *sprite.Group {
	return w.sprites
}

// Sprite looks up a scene-named sprite. Returns nil if the name is unknown.
func (w *World) Sprite(name string) *sprite.Sprite {
	return w.named[name]
}

// Group returns the named group, creating it empty if it does not exist.
func (w *World) Group(name string) *sprite.Group {
	g, ok := w.groups[name]
	if !ok {
		g = sprite.NewGroup()
		w.groups[name] = g
	}
	return g
}

// Frame returns the number of completed Step calls.
func (w *World) Frame() uint64 {
	return w.frame
}

// Remove unregisters a sprite from the registry and every named group, marks
// it inactive and publishes a SpriteRemoved event.
func (w *World) Remove(s *sprite.Sprite) bool {
	if !w.sprites.Remove(s) {
		return false
	}
	for _, g := range w.groups {
		for g.Remove(s) {
		}
	}
	for name, named := range w.named {
		if named == s {
			delete(w.named, name)
		}
	}
	s.Active = false
	w.Events.Publish(event.NewSpriteEvent(event.SpriteRemoved, w, s.ID()))
	return true
}

// Reset tears the world down: every sprite is deactivated, the registry and
// all named groups are emptied, and the frame counter restarts. Sprite
// references held by the caller stay valid but inactive.
func (w *World) Reset() {
	w.sprites.Each(func(s *sprite.Sprite) {
		s.Active = false
	})
	w.sprites.Clear()
	for _, g := range w.groups {
		g.Clear()
	}
	w.groups = make(map[string]*sprite.Group)
	w.named = make(map[string]*sprite.Sprite)
	w.frame = 0
	w.Events.Publish(&event.BaseEvent{EventType: event.WorldReset, Source: w})
}

// Step advances the simulation by dt seconds: gravity and friction damping
// on movable sprites, then velocity integration for every active sprite.
// Immovable sprites ignore gravity and friction but still integrate, so
// kinematic platforms can be driven by setting their velocity. Collision
// resolution is not part of Step; the caller chooses which pairs to resolve
// and in which mode.
func (w *World) Step(dt float64) {
	w.sprites.Each(func(s *sprite.Sprite) {
		if !s.Active {
			return
		}
		if !s.IsImmovable() {
			s.Velocity = s.Velocity.Add(w.Gravity.Scale(dt))
			s.Velocity = s.Velocity.Scale(1 - w.Friction)
		}
		s.Position = s.Position.Add(s.Velocity.Scale(dt))
	})
	w.frame++
	w.Events.Publish(event.NewStepEvent(event.WorldStepped, w, w.frame, dt))
}
