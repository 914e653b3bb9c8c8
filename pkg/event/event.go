// pkg/event/event.go
package event

import (
	"reflect"
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	SpriteAdded       Type = "sprite_added"
	SpriteRemoved     Type = "sprite_removed"
	CollisionDetected Type = "collision_detected"
	SpriteDisplaced   Type = "sprite_displaced"
	SpriteBounced     Type = "sprite_bounced"
	WorldStepped      Type = "world_stepped"
	WorldReset        Type = "world_reset"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Unsubscribe removes a previously registered handler for an event type.
// Handlers are matched by function identity.
func (b *Bus) Unsubscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.handlers[eventType]
	if !ok {
		return
	}

	target := reflect.ValueOf(handler).Pointer()
	for i, h := range handlers {
		if reflect.ValueOf(h).Pointer() == target {
			b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	// Call each handler
	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// SpriteEvent contains information about sprite lifecycle events
type SpriteEvent struct {
	BaseEvent
	SpriteID uint64
}

// NewSpriteEvent creates a new sprite lifecycle event
func NewSpriteEvent(eventType Type, source interface{}, spriteID uint64) *SpriteEvent {
	return &SpriteEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		SpriteID: spriteID,
	}
}

// CollisionEvent contains information about a resolved collision pair
type CollisionEvent struct {
	BaseEvent
	Mode     string
	CallerID uint64
	CalleeID uint64
}

// NewCollisionEvent creates a new collision event for one reported pair
func NewCollisionEvent(eventType Type, source interface{}, mode string, callerID, calleeID uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Mode:     mode,
		CallerID: callerID,
		CalleeID: calleeID,
	}
}

// StepEvent contains information about a completed world frame
type StepEvent struct {
	BaseEvent
	Frame     uint64
	DeltaTime float64
}

// NewStepEvent creates a new frame step event
func NewStepEvent(eventType Type, source interface{}, frame uint64, deltaTime float64) *StepEvent {
	return &StepEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Frame:     frame,
		DeltaTime: deltaTime,
	}
}
