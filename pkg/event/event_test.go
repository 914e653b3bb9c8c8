// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
}

func TestBaseEvent_GetType_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name      string
		eventType Type
		source    interface{}
	}{
		{
			name:      "SpriteAdded event",
			eventType: SpriteAdded,
			source:    "test_source",
		},
		{
			name:      "CollisionDetected event",
			eventType: CollisionDetected,
			source:    123,
		},
		{
			name:      "Empty source",
			eventType: WorldReset,
			source:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &BaseEvent{
				EventType: tt.eventType,
				Source:    tt.source,
			}

			if event.GetType() != tt.eventType {
				t.Errorf("GetType() = %v, want %v", event.GetType(), tt.eventType)
			}
			if event.GetSource() != tt.source {
				t.Errorf("GetSource() = %v, want %v", event.GetSource(), tt.source)
			}
		})
	}
}

func TestBusPublish_WithSubscribers_CallsAllHandlers(t *testing.T) {
	bus := NewEventBus()
	calls := 0

	bus.Subscribe(CollisionDetected, func(e Event) {
		calls++
	})
	bus.Subscribe(CollisionDetected, func(e Event) {
		calls++
	})

	bus.Publish(NewCollisionEvent(CollisionDetected, nil, "overlap", 1, 2))

	if calls != 2 {
		t.Errorf("handlers called %d times, want 2", calls)
	}
}

func TestBusPublish_NoSubscribers_NoError(t *testing.T) {
	bus := NewEventBus()
	// Publishing with no subscribers must not panic
	bus.Publish(&BaseEvent{EventType: WorldStepped})
}

func TestBusPublish_WrongEventType_HandlersNotCalled(t *testing.T) {
	bus := NewEventBus()
	called := false

	bus.Subscribe(SpriteAdded, func(e Event) {
		called = true
	})

	bus.Publish(&BaseEvent{EventType: SpriteRemoved})

	if called {
		t.Error("handler called for an event type it did not subscribe to")
	}
}

func TestBusUnsubscribe_RemovesHandler(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	handler := func(e Event) {
		calls++
	}

	bus.Subscribe(WorldStepped, handler)
	bus.Unsubscribe(WorldStepped, handler)
	bus.Publish(&BaseEvent{EventType: WorldStepped})

	if calls != 0 {
		t.Errorf("handler called %d times after Unsubscribe, want 0", calls)
	}
}

func TestBusUnsubscribe_UnknownHandler_NoEffect(t *testing.T) {
	bus := NewEventBus()
	calls := 0

	bus.Subscribe(WorldStepped, func(e Event) {
		calls++
	})
	bus.Unsubscribe(WorldStepped, func(e Event) {})
	bus.Unsubscribe(WorldReset, func(e Event) {})
	bus.Publish(&BaseEvent{EventType: WorldStepped})

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}

func TestBusSubscribe_ConcurrentAccess_ThreadSafe(t *testing.T) {
	bus := NewEventBus()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Subscribe(SpriteAdded, func(e Event) {})
			bus.Publish(&BaseEvent{EventType: SpriteAdded})
		}()
	}
	wg.Wait()
}

func TestNewSpriteEvent_ValidParameters_ReturnsCorrectEvent(t *testing.T) {
	event := NewSpriteEvent(SpriteAdded, "world", 42)

	if event.GetType() != SpriteAdded {
		t.Errorf("GetType() = %v, want %v", event.GetType(), SpriteAdded)
	}
	if event.GetSource() != "world" {
		t.Errorf("GetSource() = %v, want world", event.GetSource())
	}
	if event.SpriteID != 42 {
		t.Errorf("SpriteID = %d, want 42", event.SpriteID)
	}
}

func TestNewCollisionEvent_ValidParameters_ReturnsCorrectEvent(t *testing.T) {
	event := NewCollisionEvent(CollisionDetected, "world", "bounce", 7, 9)

	if event.GetType() != CollisionDetected {
		t.Errorf("GetType() = %v, want %v", event.GetType(), CollisionDetected)
	}
	if event.Mode != "bounce" {
		t.Errorf("Mode = %q, want bounce", event.Mode)
	}
	if event.CallerID != 7 || event.CalleeID != 9 {
		t.Errorf("pair = (%d, %d), want (7, 9)", event.CallerID, event.CalleeID)
	}
}

func TestNewStepEvent_ValidParameters_ReturnsCorrectEvent(t *testing.T) {
	event := NewStepEvent(WorldStepped, nil, 100, 0.016)

	if event.Frame != 100 {
		t.Errorf("Frame = %d, want 100", event.Frame)
	}
	if event.DeltaTime != 0.016 {
		t.Errorf("DeltaTime = %v, want 0.016", event.DeltaTime)
	}
}
