package ecs

import (
	"github.com/phanxgames/wheelie"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DispatchEventType is the Donburi event type for wheelie dispatch events.
// Subscribe to this in your ECS systems to observe inventory gestures.
var DispatchEventType = events.NewEventType[wheelie.DispatchEvent]()

type donburiStore struct {
	world donburi.World
}

var _ wheelie.EventStore = (*donburiStore)(nil)

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Dispatch events are published to DispatchEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) wheelie.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event wheelie.DispatchEvent) {
	DispatchEventType.Publish(s.world, event)
}
