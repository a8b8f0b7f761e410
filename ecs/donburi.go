package ecs

import (
	"github.com/phanxgames/spatialgrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for spatialgrid collisions.
// Subscribe to this in your ECS systems to react to hits outside the handler.
var CollisionEventType = events.NewEventType[spatialgrid.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Collisions are published to CollisionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) spatialgrid.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event spatialgrid.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
