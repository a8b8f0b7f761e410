// Package ecs provides ECS adapters for spatialgrid's collision dispatch.
//
// The primary adapter is [NewDonburiSink], which forwards every collision a
// [spatialgrid.World] dispatches into a [Donburi] world as a typed event.
// Subscribe to [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	grid.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
