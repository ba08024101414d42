// Package ecs provides ECS adapters for wheelie's dispatch events.
//
// The primary adapter is [NewDonburiStore], which bridges every action a
// screen performs (bulk transfers, throws, quick-equips, scrolls, sorts)
// into a [Donburi] world as typed events. Subscribe to [DispatchEventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	screen.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
