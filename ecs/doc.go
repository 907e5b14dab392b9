// Package ecs provides ECS adapters for canopy.
//
// [NewDonburiStore] bridges canopy action events (completed, canceled) into a
// [Donburi] world as typed events. Subscribe to [ActionEventType] in your ECS
// systems to receive them.
//
// [ActorComponent] stores a canopy actor on an entity, and [UpdateActors]
// ticks every such actor, for games that drive actors from ECS systems
// instead of Scene.Tick.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
//	e := ecs.AddActor(world, actor)
//	ecs.UpdateActors(world, dt)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
