package ecs

import (
	"github.com/phanxgames/canopy"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ActionEventType is the Donburi event type for canopy action events.
var ActionEventType = events.NewEventType[canopy.ActionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Action events are published to ActionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) canopy.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event canopy.ActionEvent) {
	ActionEventType.Publish(s.world, event)
}

// ActorData is the component value holding an entity's actor.
type ActorData struct {
	Actor *canopy.Actor
}

// ActorComponent is the Donburi component type for canopy actors.
var ActorComponent = donburi.NewComponentType[ActorData]()

var actorQuery = donburi.NewQuery(filter.Contains(ActorComponent))

// AddActor creates an entity carrying actor and returns it. The actor is
// marked ExternalTick so a Scene holding its node does not tick it too.
func AddActor(world donburi.World, actor *canopy.Actor) donburi.Entity {
	actor.ExternalTick = true
	e := world.Create(ActorComponent)
	ActorComponent.SetValue(world.Entry(e), ActorData{Actor: actor})
	return e
}

// UpdateActors calls Act(dt) on the actor of every entity that has one and
// returns how many were ticked.
func UpdateActors(world donburi.World, dt float64) int {
	n := 0
	actorQuery.Each(world, func(entry *donburi.Entry) {
		data := ActorComponent.Get(entry)
		if data.Actor == nil {
			return
		}
		data.Actor.Act(dt)
		n++
	})
	return n
}
