package systems

import (
	"github.com/automoto/lanestrike/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePurge removes spent bullets and dead enemies once collision
// resolution for the tick is over.
func UpdatePurge(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if components.Projectile.Get(e).Spent {
			toRemove = append(toRemove, e)
		}
	})
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).IsDead() {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

// clearField removes every enemy and projectile, used between levels.
func clearField(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}

// destroyEntity takes an entity out of the collision space and the world.
// Stale or already removed entries are ignored.
func destroyEntity(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}
