package systems

import (
	"sort"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances patrolling and descending enemies.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := delta(ecs)

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).IsDead() {
			return
		}
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		switch enemy.Mode {
		case cfg.MovementDescend:
			obj.Y += enemy.Speed * dt
			// Re-enter at the top so the level can still be cleared
			if obj.Y > float64(cfg.Arena.Height) {
				obj.Y = cfg.Spawn.SpawnY
			}
		default:
			patrol(enemy, obj, dt)
		}
		obj.Update()
	})
}

// patrol moves one step and bounces exactly at the lane edges.
func patrol(enemy *components.EnemyData, obj *components.ObjectData, dt float64) {
	obj.X += enemy.Direction * enemy.Speed * dt

	right := cfg.Arena.LaneRight
	left := cfg.Arena.LaneLeft
	if enemy.Direction > 0 && obj.X+obj.W >= right {
		obj.X = right - obj.W
		enemy.Direction = -1
	} else if enemy.Direction < 0 && obj.X <= left {
		obj.X = left
		enemy.Direction = 1
	}
}

// UpdateEnemyFire runs the global volley timer. When it expires every live
// enemy fires one bullet straight down.
func UpdateEnemyFire(ecs *ecs.ECS) {
	run := GetRun(ecs)
	run.EnemyFireTimer += delta(ecs)
	if run.EnemyFireTimer < cfg.Enemy.FireCooldown {
		return
	}
	run.EnemyFireTimer = 0

	shooters := liveEnemies(ecs)
	for _, e := range shooters {
		factory.CreateEnemyShot(ecs, components.Object.Get(e).Object, nextSeq(run))
	}
}

// liveEnemies returns every enemy with health left, ordered by slot.
func liveEnemies(ecs *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Health.Get(e).IsDead() {
			out = append(out, e)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Enemy.Get(out[i]).Slot < components.Enemy.Get(out[j]).Slot
	})
	return out
}

// ActiveEnemies counts live normal enemies. The boss is not part of the cap.
func ActiveEnemies(ecs *ecs.ECS) int {
	n := 0
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Enemy.Get(e).IsBoss() && !components.Health.Get(e).IsDead() {
			n++
		}
	})
	return n
}
