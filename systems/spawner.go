package systems

import (
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner ticks the spawn interval, then tries a normal spawn followed
// by the boss trigger.
func UpdateSpawner(ecs *ecs.ECS) {
	run := GetRun(ecs)
	run.SpawnTimer += delta(ecs)
	if run.SpawnTimer > cfg.Spawn.Interval {
		run.SpawnTimer = cfg.Spawn.Interval
	}

	TrySpawn(ecs)
	TrySpawnBoss(ecs)
}

// TrySpawn creates one normal enemy when the level still has enemies to
// send, the active cap has room and the spawn interval has elapsed.
// It returns nil when nothing was spawned.
func TrySpawn(ecs *ecs.ECS) *donburi.Entry {
	run := GetRun(ecs)
	if run.Spawned >= run.EnemiesToSpawn {
		return nil
	}
	if ActiveEnemies(ecs) >= cfg.Spawn.MaxActiveEnemies {
		return nil
	}
	if run.SpawnTimer < cfg.Spawn.Interval {
		return nil
	}

	level := cfg.LevelAt(run.Level)
	span := cfg.Arena.LaneRight - cfg.Arena.LaneLeft - cfg.Enemy.Width
	x := cfg.Arena.LaneLeft + run.Rng.Float64()*span

	direction := 0.0
	if level.Movement == cfg.MovementPatrol {
		direction = 1
		if run.Rng.Intn(2) == 0 {
			direction = -1
		}
	}

	enemy := factory.CreateEnemy(ecs, x, level.Movement, direction, nextSlot(run))
	run.Spawned++
	run.SpawnTimer = 0
	return enemy
}

// TrySpawnBoss creates the level boss once half of the normal enemies
// (integer division) have been spawned. The boss never counts against the
// active cap or the spawn counter.
func TrySpawnBoss(ecs *ecs.ECS) *donburi.Entry {
	run := GetRun(ecs)
	if run.BossSpawned || run.Spawned < run.EnemiesToSpawn/2 {
		return nil
	}

	level := cfg.LevelAt(run.Level)
	boss := factory.CreateBoss(ecs, level.BossName, nextSlot(run))
	run.BossSpawned = true
	run.BossName = level.BossName
	return boss
}
