package factory

import (
	"github.com/automoto/lanestrike/archetypes"
	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a normal enemy at x on the spawn line. direction is
// ignored for descending enemies.
func CreateEnemy(ecs *ecs.ECS, x float64, mode cfg.MovementMode, direction float64, slot int) *donburi.Entry {
	enemy := spawnEnemy(ecs, x, cfg.Enemy.Width, cfg.Enemy.Height)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:      components.EnemyNormal,
		Mode:      mode,
		Direction: direction,
		Speed:     cfg.Enemy.Speed,
		Slot:      slot,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.BaseHealth,
		Max:     cfg.Enemy.BaseHealth,
	})

	return enemy
}

// BossStartX returns the x that centres the boss in the lane.
func BossStartX() float64 {
	return (cfg.Arena.LaneLeft+cfg.Arena.LaneRight)/2 - cfg.Enemy.BossWidth/2
}

// CreateBoss spawns the level boss at the lane centre, always patrolling and
// starting to the right.
func CreateBoss(ecs *ecs.ECS, name string, slot int) *donburi.Entry {
	boss := spawnEnemy(ecs, BossStartX(), cfg.Enemy.BossWidth, cfg.Enemy.BossHeight)

	hp := cfg.Enemy.BaseHealth * cfg.Enemy.BossMultiplier
	components.Enemy.SetValue(boss, components.EnemyData{
		Kind:      components.EnemyBoss,
		Name:      name,
		Mode:      cfg.MovementPatrol,
		Direction: 1,
		Speed:     cfg.Enemy.BossSpeed,
		Slot:      slot,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: hp,
		Max:     hp,
	})

	return boss
}

func spawnEnemy(ecs *ecs.ECS, x, w, h float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, cfg.Spawn.SpawnY, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	return enemy
}
