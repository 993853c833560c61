package systems

import (
	"testing"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// step is an exact binary fraction so timers never drift.
const step = 0.125

func newTestArena(t *testing.T, seed int64) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	return NewArena(seed)
}

// enterCombat drives the state machine from Intro into Combat(1)
// without running a combat tick.
func enterCombat(t *testing.T, e *ecs.ECS) {
	t.Helper()
	require.Equal(t, cfg.StateLevelStart, Tick(e, step, cfg.ActionMenuSelect).State)
	Tick(e, step)
	require.Equal(t, cfg.StateCombat, Tick(e, step, cfg.ActionMenuSelect).State)
}

// press taps an action: one tick held, one tick released.
func press(e *ecs.ECS, action cfg.ActionID) Snapshot {
	s := Tick(e, step, action)
	Tick(e, step)
	return s
}

func mustPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := playerEntry(e)
	require.True(t, ok)
	return entry
}

func placeAt(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Y = y
	obj.Update()
}

// placeEnemy creates a motionless normal enemy at x, y.
func placeEnemy(e *ecs.ECS, x, y float64, slot int) *donburi.Entry {
	enemy := factory.CreateEnemy(e, x, cfg.MovementPatrol, 1, slot)
	components.Enemy.Get(enemy).Speed = 0
	placeAt(enemy, x, y)
	return enemy
}

// placeShot creates a bullet whose top-left corner is at x, y.
func placeShot(e *ecs.ECS, owner components.ProjectileOwner, x, y float64, damage int) *donburi.Entry {
	run := GetRun(e)
	player, _ := playerEntry(e)
	shooter := components.Object.Get(player).Object

	var shot *donburi.Entry
	if owner == components.OwnerPlayer {
		shot = factory.CreatePlayerShot(e, shooter, damage, nextSeq(run))
	} else {
		shot = factory.CreateEnemyShot(e, shooter, nextSeq(run))
		components.Projectile.Get(shot).Damage = damage
	}
	placeAt(shot, x, y)
	return shot
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	components.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countEnemies(e *ecs.ECS) int {
	n := 0
	components.Enemy.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

// spaceObjects counts the objects registered in the collision space.
func spaceObjects(e *ecs.ECS) int {
	space := components.Space.Get(components.Space.MustFirst(e.World))
	return len(space.Objects())
}
