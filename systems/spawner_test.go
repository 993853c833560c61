package systems

import (
	"testing"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnerNeverExceedsActiveCap(t *testing.T) {
	e := newTestArena(t, 42)
	cfg.Enemy.FireCooldown = 1e6
	enterCombat(t, e)

	var s Snapshot
	for i := 0; i < 200; i++ {
		s = Tick(e, step)
		require.LessOrEqual(t, s.ActiveEnemies(), cfg.Spawn.MaxActiveEnemies, "tick %d", i)
		require.LessOrEqual(t, s.Spawned, s.Total)
	}

	assert.Equal(t, 15, s.Total)
	assert.Equal(t, 5, s.Spawned)
	assert.Equal(t, 5, s.ActiveEnemies())
	assert.Equal(t, 10, s.Total-s.Spawned, "ten still waiting behind the cap")
	_, hasBoss := s.Boss()
	assert.False(t, hasBoss, "5 spawned is below the 15/2 threshold")
}

func TestBossSpawnsExactlyOnceAtHalfway(t *testing.T) {
	e := newTestArena(t, 3)
	cfg.Levels = []cfg.LevelConfig{{EnemyCount: 5, BossName: "tiny", Movement: cfg.MovementPatrol}}
	cfg.Spawn.Interval = 2 * step
	cfg.Enemy.FireCooldown = 1e6
	enterCombat(t, e)

	bossTicks := 0
	for i := 0; i < 30; i++ {
		s := Tick(e, step)
		boss, hasBoss := s.Boss()

		if s.Spawned < 5/2 {
			require.False(t, hasBoss, "tick %d: boss before the threshold", i)
			require.Empty(t, s.BossName)
			continue
		}
		require.True(t, hasBoss, "tick %d: boss missing after the threshold", i)
		if bossTicks == 0 {
			assert.Equal(t, 2, s.Spawned, "boss arrives the tick the threshold is reached")
			assert.InDelta(t, 530.0, boss.X, 1e-9, "lane centre")
			assert.Equal(t, cfg.Enemy.BaseHealth*cfg.Enemy.BossMultiplier, boss.Health)
		}
		assert.Equal(t, "tiny", boss.Name)
		assert.Equal(t, "tiny", s.BossName)
		bossTicks++
	}

	assert.Equal(t, 5, GetRun(e).Spawned)
	n := 0
	for _, en := range TakeSnapshot(e).Enemies {
		if en.Kind == components.EnemyBoss {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestBossStartsMovingRight(t *testing.T) {
	e := newTestArena(t, 1)
	run := GetRun(e)
	run.EnemiesToSpawn = 4
	run.Spawned = 2

	boss := TrySpawnBoss(e)
	require.NotNil(t, boss)
	assert.Equal(t, 1.0, components.Enemy.Get(boss).Direction)
	assert.Equal(t, cfg.Spawn.SpawnY, components.Object.Get(boss).Y)
	assert.Nil(t, TrySpawnBoss(e), "once per level")
}

func TestTrySpawnStaysInsideLane(t *testing.T) {
	e := newTestArena(t, 9)
	cfg.Spawn.MaxActiveEnemies = 1000
	run := GetRun(e)
	run.EnemiesToSpawn = 300

	lastSlot := 0
	for i := 0; i < 300; i++ {
		run.SpawnTimer = cfg.Spawn.Interval
		entry := TrySpawn(e)
		require.NotNil(t, entry)

		obj := components.Object.Get(entry)
		enemy := components.Enemy.Get(entry)
		assert.GreaterOrEqual(t, obj.X, cfg.Arena.LaneLeft)
		assert.LessOrEqual(t, obj.X, cfg.Arena.LaneRight-cfg.Enemy.Width)
		assert.Equal(t, cfg.Spawn.SpawnY, obj.Y)
		assert.Contains(t, []float64{-1, 1}, enemy.Direction)
		assert.Greater(t, enemy.Slot, lastSlot)
		lastSlot = enemy.Slot
	}

	run.SpawnTimer = cfg.Spawn.Interval
	assert.Nil(t, TrySpawn(e), "level quota reached")
	assert.Equal(t, 300, run.Spawned)
}

func TestTrySpawnWaitsForInterval(t *testing.T) {
	e := newTestArena(t, 1)
	run := GetRun(e)
	run.EnemiesToSpawn = 5
	run.SpawnTimer = 0

	assert.Nil(t, TrySpawn(e))
	assert.Equal(t, 0, run.Spawned)
}

func TestSpawnSequenceIsSeeded(t *testing.T) {
	positions := func(seed int64) []float64 {
		e := newTestArena(t, seed)
		cfg.Spawn.MaxActiveEnemies = 10
		run := GetRun(e)
		run.EnemiesToSpawn = 10

		var xs []float64
		for i := 0; i < 10; i++ {
			run.SpawnTimer = cfg.Spawn.Interval
			xs = append(xs, components.Object.Get(TrySpawn(e)).X)
		}
		return xs
	}

	assert.Equal(t, positions(5), positions(5))
	assert.NotEqual(t, positions(5), positions(6))
}

func TestDescendLevelsSpawnWithoutDirection(t *testing.T) {
	e := newTestArena(t, 1)
	cfg.Levels = []cfg.LevelConfig{{EnemyCount: 3, BossName: "b", Movement: cfg.MovementDescend}}
	run := GetRun(e)
	run.EnemiesToSpawn = 3
	run.SpawnTimer = cfg.Spawn.Interval

	entry := TrySpawn(e)
	require.NotNil(t, entry)
	assert.Equal(t, cfg.MovementDescend, components.Enemy.Get(entry).Mode)
}
