package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// completeLevel marks every enemy of the current level, boss included, as dead.
func completeLevel(e *ecs.ECS) {
	run := GetRun(e)
	run.Spawned = run.EnemiesToSpawn
	run.Defeated = run.EnemiesToSpawn
	run.BossSpawned = true
	run.BossDefeated = true
}

func TestIntroToCombat(t *testing.T) {
	e := newTestArena(t, 1)
	assert.Equal(t, cfg.StateIntro, TakeSnapshot(e).State)

	s := Tick(e, step, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.StateLevelStart, s.State)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 15, s.Total)

	// Holding confirm does not skip the level banner
	s = Tick(e, step, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.StateLevelStart, s.State)

	Tick(e, step)
	s = Tick(e, step, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.StateCombat, s.State)
	assert.Empty(t, s.Enemies, "nothing spawns before combat")
}

func TestSkipIntroStartsAtLevelOne(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.Debug.SkipIntro = true

	e := NewArena(1)
	s := TakeSnapshot(e)
	assert.Equal(t, cfg.StateLevelStart, s.State)
	assert.Equal(t, 1, s.Level)
}

func TestBannerSlidesInDuringLevelStart(t *testing.T) {
	e := newTestArena(t, 1)
	s := Tick(e, step, cfg.ActionMenuSelect)
	require.Equal(t, cfg.StateLevelStart, s.State)

	for i := 0; i < 20; i++ {
		s = Tick(e, step)
	}
	assert.Equal(t, cfg.Banner.EndY, s.BannerY)
	assert.True(t, GetOrCreateBanner(e).Done)
	assert.Equal(t, cfg.StateLevelStart, s.State, "the banner never starts combat by itself")
}

func TestShopBetweenLevels(t *testing.T) {
	e := newTestArena(t, 1)
	enterCombat(t, e)

	completeLevel(e)
	GetRun(e).Gold = 250
	s := Tick(e, step)
	require.Equal(t, cfg.StateShop, s.State)
	assert.Equal(t, components.ShopHealth, s.ShopSelection)

	s = press(e, cfg.ActionMenuDown)
	assert.Equal(t, components.ShopDamage, s.ShopSelection)

	press(e, cfg.ActionMenuSelect)
	s = TakeSnapshot(e)
	assert.Equal(t, 50, s.Gold)
	assert.Equal(t, 300, s.Player.BulletDamage)
	assert.False(t, s.ShopRejected)

	// Not enough gold for a second one
	press(e, cfg.ActionMenuSelect)
	s = TakeSnapshot(e)
	assert.Equal(t, 50, s.Gold)
	assert.Equal(t, 300, s.Player.BulletDamage)
	assert.True(t, s.ShopRejected)

	// Wrap-around from the first entry lands on exit
	press(e, cfg.ActionMenuUp)
	s = press(e, cfg.ActionMenuUp)
	assert.Equal(t, components.ShopExit, s.ShopSelection)

	s = press(e, cfg.ActionMenuDown)
	assert.Equal(t, components.ShopHealth, s.ShopSelection, "down from exit wraps to the top")
	s = press(e, cfg.ActionMenuUp)
	require.Equal(t, components.ShopExit, s.ShopSelection)

	s = press(e, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.StateLevelStart, s.State)
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, 20, s.Total)
	assert.Equal(t, 0, s.Spawned)
	assert.Equal(t, 0, s.Defeated)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Projectiles)
	assert.Equal(t, factory.PlayerStartX(), s.Player.X)

	// Stats and gold carry over
	assert.Equal(t, 300, s.Player.BulletDamage)
	assert.Equal(t, 50, s.Gold)
}

func TestLevelNeedsBossDead(t *testing.T) {
	e := newTestArena(t, 1)
	enterCombat(t, e)

	completeLevel(e)
	GetRun(e).BossDefeated = false
	s := Tick(e, step)
	assert.Equal(t, cfg.StateCombat, s.State)
}

func TestFinalLevelEndsInVictory(t *testing.T) {
	e := newTestArena(t, 1)
	BeginLevel(e, cfg.FinalLevel())
	press(e, cfg.ActionMenuSelect)
	require.Equal(t, cfg.StateCombat, TakeSnapshot(e).State)

	completeLevel(e)
	s := Tick(e, step)
	assert.Equal(t, cfg.StateVictory, s.State, "no shop after the final level")

	// Only restart leaves victory
	s = press(e, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.StateVictory, s.State)
	s = press(e, cfg.ActionRestart)
	assert.Equal(t, cfg.StateLevelStart, s.State)
	assert.Equal(t, 1, s.Level)
}

func TestDeathWinsOverLevelComplete(t *testing.T) {
	e := newTestArena(t, 1)
	enterCombat(t, e)

	completeLevel(e)
	components.Health.Get(mustPlayer(t, e)).Current = 0
	assert.Equal(t, cfg.StateGameOver, Tick(e, step).State)
}

func TestRestartAfterGameOverResetsRun(t *testing.T) {
	e := newTestArena(t, 1)
	enterCombat(t, e)

	for i := 0; i < 30; i++ {
		Tick(e, step, cfg.ActionFire)
	}
	player := mustPlayer(t, e)
	components.Player.Get(player).BulletDamage = 999
	components.Player.Get(player).MoveSpeed = 999
	components.Health.Get(player).Max = 9000
	GetRun(e).Gold = 777
	GetRun(e).Level = 2
	components.Health.Get(player).Current = 0

	s := Tick(e, step)
	require.Equal(t, cfg.StateGameOver, s.State)
	require.NotEmpty(t, s.Enemies)

	// Game over is absorbing until restart
	s = press(e, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.StateGameOver, s.State)

	s = press(e, cfg.ActionRestart)
	assert.Equal(t, cfg.StateLevelStart, s.State)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, cfg.Economy.StartingGold, s.Gold)
	assert.Equal(t, cfg.Player.MaxHealth, s.Player.Health)
	assert.Equal(t, cfg.Player.MaxHealth, s.Player.MaxHealth)
	assert.Equal(t, cfg.Player.BulletDamage, s.Player.BulletDamage)
	assert.Equal(t, cfg.Player.MoveSpeed, s.Player.MoveSpeed)
	assert.False(t, s.Player.Invulnerable)
	assert.Empty(t, s.Enemies)
	assert.Empty(t, s.Projectiles)
	assert.Equal(t, 0, s.Spawned)
	assert.Equal(t, 0, s.Defeated)
	assert.Empty(t, s.BossName)
	assert.Equal(t, 1, spaceObjects(e), "only the player is left in the space")
}

func TestPauseFreezesCombat(t *testing.T) {
	e := newTestArena(t, 1)
	enterCombat(t, e)
	for i := 0; i < 4; i++ {
		Tick(e, step)
	}

	paused := Tick(e, step, cfg.ActionPause)
	require.Equal(t, cfg.StatePaused, paused.State)
	require.NotEmpty(t, paused.Enemies)

	for i := 0; i < 10; i++ {
		s := Tick(e, step, cfg.ActionMoveLeft, cfg.ActionFire)
		assert.Equal(t, paused.Enemies, s.Enemies)
		assert.Equal(t, paused.Player, s.Player)
		assert.Equal(t, paused.Projectiles, s.Projectiles)
	}

	s := press(e, cfg.ActionMenuDown)
	assert.Equal(t, components.MenuQuit, s.PauseSelection)
	s = press(e, cfg.ActionMenuDown)
	assert.Equal(t, components.MenuResume, s.PauseSelection, "wraps around")

	s = Tick(e, step, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.StateCombat, s.State)
	assert.False(t, s.QuitRequested)
}

func TestPauseToggleAndQuitOption(t *testing.T) {
	e := newTestArena(t, 1)
	enterCombat(t, e)

	assert.Equal(t, cfg.StatePaused, press(e, cfg.ActionPause).State)
	assert.Equal(t, cfg.StateCombat, press(e, cfg.ActionPause).State)

	press(e, cfg.ActionPause)
	press(e, cfg.ActionMenuUp)
	s := press(e, cfg.ActionMenuSelect)
	assert.True(t, s.QuitRequested)
}

func TestPauseOnlyInCombat(t *testing.T) {
	e := newTestArena(t, 1)
	s := press(e, cfg.ActionPause)
	assert.Equal(t, cfg.StateIntro, s.State)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}

func TestQuitFromAnyState(t *testing.T) {
	for _, state := range []cfg.GameState{cfg.StateIntro, cfg.StateLevelStart, cfg.StateCombat, cfg.StateShop, cfg.StateGameOver, cfg.StateVictory} {
		t.Run(state.String(), func(t *testing.T) {
			e := newTestArena(t, 1)
			GetRun(e).State = state
			s := Tick(e, step, cfg.ActionQuit)
			assert.True(t, s.QuitRequested)
		})
	}
}

func TestRunInvariantsHold(t *testing.T) {
	e := newTestArena(t, 7)
	rng := rand.New(rand.NewSource(7))
	moves := []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionNone}

	states := map[cfg.GameState]bool{}
	for i := 0; i < 6000; i++ {
		s := TakeSnapshot(e)
		states[s.State] = true

		var actions []cfg.ActionID
		tap := i%2 == 0
		switch s.State {
		case cfg.StateIntro, cfg.StateLevelStart:
			if tap {
				actions = append(actions, cfg.ActionMenuSelect)
			}
		case cfg.StateShop:
			if tap && s.ShopSelection != components.ShopExit {
				actions = append(actions, cfg.ActionMenuUp)
			} else if tap {
				actions = append(actions, cfg.ActionMenuSelect)
			}
		case cfg.StateGameOver, cfg.StateVictory:
			if tap {
				actions = append(actions, cfg.ActionRestart)
			}
		default:
			actions = append(actions, cfg.ActionFire, moves[rng.Intn(len(moves))])
		}

		s = Tick(e, 1.0/60, actions...)
		require.LessOrEqual(t, s.Defeated, s.Spawned, "tick %d", i)
		require.LessOrEqual(t, s.Spawned, s.Total, "tick %d", i)
		require.LessOrEqual(t, s.ActiveEnemies(), cfg.Spawn.MaxActiveEnemies, "tick %d", i)
		require.GreaterOrEqual(t, s.Player.Health, 0)
		require.LessOrEqual(t, s.Player.Health, s.Player.MaxHealth)
		require.GreaterOrEqual(t, s.Player.X, cfg.Arena.LaneLeft)
		require.LessOrEqual(t, s.Player.X, cfg.Arena.LaneRight-cfg.Player.Width)
		require.False(t, s.QuitRequested)
	}
	assert.True(t, states[cfg.StateCombat])
}
