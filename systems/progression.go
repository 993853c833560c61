package systems

import (
	"log"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgression runs the top-level state machine. It performs at most
// one transition per tick so a single confirm press never skips a screen.
func UpdateProgression(ecs *ecs.ECS) {
	run := GetRun(ecs)
	input := getOrCreateInput(ecs)

	// Quit is honoured in every state, including pause
	if GetAction(input, cfg.ActionQuit).JustPressed {
		run.QuitRequested = true
		return
	}

	confirm := GetAction(input, cfg.ActionMenuSelect).JustPressed

	switch run.State {
	case cfg.StateIntro:
		if confirm {
			BeginLevel(ecs, 1)
		}
	case cfg.StateLevelStart:
		if confirm {
			setState(run, cfg.StateCombat)
		}
	case cfg.StateCombat:
		if GetOrCreatePause(ecs).IsPaused {
			return
		}
		updateCombatOutcome(ecs, run)
	case cfg.StateShop:
		updateShop(ecs, run, input)
	case cfg.StateGameOver, cfg.StateVictory:
		if GetAction(input, cfg.ActionRestart).JustPressed {
			RestartRun(ecs)
		}
	}
}

func updateCombatOutcome(ecs *ecs.ECS, run *components.RunData) {
	entry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	if components.Health.Get(entry).IsDead() {
		setState(run, cfg.StateGameOver)
		return
	}
	if !run.LevelComplete() {
		return
	}
	if run.IsFinalLevel() {
		setState(run, cfg.StateVictory)
		return
	}
	shop := GetOrCreateShop(ecs)
	*shop = components.ShopData{SelectedOption: components.ShopHealth}
	setState(run, cfg.StateShop)
}

// BeginLevel clears the field, arms the counters for level n and shows the
// level banner. Player stats and gold carry over.
func BeginLevel(ecs *ecs.ECS, n int) {
	run := GetRun(ecs)
	clearField(ecs)

	level := cfg.LevelAt(n)
	run.Level = n
	run.EnemiesToSpawn = level.EnemyCount
	run.Spawned = 0
	run.Defeated = 0
	run.BossSpawned = false
	run.BossDefeated = false
	run.BossName = ""
	// First spawn of a level is immediate
	run.SpawnTimer = cfg.Spawn.Interval
	run.EnemyFireTimer = 0

	if entry, ok := playerEntry(ecs); ok {
		player := components.Player.Get(entry)
		player.InvulnTimer = 0
		player.FireTimer = cfg.Player.FireCooldown

		obj := components.Object.Get(entry)
		obj.X = factory.PlayerStartX()
		obj.Y = cfg.Player.SpawnY
		obj.Update()
	}

	pause := GetOrCreatePause(ecs)
	pause.IsPaused = false
	pause.SelectedOption = components.MenuResume

	startBanner(ecs, n)
	setState(run, cfg.StateLevelStart)
}

// RestartRun throws away every per-run value and starts again at level 1.
// The RNG keeps its stream so consecutive runs differ.
func RestartRun(ecs *ecs.ECS) {
	run := GetRun(ecs)
	*run = factory.NewRunData(run.Seed, run.Rng)

	if entry, ok := playerEntry(ecs); ok {
		components.Player.SetValue(entry, components.PlayerData{
			BulletDamage: cfg.Player.BulletDamage,
			MoveSpeed:    cfg.Player.MoveSpeed,
		})
		components.Health.SetValue(entry, components.HealthData{
			Current: cfg.Player.MaxHealth,
			Max:     cfg.Player.MaxHealth,
		})
	}
	*GetOrCreateShop(ecs) = components.ShopData{}

	BeginLevel(ecs, 1)
}

func setState(run *components.RunData, to cfg.GameState) {
	if run.State == to {
		return
	}
	logTransition(run, "%s -> %s", run.State, to)
	run.State = to
}

func logTransition(run *components.RunData, format string, args ...any) {
	if !cfg.Debug.LogTransitions {
		return
	}
	log.Printf("level %d: "+format, append([]any{run.Level}, args...)...)
}
