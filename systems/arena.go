package systems

import (
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewArena builds the world for one run and registers the simulation
// systems in tick order. Renderers are left to the frontend.
func NewArena(seed int64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(e, cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateRun(e, seed)
	factory.CreatePlayer(e)

	// Singletons
	GetOrCreateClock(e)
	getOrCreateInput(e)
	GetOrCreatePause(e)
	GetOrCreateShop(e)
	GetOrCreateBanner(e)

	// Systems that always run
	e.AddSystem(UpdateInput)
	e.AddSystem(UpdatePause)

	// Simulation, combat only
	e.AddSystem(WithCombatChecks(UpdatePlayer))
	e.AddSystem(WithCombatChecks(UpdateProjectiles))
	e.AddSystem(WithCombatChecks(UpdateEnemies))
	e.AddSystem(WithCombatChecks(UpdateEnemyFire))
	e.AddSystem(WithCombatChecks(UpdateSpawner))
	e.AddSystem(WithCombatChecks(UpdateCollisions))
	e.AddSystem(UpdatePurge)

	e.AddSystem(UpdateProgression)
	e.AddSystem(UpdateBanner)

	if cfg.Debug.SkipIntro {
		BeginLevel(e, 1)
	}

	return e
}

// Tick runs one headless frame with the given actions held down and returns
// the resulting snapshot.
func Tick(e *ecs.ECS, dt float64, actions ...cfg.ActionID) Snapshot {
	QueueInput(e, actions...)
	AdvanceClock(e, dt)
	e.Update()
	return TakeSnapshot(e)
}
