package factory

import (
	"math/rand"

	"github.com/automoto/lanestrike/archetypes"
	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewRunData returns the state of a fresh run. The RNG is seeded once per
// arena so a restart continues the same sequence instead of replaying it.
func NewRunData(seed int64, rng *rand.Rand) components.RunData {
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}
	return components.RunData{
		State: cfg.StateIntro,
		Level: 1,
		Gold:  cfg.Economy.StartingGold,
		Seed:  seed,
		Rng:   rng,
	}
}

func CreateRun(ecs *ecs.ECS, seed int64) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)
	components.Run.SetValue(run, NewRunData(seed, nil))
	return run
}
