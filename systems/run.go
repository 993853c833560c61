package systems

import (
	"github.com/automoto/lanestrike/components"
	"github.com/automoto/lanestrike/systems/factory"
	"github.com/automoto/lanestrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetRun returns the singleton Run component, creating a seed-0 run if needed.
func GetRun(ecs *ecs.ECS) *components.RunData {
	entry, ok := components.Run.First(ecs.World)
	if !ok {
		entry = factory.CreateRun(ecs, 0)
	}
	return components.Run.Get(entry)
}

func playerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok || !entry.Valid() {
		return nil, false
	}
	return entry, true
}

func nextSlot(run *components.RunData) int {
	run.NextSlot++
	return run.NextSlot
}

func nextSeq(run *components.RunData) int {
	run.NextSeq++
	return run.NextSeq
}
