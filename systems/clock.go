package systems

import (
	"github.com/automoto/lanestrike/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// AdvanceClock sets the step used by every system during the next Update.
// Negative steps are treated as zero.
func AdvanceClock(ecs *ecs.ECS, dt float64) {
	if dt < 0 {
		dt = 0
	}
	clock := GetOrCreateClock(ecs)
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++
}

func delta(ecs *ecs.ECS) float64 {
	return GetOrCreateClock(ecs).Delta
}
