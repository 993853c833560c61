// Package leveldata parses the arena layout from a Tiled map.
// It depends on go-tiled only, so the headless frontends can use it too.
package leveldata

// ArenaLayout holds the play field geometry parsed from a TMX file.
type ArenaLayout struct {
	MapWidth  int
	MapHeight int

	// Lane is the strip player and enemies are confined to
	LaneLeft  float64
	LaneRight float64

	// Top edges of the player and of freshly spawned enemies
	PlayerY     float64
	EnemySpawnY float64
}

// HasLane reports whether the map defined a usable lane.
func (l ArenaLayout) HasLane() bool {
	return l.LaneRight > l.LaneLeft
}
