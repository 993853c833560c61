package assets

import (
	"embed"

	"github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/shared/leveldata"
)

// ArenaMap is the path of the bundled arena inside LevelFS.
const ArenaMap = "levels/arena.tmx"

var (
	//go:embed all:levels
	LevelFS embed.FS
)

// LoadArenaLayout reads the bundled arena map and applies its geometry to
// the global configuration.
func LoadArenaLayout() error {
	layout, err := leveldata.LoadArenaLayout(LevelFS, ArenaMap)
	if err != nil {
		return err
	}
	return config.ApplyArenaLayout(ToConfig(layout))
}

// ToConfig converts a parsed map layout into its configuration form.
func ToConfig(l *leveldata.ArenaLayout) config.ArenaLayout {
	out := config.ArenaLayout{
		Width:       l.MapWidth,
		Height:      l.MapHeight,
		PlayerY:     l.PlayerY,
		EnemySpawnY: l.EnemySpawnY,
	}
	if l.HasLane() {
		out.LaneLeft = l.LaneLeft
		out.LaneRight = l.LaneRight
	}
	return out
}
