package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the arena map
const (
	groupLane        = "Lane"
	groupPlayerSpawn = "PlayerSpawn"
	groupEnemySpawn  = "EnemySpawn"
)

// LoadArenaLayout parses a TMX file and returns the arena geometry. It takes
// an fs.FS so callers can pass embed.FS or os.DirFS. Object groups missing
// from the map leave the matching fields zero.
func LoadArenaLayout(fsys fs.FS, tmxPath string) (*ArenaLayout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &ArenaLayout{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		// Only the first object of each group is used
		o := og.Objects[0]
		switch og.Name {
		case groupLane:
			if o.Width <= 0 {
				return nil, fmt.Errorf("%s: lane object %q has no width", tmxPath, o.Name)
			}
			layout.LaneLeft = o.X
			layout.LaneRight = o.X + o.Width
		case groupPlayerSpawn:
			layout.PlayerY = o.Y
		case groupEnemySpawn:
			layout.EnemySpawnY = o.Y
		}
	}

	return layout, nil
}
