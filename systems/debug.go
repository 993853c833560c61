package systems

import (
	"image/color"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space while debug mode is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := debugColor(obj)

		// Draw outline
		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}

// debugColor picks the outline color from the object's resolv tags
func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return color.RGBA{0, 0, 255, 255} // Blue
	case obj.HasTags(tags.ResolvEnemy):
		return color.RGBA{255, 0, 0, 255} // Red
	case obj.HasTags(tags.ResolvPlayerShot):
		return color.RGBA{0, 255, 0, 255} // Green
	case obj.HasTags(tags.ResolvEnemyShot):
		return color.RGBA{255, 128, 0, 255} // Orange
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}
