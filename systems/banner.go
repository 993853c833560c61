package systems

import (
	"fmt"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateBanner returns the singleton Banner component, creating if needed.
func GetOrCreateBanner(ecs *ecs.ECS) *components.BannerData {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Banner))
		components.Banner.SetValue(entry, components.BannerData{Y: cfg.Banner.StartY, Done: true})
	}
	return components.Banner.Get(entry)
}

func startBanner(ecs *ecs.ECS, level int) {
	banner := GetOrCreateBanner(ecs)
	banner.Tween = gween.New(cfg.Banner.StartY, cfg.Banner.EndY, cfg.Banner.SlideDuration, ease.OutCubic)
	banner.Y = cfg.Banner.StartY
	banner.Level = level
	banner.Done = false
}

// UpdateBanner advances the level banner tween. It is purely visual and
// never changes the run state.
func UpdateBanner(ecs *ecs.ECS) {
	banner := GetOrCreateBanner(ecs)
	if banner.Done || banner.Tween == nil {
		return
	}
	y, finished := banner.Tween.Update(float32(delta(ecs)))
	banner.Y = y
	banner.Done = finished
}

// DrawBanner renders the level banner while waiting for the player to start.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	run := GetRun(ecs)
	if run.State != cfg.StateLevelStart {
		return
	}
	banner := GetOrCreateBanner(ecs)
	width := float64(screen.Bounds().Dx())

	title := fmt.Sprintf("LEVEL %d", banner.Level)
	text.Draw(screen, title, fonts.Title.Get(), centeredX(width, title, 30), int(banner.Y), cfg.HUD.TextColor)

	if banner.Done {
		hint := fmt.Sprintf("%d enemies and %s await. Press Enter", run.EnemiesToSpawn, cfg.LevelAt(run.Level).BossName)
		text.Draw(screen, hint, fonts.Regular.Get(), centeredX(width, hint, 9), int(banner.Y)+50, cfg.HUD.TextColor)
	}
}
