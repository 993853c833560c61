package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems"
	"github.com/automoto/lanestrike/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the whole game. Level flow lives in the ECS progression
// system, so this is the only scene.
type ArenaScene struct {
	ecs    *ecs.ECS
	shopUI *ui.ShopUI
	seed   int64
	last   systems.Snapshot
	once   sync.Once
}

// NewArenaScene creates the arena scene for a seeded run
func NewArenaScene(seed int64) *ArenaScene {
	return &ArenaScene{seed: seed}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	// Shop clicks queue their confirm before the keyboard is polled
	if as.last.State == cfg.StateShop {
		as.shopUI.Update(as.last)
	}

	systems.PollInput(as.ecs)
	systems.AdvanceClock(as.ecs, 1/float64(ebiten.TPS()))
	as.ecs.Update()
	as.last = systems.TakeSnapshot(as.ecs)
}

// QuitRequested reports whether the player asked to leave the game
func (as *ArenaScene) QuitRequested() bool {
	return as.last.QuitRequested
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	if as.last.State == cfg.StateShop {
		as.shopUI.UI.Draw(screen)
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := systems.NewArena(as.seed)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawBanner)
	e.AddRenderer(cfg.Default, systems.DrawScreens)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	as.ecs = e
	as.shopUI = ui.NewShopUI(as.chooseUpgrade)
	as.last = systems.TakeSnapshot(e)
}

func (as *ArenaScene) chooseUpgrade(option components.ShopOption) {
	systems.SelectShopOption(as.ecs, option)
	systems.QueueInput(as.ecs, cfg.ActionMenuSelect)
}
