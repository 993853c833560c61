package systems

import (
	"fmt"

	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the health bar, gold, level and kill counter in the
// top-left corner, and the boss name while the boss is alive.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	s := TakeSnapshot(ecs)
	if s.State == cfg.StateIntro {
		return
	}

	margin := float32(cfg.HUD.Margin)
	barW := float32(cfg.HUD.HealthBarWidth)
	barH := float32(cfg.HUD.HealthBarHeight)

	// Background
	vector.FillRect(screen, margin, margin, barW, barH, cfg.HUD.HealthBarBg, false)

	// Current HP
	ratio := float32(0)
	if s.Player.MaxHealth > 0 {
		ratio = float32(s.Player.Health) / float32(s.Player.MaxHealth)
	}
	vector.FillRect(screen, margin, margin, barW*ratio, barH, cfg.HUD.HealthBarFg, false)

	face := fonts.Regular.Get()
	x := int(margin)
	y := int(margin+barH) + 22
	lines := []string{
		fmt.Sprintf("Health: %d/%d", s.Player.Health, s.Player.MaxHealth),
		fmt.Sprintf("Gold: %d", s.Gold),
		fmt.Sprintf("Level: %d/%d", s.Level, s.FinalLevel),
		fmt.Sprintf("Kills: %d/%d", s.Defeated, s.Total),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+i*24, cfg.HUD.TextColor)
	}

	if s.BossName != "" {
		label := "BOSS: " + s.BossName
		text.Draw(screen, label, fonts.Bold.Get(), int(cfg.Arena.LaneRight)+20, int(margin)+24, cfg.HUD.BossTextColor)
	}
}
