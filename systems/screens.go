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

// DrawScreens renders the intro, game over and victory overlays.
func DrawScreens(ecs *ecs.ECS, screen *ebiten.Image) {
	run := GetRun(ecs)

	var title, subtitle string
	switch run.State {
	case cfg.StateIntro:
		title = "LANE STRIKE"
		subtitle = "Press Enter to start"
	case cfg.StateGameOver:
		title = "GAME OVER"
		subtitle = fmt.Sprintf("Reached level %d with %d gold. Press R to restart", run.Level, run.Gold)
	case cfg.StateVictory:
		title = "VICTORY"
		subtitle = fmt.Sprintf("All %d levels cleared with %d gold. Press R to play again", cfg.FinalLevel(), run.Gold)
	default:
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if run.State != cfg.StateIntro {
		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)
	}

	textColor := cfg.HUD.TextColor
	if run.State != cfg.StateIntro {
		textColor = cfg.White
	}
	text.Draw(screen, title, fonts.Title.Get(), centeredX(width, title, 30), int(height/2)-20, textColor)
	text.Draw(screen, subtitle, fonts.Regular.Get(), centeredX(width, subtitle, 9), int(height/2)+30, textColor)
	text.Draw(screen, "Q: Quit", fonts.Small.Get(), centeredX(width, "Q: Quit", 7), int(height)-12, textColor)
}
