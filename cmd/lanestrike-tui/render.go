package main

import (
	"fmt"

	"github.com/automoto/lanestrike/components"
	"github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault = tcell.StyleDefault
	styleLane    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleInvuln  = tcell.StyleDefault.Foreground(tcell.ColorRed).Dim(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleMyShot  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTheirs  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleSelect  = tcell.StyleDefault.Reverse(true)
)

// grid maps arena pixels onto terminal cells. Row 0 is the status line and
// the last row carries key hints.
type grid struct {
	cols, rows int
}

func (g grid) col(x float64) int {
	return int(x * float64(g.cols) / float64(config.Arena.Width))
}

func (g grid) row(y float64) int {
	return 1 + int(y*float64(g.rows-2)/float64(config.Arena.Height))
}

func draw(screen tcell.Screen, s systems.Snapshot) {
	screen.Clear()
	cols, rows := screen.Size()
	if cols <= 0 || rows < 4 {
		return
	}
	g := grid{cols: cols, rows: rows}

	switch s.State {
	case config.StateIntro:
		drawCentered(screen, g, rows/2-1, "LANE STRIKE", styleTitle)
		drawCentered(screen, g, rows/2+1, "Press Enter to start", styleDefault)
		drawHint(screen, g, "arrows/ad: move  space: fire  esc: pause  q: quit")
		return
	case config.StateShop:
		drawShop(screen, g, s)
		return
	}

	drawField(screen, g, s)
	drawStatus(screen, g, s)

	switch s.State {
	case config.StateLevelStart:
		drawCentered(screen, g, rows/2, fmt.Sprintf("LEVEL %d  -  Press Enter", s.Level), styleTitle)
	case config.StatePaused:
		drawPauseMenu(screen, g, s)
	case config.StateGameOver:
		drawCentered(screen, g, rows/2, "GAME OVER  -  r: restart  q: quit", styleTitle)
	case config.StateVictory:
		drawCentered(screen, g, rows/2, "VICTORY!  -  r: restart  q: quit", styleTitle)
	}
	drawHint(screen, g, "arrows/ad: move  space: fire  esc: pause  q: quit")
}

func drawField(screen tcell.Screen, g grid, s systems.Snapshot) {
	left, right := g.col(config.Arena.LaneLeft), g.col(config.Arena.LaneRight)
	for y := 1; y < g.rows-1; y++ {
		screen.SetContent(left, y, '|', nil, styleLane)
		if right < g.cols {
			screen.SetContent(right, y, '|', nil, styleLane)
		}
	}

	for _, e := range s.Enemies {
		if e.Kind == components.EnemyBoss {
			fillRect(screen, g, e.Rect, 'B', styleBoss)
			drawText(screen, g.col(e.X), g.row(e.Y)-1, e.Name, styleBoss)
			continue
		}
		fillRect(screen, g, e.Rect, 'E', styleEnemy)
	}

	for _, p := range s.Projectiles {
		if p.Owner == components.OwnerPlayer {
			fillRect(screen, g, p.Rect, '|', styleMyShot)
		} else {
			fillRect(screen, g, p.Rect, '!', styleTheirs)
		}
	}

	style := stylePlayer
	if s.Player.Invulnerable {
		style = styleInvuln
	}
	fillRect(screen, g, s.Player.Rect, 'A', style)
}

// fillRect covers every cell the rect touches, at least one.
func fillRect(screen tcell.Screen, g grid, r systems.Rect, ch rune, style tcell.Style) {
	x0, y0 := g.col(r.X), g.row(r.Y)
	x1, y1 := g.col(r.X+r.W), g.row(r.Y+r.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1 && y < g.rows-1; y++ {
		if y < 1 {
			continue
		}
		for x := x0; x < x1 && x < g.cols; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func drawStatus(screen tcell.Screen, g grid, s systems.Snapshot) {
	status := fmt.Sprintf("Health %d/%d  Gold %d  Level %d/%d  Kills %d/%d",
		s.Player.Health, s.Player.MaxHealth, s.Gold, s.Level, s.FinalLevel, s.Defeated, s.Total)
	if s.BossName != "" {
		status += "  BOSS " + s.BossName
	}
	drawText(screen, 0, 0, status, styleDefault)
}

func drawPauseMenu(screen tcell.Screen, g grid, s systems.Snapshot) {
	mid := g.rows / 2
	drawCentered(screen, g, mid-2, "PAUSED", styleTitle)
	for i, option := range config.Pause.MenuOptions {
		style := styleDefault
		if components.PauseMenuOption(i) == s.PauseSelection {
			style = styleSelect
		}
		drawCentered(screen, g, mid+i, option, style)
	}
}

func drawShop(screen tcell.Screen, g grid, s systems.Snapshot) {
	top := g.rows/2 - 4
	drawCentered(screen, g, top, fmt.Sprintf("LEVEL %d CLEARED", s.Level), styleTitle)
	drawCentered(screen, g, top+1, fmt.Sprintf("Gold: %d", s.Gold), styleDefault)

	for i, u := range systems.Upgrades() {
		label := u.Label
		if u.Cost > 0 {
			label = fmt.Sprintf("%s (%d gold)", u.Label, u.Cost)
		}
		style := styleDefault
		if u.Option == s.ShopSelection {
			style = styleSelect
		}
		drawCentered(screen, g, top+3+i, label, style)
	}
	if s.ShopRejected {
		drawCentered(screen, g, top+8, "Not enough gold", styleTheirs)
	}
	drawHint(screen, g, "up/down: choose  enter: buy  q: quit")
}

func drawHint(screen tcell.Screen, g grid, hint string) {
	drawText(screen, 0, g.rows-1, hint, styleLane)
}

func drawCentered(screen tcell.Screen, g grid, y int, s string, style tcell.Style) {
	x := (g.cols - len(s)) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, s, style)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
