package systems

import (
	"image/color"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena renders the lane and every entity as flat rectangles.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	// Lane borders
	h := float32(cfg.Arena.Height)
	vector.FillRect(screen, float32(cfg.Arena.LaneLeft)-2, 0, 2, h, cfg.HUD.LaneColor, false)
	vector.FillRect(screen, float32(cfg.Arena.LaneRight), 0, 2, h, cfg.HUD.LaneColor, false)

	run := GetRun(ecs)
	if run.State == cfg.StateIntro {
		return
	}

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		c := cfg.HUD.EnemyColor
		if enemy.IsBoss() {
			c = cfg.HUD.BossColor
		}
		fillObject(screen, components.Object.Get(e), c)
		if enemy.IsBoss() {
			drawBossLabel(screen, e, enemy)
		}
	})

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		c := cfg.HUD.PlayerShotColor
		if components.Projectile.Get(e).Owner == components.OwnerEnemy {
			c = cfg.HUD.EnemyShotColor
		}
		fillObject(screen, components.Object.Get(e), c)
	})

	if entry, ok := playerEntry(ecs); ok {
		c := cfg.HUD.PlayerColor
		if components.Player.Get(entry).Invulnerable() {
			c = cfg.HUD.InvulnColor
		}
		fillObject(screen, components.Object.Get(entry), c)
	}
}

func fillObject(screen *ebiten.Image, obj *components.ObjectData, c color.Color) {
	vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
}

func drawBossLabel(screen *ebiten.Image, e *donburi.Entry, enemy *components.EnemyData) {
	obj := components.Object.Get(e)
	hp := components.Health.Get(e)

	text.Draw(screen, enemy.Name, fonts.Small.Get(), int(obj.X), int(obj.Y)-16, cfg.HUD.BossTextColor)

	// Thin health bar under the name
	ratio := float32(hp.Current) / float32(hp.Max)
	vector.FillRect(screen, float32(obj.X), float32(obj.Y)-10, float32(obj.W), 4, cfg.HUD.HealthBarBg, false)
	vector.FillRect(screen, float32(obj.X), float32(obj.Y)-10, float32(obj.W)*ratio, 4, cfg.HUD.BossColor, false)
}
