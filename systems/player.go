package systems

import (
	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player inside the lane, ticks the invulnerability
// window and fires on cooldown.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	dt := delta(ecs)
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	if player.InvulnTimer > 0 {
		player.InvulnTimer -= dt
		if player.InvulnTimer < 0 {
			player.InvulnTimer = 0
		}
	}

	dir := 0.0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dir--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dir++
	}
	obj.X = clampToLane(obj.X+dir*player.MoveSpeed*dt, obj.W)
	obj.Update()

	updatePlayerFire(ecs, input, player, obj, dt)

	if cfg.Debug.Enabled && GetAction(input, cfg.ActionDebugHurt).JustPressed {
		components.Health.Get(entry).TakeDamage(cfg.Debug.HurtAmount)
	}
}

func updatePlayerFire(ecs *ecs.ECS, input *components.InputData, player *components.PlayerData, obj *components.ObjectData, dt float64) {
	interval := cfg.Player.FireCooldown
	trigger := GetAction(input, cfg.ActionFire).Pressed
	if cfg.Player.AutoFire {
		interval = cfg.Player.AutoFireInterval
		trigger = true
	}

	player.FireTimer += dt
	if !trigger {
		// Hold at "ready" so the next press fires at once
		if player.FireTimer > interval {
			player.FireTimer = interval
		}
		return
	}
	if player.FireTimer < interval {
		return
	}

	player.FireTimer = 0
	factory.CreatePlayerShot(ecs, obj.Object, player.BulletDamage, nextSeq(GetRun(ecs)))
}

// clampToLane keeps an object of width w inside [LaneLeft, LaneRight-w].
func clampToLane(x, w float64) float64 {
	if x < cfg.Arena.LaneLeft {
		return cfg.Arena.LaneLeft
	}
	if x > cfg.Arena.LaneRight-w {
		return cfg.Arena.LaneRight - w
	}
	return x
}
