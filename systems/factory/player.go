package factory

import (
	"github.com/automoto/lanestrike/archetypes"
	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerStartX returns the x that centres the player in the lane.
func PlayerStartX() float64 {
	return (cfg.Arena.LaneLeft+cfg.Arena.LaneRight)/2 - cfg.Player.Width/2
}

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(PlayerStartX(), cfg.Player.SpawnY, cfg.Player.Width, cfg.Player.Height)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		BulletDamage: cfg.Player.BulletDamage,
		MoveSpeed:    cfg.Player.MoveSpeed,
		// First press fires immediately
		FireTimer: cfg.Player.FireCooldown,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})

	return player
}
