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

// CreatePlayerShot spawns an upward bullet centred on the shooter's top edge.
func CreatePlayerShot(ecs *ecs.ECS, shooter *resolv.Object, damage, seq int) *donburi.Entry {
	x := shooter.X + shooter.W/2 - cfg.Projectile.Width/2
	y := shooter.Y
	return createProjectile(ecs, x, y, components.ProjectileData{
		Owner:     components.OwnerPlayer,
		VelocityY: cfg.Projectile.PlayerSpeed,
		Damage:    damage,
		Seq:       seq,
	}, tags.ResolvPlayerShot)
}

// CreateEnemyShot spawns a downward bullet centred on the shooter's bottom edge.
func CreateEnemyShot(ecs *ecs.ECS, shooter *resolv.Object, seq int) *donburi.Entry {
	x := shooter.X + shooter.W/2 - cfg.Projectile.Width/2
	y := shooter.Y + shooter.H
	return createProjectile(ecs, x, y, components.ProjectileData{
		Owner:     components.OwnerEnemy,
		VelocityY: cfg.Projectile.EnemySpeed,
		Damage:    cfg.Combat.BulletDamage,
		Seq:       seq,
	}, tags.ResolvEnemyShot)
}

func createProjectile(ecs *ecs.ECS, x, y float64, data components.ProjectileData, tag string) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Projectile.Width, cfg.Projectile.Height, tag)
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.SetValue(p, data)
	return p
}
