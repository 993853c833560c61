package systems

import (
	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every bullet and marks the ones that left the
// field as spent.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := delta(ecs)
	height := float64(cfg.Arena.Height)

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Spent {
			return
		}
		obj := components.Object.Get(e)

		obj.Y += p.VelocityY * dt
		obj.Update()

		if obj.Y+obj.H < 0 || obj.Y > height {
			p.Spent = true
		}
	})
}
