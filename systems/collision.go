package systems

import (
	"sort"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/automoto/lanestrike/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves the three populations in a fixed order:
// player bullets against enemies, enemy bullets against the player, then
// enemy bodies against the player. Nothing is removed here; spent bullets
// and dead enemies are purged afterwards by UpdatePurge.
func UpdateCollisions(ecs *ecs.ECS) {
	player, ok := playerEntry(ecs)
	if !ok {
		return
	}
	run := GetRun(ecs)
	shots := liveProjectiles(ecs)

	for _, shot := range shots {
		if components.Projectile.Get(shot).Owner == components.OwnerPlayer {
			resolvePlayerShot(run, shot)
		}
	}
	for _, shot := range shots {
		if components.Projectile.Get(shot).Owner == components.OwnerEnemy {
			resolveEnemyShot(player, shot)
		}
	}
	resolveContact(player)
}

func resolvePlayerShot(run *components.RunData, shot *donburi.Entry) {
	p := components.Projectile.Get(shot)
	target := firstEnemyHit(components.Object.Get(shot))
	if target == nil {
		return
	}

	// One bullet, one enemy
	p.Spent = true
	if components.Health.Get(target).TakeDamage(p.Damage) {
		onEnemyKilled(run, components.Enemy.Get(target))
	}
}

func resolveEnemyShot(player, shot *donburi.Entry) {
	p := components.Projectile.Get(shot)
	obj := components.Object.Get(shot)

	check := obj.Check(0, 0, tags.ResolvPlayer)
	if check == nil {
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvPlayer) {
		if o != components.Object.Get(player).Object || !obj.OverlapsBox(o) {
			continue
		}
		// Bullets ignore the invulnerability window
		p.Spent = true
		components.Health.Get(player).TakeDamage(p.Damage)
		return
	}
}

// resolveContact applies at most one body hit per tick and only while the
// player is not invulnerable. The enemy survives the contact.
func resolveContact(player *donburi.Entry) {
	data := components.Player.Get(player)
	if data.Invulnerable() {
		return
	}
	if firstEnemyHit(components.Object.Get(player)) == nil {
		return
	}
	components.Health.Get(player).TakeDamage(cfg.Combat.ContactDamage)
	data.InvulnTimer = cfg.Combat.InvulnDuration
}

// firstEnemyHit returns the live enemy with the lowest slot whose box
// overlaps obj, or nil.
func firstEnemyHit(obj *components.ObjectData) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	var best *donburi.Entry
	bestSlot := 0
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		if components.Health.Get(entry).IsDead() || !obj.OverlapsBox(o) {
			continue
		}
		slot := components.Enemy.Get(entry).Slot
		if best == nil || slot < bestSlot {
			best, bestSlot = entry, slot
		}
	}
	return best
}

// liveProjectiles returns unspent bullets in creation order.
func liveProjectiles(ecs *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Projectile.Get(e).Spent {
			out = append(out, e)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Projectile.Get(out[i]).Seq < components.Projectile.Get(out[j]).Seq
	})
	return out
}
