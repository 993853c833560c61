package systems

import (
	"testing"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/stretchr/testify/assert"
)

func playerShots(s Snapshot) int {
	n := 0
	for _, p := range s.Projectiles {
		if p.Owner == components.OwnerPlayer {
			n++
		}
	}
	return n
}

func TestPlayerMovesAndClampsToLane(t *testing.T) {
	e := newTestArena(t, 1)
	cfg.Enemy.FireCooldown = 1e6
	enterCombat(t, e)

	start := TakeSnapshot(e).Player.X
	s := Tick(e, step, cfg.ActionMoveRight)
	assert.InDelta(t, start+cfg.Player.MoveSpeed*step, s.Player.X, 1e-9)

	for i := 0; i < 100; i++ {
		s = Tick(e, step, cfg.ActionMoveRight)
	}
	assert.Equal(t, cfg.Arena.LaneRight-cfg.Player.Width, s.Player.X)

	for i := 0; i < 100; i++ {
		s = Tick(e, step, cfg.ActionMoveLeft)
	}
	assert.Equal(t, cfg.Arena.LaneLeft, s.Player.X)

	// Both directions cancel out
	s = Tick(e, step, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	assert.Equal(t, cfg.Arena.LaneLeft, s.Player.X)
}

func TestHeldFireRespectsCooldown(t *testing.T) {
	e := newTestArena(t, 1)
	cfg.Player.FireCooldown = 4 * step
	enterCombat(t, e)

	var s Snapshot
	for i := 0; i < 5; i++ {
		s = Tick(e, step, cfg.ActionFire)
	}
	assert.Equal(t, 2, playerShots(s), "first press fires, then every four ticks")
	assert.Equal(t, cfg.Player.BulletDamage, components.Projectile.Get(liveProjectiles(e)[0]).Damage)
}

func TestAutoFireNeedsNoInput(t *testing.T) {
	e := newTestArena(t, 1)
	cfg.Player.AutoFire = true
	cfg.Player.AutoFireInterval = 4 * step
	enterCombat(t, e)

	var s Snapshot
	for i := 0; i < 5; i++ {
		s = Tick(e, step)
	}
	assert.Equal(t, 2, playerShots(s))
}

func TestNoFireOutsideCombat(t *testing.T) {
	e := newTestArena(t, 1)
	s := Tick(e, step, cfg.ActionFire)
	assert.Equal(t, cfg.StateIntro, s.State)
	assert.Empty(t, s.Projectiles)
}

func TestDebugHurtKey(t *testing.T) {
	e := newTestArena(t, 1)
	enterCombat(t, e)

	s := Tick(e, step, cfg.ActionDebugHurt)
	assert.Equal(t, cfg.Player.MaxHealth, s.Player.Health, "disabled by default")

	cfg.Debug.Enabled = true
	Tick(e, step)
	s = Tick(e, step, cfg.ActionDebugHurt)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Debug.HurtAmount, s.Player.Health)
}
