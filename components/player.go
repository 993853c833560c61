package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	BulletDamage int
	MoveSpeed    float64 // pixels per second
	InvulnTimer  float64 // seconds of contact immunity left
	FireTimer    float64 // seconds since the last shot
}

// Invulnerable reports whether contact damage is currently ignored.
func (p *PlayerData) Invulnerable() bool {
	return p.InvulnTimer > 0
}

var Player = donburi.NewComponentType[PlayerData]()
