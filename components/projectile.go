package components

import (
	"github.com/yohamta/donburi"
)

type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

func (o ProjectileOwner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

type ProjectileData struct {
	Owner     ProjectileOwner
	VelocityY float64 // pixels per second, negative travels up
	Damage    int
	Seq       int  // creation order within the run
	Spent     bool // marked by culling or a hit, purged after collisions
}

var Projectile = donburi.NewComponentType[ProjectileData]()
