package components

import (
	"github.com/automoto/lanestrike/config"
	"github.com/yohamta/donburi"
)

type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyBoss
)

func (k EnemyKind) String() string {
	if k == EnemyBoss {
		return "boss"
	}
	return "normal"
}

type EnemyData struct {
	Kind      EnemyKind
	Name      string              // display name, bosses only
	Mode      config.MovementMode // patrol or descend
	Direction float64             // +1 right, -1 left while patrolling
	Speed     float64             // pixels per second

	// Slot is a run-scoped serial handed out at spawn time. It orders
	// resolution when several enemies overlap the same bullet.
	Slot int
}

func (e *EnemyData) IsBoss() bool {
	return e.Kind == EnemyBoss
}

var Enemy = donburi.NewComponentType[EnemyData]()
