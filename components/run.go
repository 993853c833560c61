package components

import (
	"math/rand"

	"github.com/automoto/lanestrike/config"
	"github.com/yohamta/donburi"
)

// RunData holds every per-run value of the progression state machine.
// It is rebuilt from defaults on restart, nothing here survives a new run.
type RunData struct {
	State config.GameState
	Level int // 1-based

	EnemiesToSpawn int
	Spawned        int // normal enemies created this level
	Defeated       int // normal enemies killed this level
	BossSpawned    bool
	BossDefeated   bool
	BossName       string

	Gold int

	SpawnTimer     float64 // seconds since the last normal spawn
	EnemyFireTimer float64 // seconds since the last enemy volley

	NextSlot int
	NextSeq  int

	QuitRequested bool

	Seed int64
	Rng  *rand.Rand
}

// LevelComplete reports whether every normal enemy of the level is dead and
// the boss, if it appeared, has been killed.
func (r *RunData) LevelComplete() bool {
	if r.Defeated < r.EnemiesToSpawn {
		return false
	}
	return !r.BossSpawned || r.BossDefeated
}

// IsFinalLevel reports whether the current level is the last configured one.
func (r *RunData) IsFinalLevel() bool {
	return r.Level >= config.FinalLevel()
}

var Run = donburi.NewComponentType[RunData]()
