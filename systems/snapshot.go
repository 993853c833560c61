package systems

import (
	"sort"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Rect struct {
	X, Y, W, H float64
}

type PlayerView struct {
	Rect
	Health       int
	MaxHealth    int
	Invulnerable bool
	BulletDamage int
	MoveSpeed    float64
}

type ProjectileView struct {
	Rect
	Owner components.ProjectileOwner
}

type EnemyView struct {
	Rect
	Kind      components.EnemyKind
	Name      string
	Health    int
	MaxHealth int
	Slot      int
}

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	State      cfg.GameState
	Level      int
	FinalLevel int
	Gold       int

	Defeated int
	Spawned  int
	Total    int
	BossName string // set while the boss is alive

	Player      PlayerView
	Projectiles []ProjectileView // creation order
	Enemies     []EnemyView      // slot order

	ShopSelection  components.ShopOption
	ShopRejected   bool
	PauseSelection components.PauseMenuOption
	BannerY        float32

	QuitRequested bool
}

// ActiveEnemies counts the normal enemies in the snapshot.
func (s Snapshot) ActiveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if e.Kind == components.EnemyNormal {
			n++
		}
	}
	return n
}

// Boss returns the boss view, if the boss is on the field.
func (s Snapshot) Boss() (EnemyView, bool) {
	for _, e := range s.Enemies {
		if e.Kind == components.EnemyBoss {
			return e, true
		}
	}
	return EnemyView{}, false
}

func TakeSnapshot(ecs *ecs.ECS) Snapshot {
	run := GetRun(ecs)
	pause := GetOrCreatePause(ecs)
	shop := GetOrCreateShop(ecs)

	s := Snapshot{
		State:          run.State,
		Level:          run.Level,
		FinalLevel:     cfg.FinalLevel(),
		Gold:           run.Gold,
		Defeated:       run.Defeated,
		Spawned:        run.Spawned,
		Total:          run.EnemiesToSpawn,
		ShopSelection:  shop.SelectedOption,
		ShopRejected:   shop.LastRejected,
		PauseSelection: pause.SelectedOption,
		BannerY:        GetOrCreateBanner(ecs).Y,
		QuitRequested:  run.QuitRequested,
	}
	if run.State == cfg.StateCombat && pause.IsPaused {
		s.State = cfg.StatePaused
	}
	if run.BossSpawned && !run.BossDefeated {
		s.BossName = run.BossName
	}

	if entry, ok := playerEntry(ecs); ok {
		player := components.Player.Get(entry)
		health := components.Health.Get(entry)
		s.Player = PlayerView{
			Rect:         rectOf(entry),
			Health:       health.Current,
			MaxHealth:    health.Max,
			Invulnerable: player.Invulnerable(),
			BulletDamage: player.BulletDamage,
			MoveSpeed:    player.MoveSpeed,
		}
	}

	for _, e := range liveProjectiles(ecs) {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			Rect:  rectOf(e),
			Owner: components.Projectile.Get(e).Owner,
		})
	}

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		health := components.Health.Get(e)
		s.Enemies = append(s.Enemies, EnemyView{
			Rect:      rectOf(e),
			Kind:      enemy.Kind,
			Name:      enemy.Name,
			Health:    health.Current,
			MaxHealth: health.Max,
			Slot:      enemy.Slot,
		})
	})
	sort.Slice(s.Enemies, func(i, j int) bool { return s.Enemies[i].Slot < s.Enemies[j].Slot })

	return s
}

func rectOf(e *donburi.Entry) Rect {
	obj := components.Object.Get(e)
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
