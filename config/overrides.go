package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the subset of the configuration that may be replaced
// from a YAML file. Every field points at the live global so keys missing
// from the document keep their current value.
type overrideFile struct {
	Arena      *ArenaConfig      `yaml:"arena"`
	Player     *PlayerConfig     `yaml:"player"`
	Enemy      *EnemyConfig      `yaml:"enemy"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Combat     *CombatConfig     `yaml:"combat"`
	Spawn      *SpawnConfig      `yaml:"spawn"`
	Economy    *EconomyConfig    `yaml:"economy"`
	Shop       *ShopConfig       `yaml:"shop"`
	Levels     *[]LevelConfig    `yaml:"levels"`
	Banner     *BannerConfig     `yaml:"banner"`
	Debug      *DebugConfig      `yaml:"debug"`
}

// LoadOverrides decodes a YAML document over the current configuration and
// validates the result.
func LoadOverrides(data []byte) error {
	doc := overrideFile{
		Arena:      &Arena,
		Player:     &Player,
		Enemy:      &Enemy,
		Projectile: &Projectile,
		Combat:     &Combat,
		Spawn:      &Spawn,
		Economy:    &Economy,
		Shop:       &Shop,
		Levels:     &Levels,
		Banner:     &Banner,
		Debug:      &Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config overrides: %w", err)
	}
	for i := range Levels {
		if Levels[i].Movement == "" {
			Levels[i].Movement = MovementPatrol
		}
	}
	return Validate()
}

// LoadOverridesFile reads a YAML override file from disk.
func LoadOverridesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := LoadOverrides(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ArenaLayout carries the play field geometry read from a level map.
type ArenaLayout struct {
	Width, Height       int
	LaneLeft, LaneRight float64
	PlayerY             float64
	EnemySpawnY         float64
}

// ApplyArenaLayout replaces the arena geometry. Zero fields are ignored.
func ApplyArenaLayout(l ArenaLayout) error {
	if l.Width > 0 {
		Arena.Width = l.Width
	}
	if l.Height > 0 {
		Arena.Height = l.Height
	}
	if l.LaneRight > l.LaneLeft {
		Arena.LaneLeft = l.LaneLeft
		Arena.LaneRight = l.LaneRight
	}
	if l.PlayerY > 0 {
		Player.SpawnY = l.PlayerY
	}
	if l.EnemySpawnY > 0 {
		Spawn.SpawnY = l.EnemySpawnY
	}
	return Validate()
}

// Validate checks the configuration for values the simulation cannot run with.
func Validate() error {
	var errs []error

	if Arena.Width <= 0 || Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %dx%d", Arena.Width, Arena.Height))
	}
	if Arena.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("arena cell size must be positive, got %d", Arena.CellSize))
	}
	if Arena.LaneLeft < 0 || Arena.LaneRight > float64(Arena.Width) {
		errs = append(errs, fmt.Errorf("lane %.0f..%.0f lies outside the arena", Arena.LaneLeft, Arena.LaneRight))
	}
	if Arena.LaneRight-Arena.LaneLeft < Player.Width {
		errs = append(errs, errors.New("lane is narrower than the player"))
	}
	if Arena.LaneRight-Arena.LaneLeft < Enemy.BossWidth || Arena.LaneRight-Arena.LaneLeft < Enemy.Width {
		errs = append(errs, errors.New("lane is narrower than an enemy"))
	}
	if Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player max health must be positive, got %d", Player.MaxHealth))
	}
	if Enemy.BaseHealth <= 0 || Enemy.BossMultiplier <= 0 {
		errs = append(errs, errors.New("enemy health and boss multiplier must be positive"))
	}
	if Spawn.MaxActiveEnemies <= 0 {
		errs = append(errs, fmt.Errorf("max active enemies must be positive, got %d", Spawn.MaxActiveEnemies))
	}
	if Combat.InvulnDuration < 0 {
		errs = append(errs, errors.New("invulnerability duration cannot be negative"))
	}
	if Projectile.PlayerSpeed >= 0 {
		errs = append(errs, errors.New("player projectiles must travel up (negative speed)"))
	}
	if Projectile.EnemySpeed <= 0 {
		errs = append(errs, errors.New("enemy projectiles must travel down (positive speed)"))
	}
	if Shop.HealthCost < 0 || Shop.DamageCost < 0 || Shop.SpeedCost < 0 {
		errs = append(errs, errors.New("upgrade costs cannot be negative"))
	}
	if len(Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, l := range Levels {
		if l.EnemyCount <= 0 {
			errs = append(errs, fmt.Errorf("level %d: enemy count must be positive", i+1))
		}
		if l.Movement != MovementPatrol && l.Movement != MovementDescend {
			errs = append(errs, fmt.Errorf("level %d: unknown movement %q", i+1, l.Movement))
		}
	}

	return errors.Join(errs...)
}
