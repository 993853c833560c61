package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the arena.
const Default ecs.LayerID = 0

// ArenaConfig describes the play field. All positions are in pixels with the
// origin at the top-left corner of the window.
type ArenaConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	LaneLeft  float64 `yaml:"laneLeft"`
	LaneRight float64 `yaml:"laneRight"`
	CellSize  int     `yaml:"cellSize"` // resolv broadphase cell size
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnY float64 `yaml:"spawnY"` // top edge of the player while in the lane

	MaxHealth    int     `yaml:"maxHealth"`
	BulletDamage int     `yaml:"bulletDamage"`
	MoveSpeed    float64 `yaml:"moveSpeed"` // pixels per second

	FireCooldown     float64 `yaml:"fireCooldown"` // seconds between shots while Fire is held
	AutoFire         bool    `yaml:"autoFire"`
	AutoFireInterval float64 `yaml:"autoFireInterval"`
}

// EnemyConfig contains enemy and boss configuration
type EnemyConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	BaseHealth int     `yaml:"baseHealth"`
	Speed      float64 `yaml:"speed"` // pixels per second, patrol or descent

	BossWidth      float64 `yaml:"bossWidth"`
	BossHeight     float64 `yaml:"bossHeight"`
	BossMultiplier int     `yaml:"bossMultiplier"`
	BossSpeed      float64 `yaml:"bossSpeed"`

	FireCooldown float64 `yaml:"fireCooldown"` // seconds between broadcast volleys
}

// ProjectileConfig contains bullet dimensions and speeds
type ProjectileConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"playerSpeed"` // negative: travels up
	EnemySpeed  float64 `yaml:"enemySpeed"`  // positive: travels down
}

// CombatConfig contains damage values applied to the player
type CombatConfig struct {
	BulletDamage   int     `yaml:"bulletDamage"`  // enemy bullet hitting the player
	ContactDamage  int     `yaml:"contactDamage"` // enemy body touching the player
	InvulnDuration float64 `yaml:"invulnDuration"`
}

// SpawnConfig contains spawner limits
type SpawnConfig struct {
	MaxActiveEnemies int     `yaml:"maxActiveEnemies"`
	Interval         float64 `yaml:"interval"` // seconds between normal spawns
	SpawnY           float64 `yaml:"spawnY"`   // top edge of freshly spawned enemies
}

// EconomyConfig contains gold values
type EconomyConfig struct {
	StartingGold int `yaml:"startingGold"`
	Bounty       int `yaml:"bounty"`
}

// ShopConfig contains upgrade costs and effects
type ShopConfig struct {
	HealthCost   int        `yaml:"healthCost"`
	HealthBonus  int        `yaml:"healthBonus"`
	DamageCost   int        `yaml:"damageCost"`
	DamageBonus  int        `yaml:"damageBonus"`
	SpeedCost    int        `yaml:"speedCost"`
	SpeedBonus   float64    `yaml:"speedBonus"`
	OverlayColor color.RGBA `yaml:"-"`
}

// MovementMode selects how normal enemies move after spawning
type MovementMode string

const (
	MovementPatrol  MovementMode = "patrol"
	MovementDescend MovementMode = "descend"
)

// LevelConfig describes one level of the run
type LevelConfig struct {
	EnemyCount int          `yaml:"enemyCount"`
	BossName   string       `yaml:"bossName"`
	Movement   MovementMode `yaml:"movement"`
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// BannerConfig contains the level start banner animation
type BannerConfig struct {
	SlideDuration float32 `yaml:"slideDuration"` // seconds for the banner to slide in
	StartY        float32 `yaml:"startY"`
	EndY          float32 `yaml:"endY"`
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64

	BackgroundColor color.RGBA
	LaneColor       color.RGBA
	PlayerColor     color.RGBA
	InvulnColor     color.RGBA
	EnemyColor      color.RGBA
	BossColor       color.RGBA
	PlayerShotColor color.RGBA
	EnemyShotColor  color.RGBA
	TextColor       color.RGBA
	BossTextColor   color.RGBA
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled        bool `yaml:"enabled"`        // enables the hurt key
	HurtAmount     int  `yaml:"hurtAmount"`     // damage dealt by the hurt key
	SkipIntro      bool `yaml:"skipIntro"`      // start directly at level 1
	LogTransitions bool `yaml:"logTransitions"` // log every progression transition
}

// Global configuration instances
var Arena ArenaConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Combat CombatConfig
var Spawn SpawnConfig
var Economy EconomyConfig
var Shop ShopConfig
var Levels []LevelConfig
var Pause PauseConfig
var Banner BannerConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// FinalLevel returns the 1-based number of the last level.
func FinalLevel() int {
	return len(Levels)
}

// LevelAt returns the configuration for a 1-based level number. Out of range
// levels fall back to the closest configured one.
func LevelAt(n int) LevelConfig {
	if len(Levels) == 0 {
		return LevelConfig{Movement: MovementPatrol}
	}
	if n < 1 {
		n = 1
	}
	if n > len(Levels) {
		n = len(Levels)
	}
	return Levels[n-1]
}

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	Arena = ArenaConfig{
		Width:     1200,
		Height:    800,
		LaneLeft:  200,
		LaneRight: 1000,
		CellSize:  20,
	}

	// Speeds are in pixels per second
	Player = PlayerConfig{
		Width:            100,
		Height:           100,
		SpawnY:           650,
		MaxHealth:        5000,
		BulletDamage:     250,
		MoveSpeed:        300,
		FireCooldown:     0.4,
		AutoFire:         false,
		AutoFireInterval: 0.5,
	}

	Enemy = EnemyConfig{
		Width:          100,
		Height:         100,
		BaseHealth:     500,
		Speed:          120,
		BossWidth:      140,
		BossHeight:     140,
		BossMultiplier: 5,
		BossSpeed:      120,
		FireCooldown:   2.0,
	}

	Projectile = ProjectileConfig{
		Width:       10,
		Height:      20,
		PlayerSpeed: -600,
		EnemySpeed:  360,
	}

	Combat = CombatConfig{
		BulletDamage:   200,
		ContactDamage:  200,
		InvulnDuration: 1.0,
	}

	Spawn = SpawnConfig{
		MaxActiveEnemies: 5,
		Interval:         0.75,
		SpawnY:           50,
	}

	Economy = EconomyConfig{
		StartingGold: 0,
		Bounty:       50,
	}

	Shop = ShopConfig{
		HealthCost:   100,
		HealthBonus:  1000,
		DamageCost:   200,
		DamageBonus:  50,
		SpeedCost:    150,
		SpeedBonus:   150,
		OverlayColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
	}

	Levels = []LevelConfig{
		{EnemyCount: 15, BossName: "rrro", Movement: MovementPatrol},
		{EnemyCount: 20, BossName: "IM_Head", Movement: MovementPatrol},
		{EnemyCount: 25, BossName: "syua_yuan_a_pei", Movement: MovementPatrol},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Quit"},
	}

	Banner = BannerConfig{
		SlideDuration: 0.6,
		StartY:        -60,
		EndY:          360,
	}

	HUD = HUDConfig{
		HealthBarWidth:  300,
		HealthBarHeight: 20,
		Margin:          20,
		BackgroundColor: White,
		LaneColor:       Black,
		PlayerColor:     Red,
		InvulnColor:     LightRed,
		EnemyColor:      Blue,
		BossColor:       Magenta,
		PlayerShotColor: Green,
		EnemyShotColor:  Red,
		TextColor:       Black,
		BossTextColor:   Magenta,
		HealthBarBg:     color.RGBA{R: 100, G: 100, B: 100, A: 255},
		HealthBarFg:     color.RGBA{R: 40, G: 220, B: 40, A: 255},
	}

	Debug = DebugConfig{
		Enabled:        false,
		HurtAmount:     10,
		SkipIntro:      false,
		LogTransitions: false,
	}
}
