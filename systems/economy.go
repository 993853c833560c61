package systems

import (
	"fmt"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
)

// Upgrade is one entry of the between-level shop.
type Upgrade struct {
	Option components.ShopOption
	Label  string
	Cost   int
	apply  func(p *components.PlayerData, h *components.HealthData)
}

// Upgrades returns the shop menu in display order, built from config.Shop.
// The last entry leaves the shop and costs nothing.
func Upgrades() []Upgrade {
	return []Upgrade{
		{
			Option: components.ShopHealth,
			Label:  fmt.Sprintf("Max health +%d", cfg.Shop.HealthBonus),
			Cost:   cfg.Shop.HealthCost,
			apply: func(_ *components.PlayerData, h *components.HealthData) {
				h.Max += cfg.Shop.HealthBonus
				h.Heal(cfg.Shop.HealthBonus)
			},
		},
		{
			Option: components.ShopDamage,
			Label:  fmt.Sprintf("Bullet damage +%d", cfg.Shop.DamageBonus),
			Cost:   cfg.Shop.DamageCost,
			apply: func(p *components.PlayerData, _ *components.HealthData) {
				p.BulletDamage += cfg.Shop.DamageBonus
			},
		},
		{
			Option: components.ShopSpeed,
			Label:  fmt.Sprintf("Move speed +%.0f", cfg.Shop.SpeedBonus),
			Cost:   cfg.Shop.SpeedCost,
			apply: func(p *components.PlayerData, _ *components.HealthData) {
				p.MoveSpeed += cfg.Shop.SpeedBonus
			},
		},
		{
			Option: components.ShopExit,
			Label:  "Next level",
		},
	}
}

// UpgradeFor looks up the menu entry for option.
func UpgradeFor(option components.ShopOption) (Upgrade, bool) {
	for _, u := range Upgrades() {
		if u.Option == option {
			return u, true
		}
	}
	return Upgrade{}, false
}

// Purchase buys option when the run can afford it. Insufficient gold, the
// exit entry and unknown options are silent no-ops that return false.
func Purchase(run *components.RunData, player *components.PlayerData, health *components.HealthData, option components.ShopOption) bool {
	u, ok := UpgradeFor(option)
	if !ok || u.apply == nil {
		return false
	}
	if run.Gold < u.Cost {
		return false
	}
	run.Gold -= u.Cost
	u.apply(player, health)
	return true
}

// onEnemyKilled pays the bounty. Only normal enemies count toward the
// level's defeated counter; the boss only marks itself defeated.
func onEnemyKilled(run *components.RunData, enemy *components.EnemyData) {
	run.Gold += cfg.Economy.Bounty
	if enemy.IsBoss() {
		run.BossDefeated = true
		return
	}
	run.Defeated++
}
