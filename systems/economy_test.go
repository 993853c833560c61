package systems

import (
	"testing"

	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchase(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	tests := []struct {
		name   string
		option components.ShopOption
		gold   int
		want   bool
		check  func(t *testing.T, p components.PlayerData, h components.HealthData)
	}{
		{
			name: "health affordable", option: components.ShopHealth, gold: 100, want: true,
			check: func(t *testing.T, p components.PlayerData, h components.HealthData) {
				assert.Equal(t, 6000, h.Max)
				assert.Equal(t, 6000, h.Current)
			},
		},
		{
			name: "health one short", option: components.ShopHealth, gold: 99, want: false,
			check: func(t *testing.T, p components.PlayerData, h components.HealthData) {
				assert.Equal(t, 5000, h.Max)
				assert.Equal(t, 5000, h.Current)
			},
		},
		{
			name: "damage affordable", option: components.ShopDamage, gold: 450, want: true,
			check: func(t *testing.T, p components.PlayerData, h components.HealthData) {
				assert.Equal(t, 300, p.BulletDamage)
			},
		},
		{
			name: "damage short", option: components.ShopDamage, gold: 199, want: false,
			check: func(t *testing.T, p components.PlayerData, h components.HealthData) {
				assert.Equal(t, 250, p.BulletDamage)
			},
		},
		{
			name: "speed affordable", option: components.ShopSpeed, gold: 150, want: true,
			check: func(t *testing.T, p components.PlayerData, h components.HealthData) {
				assert.Equal(t, 450.0, p.MoveSpeed)
			},
		},
		{
			name: "exit is not a purchase", option: components.ShopExit, gold: 1000, want: false,
		},
		{
			name: "unknown option", option: components.ShopOptionCount, gold: 1000, want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := components.RunData{Gold: tt.gold}
			player := components.PlayerData{BulletDamage: 250, MoveSpeed: 300}
			health := components.HealthData{Current: 5000, Max: 5000}

			cost := 0
			if u, ok := UpgradeFor(tt.option); ok {
				cost = u.Cost
			}

			got := Purchase(&run, &player, &health, tt.option)
			assert.Equal(t, tt.want, got)
			if tt.want {
				assert.Equal(t, tt.gold-cost, run.Gold, "deducts exactly the cost")
			} else {
				assert.Equal(t, tt.gold, run.Gold, "rejected purchases leave gold alone")
			}
			if tt.check != nil {
				tt.check(t, player, health)
			}
		})
	}
}

func TestHealthUpgradeHealsDamagedPlayer(t *testing.T) {
	cfg.Reset()
	run := components.RunData{Gold: 100}
	player := components.PlayerData{}
	health := components.HealthData{Current: 1200, Max: 5000}

	require.True(t, Purchase(&run, &player, &health, components.ShopHealth))
	assert.Equal(t, 6000, health.Max)
	assert.Equal(t, 2200, health.Current)
}

func TestUpgradesFollowConfig(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.Shop.DamageCost = 1

	ups := Upgrades()
	require.Len(t, ups, int(components.ShopOptionCount))
	assert.Equal(t, components.ShopExit, ups[len(ups)-1].Option)
	assert.Equal(t, 1, ups[1].Cost)
	assert.Equal(t, "Bullet damage +50", ups[1].Label)
}

func TestHealthArithmetic(t *testing.T) {
	h := components.HealthData{Current: 500, Max: 500}
	assert.False(t, h.TakeDamage(250))
	assert.True(t, h.TakeDamage(250), "dead exactly at zero")
	assert.True(t, h.TakeDamage(250))
	assert.Equal(t, 0, h.Current)

	h.Heal(9999)
	assert.Equal(t, 500, h.Current)
}
