package systems

import (
	"github.com/automoto/lanestrike/components"
	cfg "github.com/automoto/lanestrike/config"
	"github.com/yohamta/donburi/ecs"
)

// updateShop navigates the upgrade list with wrap-around and applies the
// selected entry on confirm. Exit moves on to the next level.
func updateShop(ecs *ecs.ECS, run *components.RunData, input *components.InputData) {
	shop := GetOrCreateShop(ecs)

	numOptions := int(components.ShopOptionCount)
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		shop.SelectedOption = components.ShopOption(
			(int(shop.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		shop.SelectedOption = components.ShopOption(
			(int(shop.SelectedOption) + 1) % numOptions,
		)
	}

	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	if shop.SelectedOption == components.ShopExit {
		BeginLevel(ecs, run.Level+1)
		return
	}

	entry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	bought := Purchase(run, components.Player.Get(entry), components.Health.Get(entry), shop.SelectedOption)
	shop.LastPurchase = shop.SelectedOption
	shop.LastRejected = !bought
	if bought {
		logTransition(run, "bought %d, gold left %d", shop.SelectedOption, run.Gold)
	}
}

// GetOrCreateShop returns the singleton Shop component, creating if needed.
func GetOrCreateShop(ecs *ecs.ECS) *components.ShopData {
	entry, ok := components.Shop.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Shop))
	}
	return components.Shop.Get(entry)
}

// SelectShopOption moves the shop cursor to option, used by pointer-driven
// frontends before they queue a confirm.
func SelectShopOption(ecs *ecs.ECS, option components.ShopOption) {
	if option < 0 || option >= components.ShopOptionCount {
		return
	}
	GetOrCreateShop(ecs).SelectedOption = option
}
