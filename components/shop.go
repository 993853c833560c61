package components

import "github.com/yohamta/donburi"

// ShopOption represents the entries of the between-level shop
type ShopOption int

const (
	ShopHealth ShopOption = iota
	ShopDamage
	ShopSpeed
	ShopExit
	ShopOptionCount
)

// ShopData stores the shop cursor and the outcome of the last purchase
type ShopData struct {
	SelectedOption ShopOption
	LastPurchase   ShopOption
	LastRejected   bool // previous confirm was refused for lack of gold
}

var Shop = donburi.NewComponentType[ShopData]()
