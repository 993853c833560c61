package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData drives the sliding "Level N" banner shown before combat.
type BannerData struct {
	Tween *gween.Tween
	Y     float32
	Level int // level the tween was started for
	Done  bool
}

var Banner = donburi.NewComponentType[BannerData]()
