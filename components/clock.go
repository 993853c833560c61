package components

import "github.com/yohamta/donburi"

// ClockData carries the simulated time step of the current tick.
type ClockData struct {
	Delta   float64 // seconds
	Elapsed float64 // seconds since the arena was created
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
