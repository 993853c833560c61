package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// TakeDamage subtracts amount and reports whether the owner is dead.
// Health never drops below zero.
func (h *HealthData) TakeDamage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}

// Heal adds amount, clamped to Max.
func (h *HealthData) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *HealthData) IsDead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
