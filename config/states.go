package config

// GameState is the top-level state of a run, used by frontends for UI branching.
type GameState int

const (
	StateIntro GameState = iota
	StateLevelStart
	StateCombat
	StatePaused
	StateShop
	StateGameOver
	StateVictory
)

var stateNames = map[GameState]string{
	StateIntro:      "Intro",
	StateLevelStart: "LevelStart",
	StateCombat:     "Combat",
	StatePaused:     "Paused",
	StateShop:       "Shop",
	StateGameOver:   "GameOver",
	StateVictory:    "Victory",
}

func (s GameState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether the state only accepts restart or quit.
func (s GameState) IsTerminal() bool {
	return s == StateGameOver || s == StateVictory
}
